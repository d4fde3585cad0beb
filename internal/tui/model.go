// Package tui is the interactive feedback widget.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/feedback/internal/feedback"
	"github.com/idilsaglam/feedback/internal/model"
	"github.com/idilsaglam/feedback/internal/ui"
)

type focus int

const (
	focusStars focus = iota
	focusComment
	focusEntries
	focusCount
)

// entryItem adapts model.Entry to bubbles/list.Item
type entryItem struct{ model.Entry }

func (i entryItem) FilterValue() string { return i.Comment }

// Custom delegate: rating line, comment line, date + delete glyph.
type entryDelegate struct{ st styles }

func (d entryDelegate) Height() int                               { return 3 }
func (d entryDelegate) Spacing() int                              { return 1 }
func (d entryDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render(">") + " "
	}
	comment := strings.ReplaceAll(it.Comment, "\n", " ")
	if width := m.Width() - 12; width > 10 && len([]rune(comment)) > width {
		comment = string([]rune(comment)[:width-3]) + "..."
	}
	fmt.Fprintf(w, "%sRating: %d %s  %s\n", prefix, it.Rating, d.st.star.Render(d.st.starOn), model.Describe(it.Rating))
	fmt.Fprintf(w, "  Comment: %s\n", comment)
	fmt.Fprintf(w, "  %s  %s", d.st.muted.Render(it.Date), d.st.muted.Render(d.st.trash))
}

// Model is the Bubble Tea model wrapping a feedback.Widget.
type Model struct {
	widget *feedback.Widget
	st     styles

	focus  focus
	ta     textarea.Model
	list   list.Model
	help   help.Model
	width  int
	height int
}

// New builds the screen for w. The widget must already be loaded.
func New(w *feedback.Widget) Model {
	ta := textarea.New()
	ta.Placeholder = "enter feedback here"
	ta.ShowLineNumbers = false
	// comments are stored verbatim, whatever their length
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(4)
	ta.SetWidth(50)
	ta.SetValue(w.Form.Text)

	st := newStyles(ui.Current())

	l := list.New(nil, entryDelegate{st: st}, 50, 12)
	l.Title = "Your feedback entries"
	l.Styles.Title = st.title
	l.Styles.PaginationStyle = st.help
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.KeyMap.Quit.SetEnabled(false)

	m := Model{
		widget: w,
		st:     st,
		ta:     ta,
		list:   l,
		help:   help.New(),
		width:  80,
		height: 24,
	}
	m.syncEntries()
	return m
}

// Run starts the interactive program and blocks until the user quits.
func Run(w *feedback.Widget) error {
	p := tea.NewProgram(New(w), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Update and View implement Bubble Tea's Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, keys.Submit):
			m.submit()
			return m, nil
		case key.Matches(msg, keys.Next):
			return m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, keys.Prev):
			return m.setFocus((m.focus + focusCount - 1) % focusCount)
		}

		switch m.focus {
		case focusComment:
			return m.updateComment(msg)
		case focusEntries:
			return m.updateEntries(msg)
		default:
			return m.updateStars(msg)
		}
	}
	return m, nil
}

func (m Model) updateStars(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Rate):
		m.widget.SelectRating(int(msg.Runes[0] - '0'))
	case key.Matches(msg, keys.Left):
		if r := m.widget.Form.Rating; r > model.MinRating {
			m.widget.SelectRating(r - 1)
		}
	case key.Matches(msg, keys.Right):
		if r := m.widget.Form.Rating; r < model.MaxRating {
			m.widget.SelectRating(r + 1)
		}
	case key.Matches(msg, keys.Confirm):
		m.submit()
	case key.Matches(msg, keys.Another):
		m.dismiss()
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateComment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Back) {
		return m.setFocus(focusStars)
	}
	before := m.ta.Value()
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	if v := m.ta.Value(); v != before {
		m.widget.UpdateComment(v)
	}
	return m, cmd
}

func (m Model) updateEntries(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Delete):
		if it, ok := m.list.SelectedItem().(entryItem); ok {
			_ = m.widget.Delete(it.ID)
			m.syncEntries()
		}
		return m, nil
	case key.Matches(msg, keys.Another):
		m.dismiss()
		return m, nil
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	if f == focusComment {
		return m, m.ta.Focus()
	}
	m.ta.Blur()
	return m, nil
}

func (m *Model) submit() {
	// a failed save still lands in memory and reports Success
	_, _ = m.widget.Submit()
	if m.widget.Form.Success {
		m.ta.Reset()
		m.syncEntries()
	}
}

func (m *Model) dismiss() {
	if !m.widget.Form.Success {
		return
	}
	m.widget.DismissSuccess()
	m.ta.Reset()
}

func (m *Model) syncEntries() {
	all := m.widget.Entries.All()
	items := make([]list.Item, 0, len(all))
	for _, e := range all {
		items = append(items, entryItem{e})
	}
	m.list.SetItems(items)
	if m.list.Index() >= len(items) && len(items) > 0 {
		m.list.Select(len(items) - 1)
	}
}

func (m *Model) resize() {
	inner := m.width - 6
	if inner < 20 {
		inner = 20
	}
	m.ta.SetWidth(inner)
	listHeight := m.height - 22
	if listHeight < 4 {
		listHeight = 4
	}
	m.list.SetSize(inner, listHeight)
}

func (m Model) View() string {
	f := m.widget.Form

	var form []string
	form = append(form, m.st.title.Render("Submit a feedback"), "")
	form = append(form, m.starsView(), f.Description(), "")
	form = append(form, m.ta.View(), "")

	if f.CanSubmit() {
		form = append(form, m.st.button.Render("Submit"))
	} else {
		form = append(form, m.st.buttonDisabled.Render("Submit"))
	}
	if f.Error != "" {
		form = append(form, m.st.errorMsg.Render(f.Error))
	}
	if f.Success {
		form = append(form, m.st.success.Render("Submitted successfully,")+" "+
			m.st.accent.Render("press n to submit another response"))
	}
	if m.widget.Notice != "" {
		form = append(form, m.st.warn.Render(m.widget.Notice))
	}
	formBox := m.st.section(m.focus != focusEntries).Render(strings.Join(form, "\n"))

	var entries string
	if m.widget.Entries.Len() == 0 {
		entries = m.st.muted.Render("No feedback yet")
	} else {
		entries = m.list.View()
		entries += "\n\n" + m.st.title.Render("Average Rating:") + " " +
			feedback.FormatAverage(m.widget.Average())
	}
	entriesBox := m.st.section(m.focus == focusEntries).Render(entries)

	header := m.st.title.Render("Feedback Form")
	footer := m.st.help.Render(m.help.View(m.helpFor()))
	return lipgloss.JoinVertical(lipgloss.Left, header, formBox, entriesBox, footer)
}

func (m Model) starsView() string {
	rating := m.widget.Form.Rating
	parts := make([]string, 0, model.MaxRating)
	for i := model.MinRating; i <= model.MaxRating; i++ {
		if i <= rating {
			parts = append(parts, m.st.star.Render(m.st.starOn))
		} else {
			parts = append(parts, m.st.muted.Render(m.st.starOff))
		}
	}
	row := strings.Join(parts, " ")
	if m.focus == focusStars {
		row = m.st.selected.Render(">") + " " + row
	} else {
		row = "  " + row
	}
	return row
}
