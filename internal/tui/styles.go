package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/feedback/internal/ui"
)

// palette is the lipgloss rendition of a ui.Theme. Empty colors mean none.
type palette struct {
	title, muted, accent, success, errc, warn, star, focus, blur, button string
	border                                                               lipgloss.Border
}

var palettes = map[string]palette{
	"classic": {
		accent: "12", success: "42", errc: "9", warn: "214", star: "220",
		focus: "12", blur: "8", button: "42", border: lipgloss.NormalBorder(),
	},
	"neon": {
		title: "13", accent: "14", success: "10", errc: "9", warn: "11", star: "11",
		focus: "13", blur: "8", button: "13", border: lipgloss.RoundedBorder(),
	},
	"mono": {border: lipgloss.ASCIIBorder()},
}

// ------- styling (Lip Gloss) -------
type styles struct {
	title, success, star, accent, muted, errorMsg, warn lipgloss.Style
	selected, help, button, buttonDisabled              lipgloss.Style
	focusBox, blurBox                                   lipgloss.Style

	starOn, starOff, trash string
}

// newStyles follows the theme chosen with --theme / ui.theme.
func newStyles(t ui.Theme) styles {
	p, ok := palettes[t.Name]
	if !ok {
		p = palettes["classic"]
	}
	fg := func(c string) lipgloss.Style {
		s := lipgloss.NewStyle()
		if c != "" {
			s = s.Foreground(lipgloss.Color(c))
		}
		return s
	}
	button := lipgloss.NewStyle().Padding(0, 2).Reverse(true)
	if p.button != "" {
		button = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("0")).Background(lipgloss.Color(p.button))
	}
	return styles{
		title:          fg(p.title).Bold(true),
		success:        fg(p.success),
		star:           fg(p.star),
		accent:         fg(p.accent),
		muted:          lipgloss.NewStyle().Faint(true),
		errorMsg:       fg(p.errc).Bold(true),
		warn:           fg(p.warn),
		selected:       lipgloss.NewStyle().Bold(true).Reverse(true),
		help:           lipgloss.NewStyle().Faint(true),
		button:         button,
		buttonDisabled: lipgloss.NewStyle().Padding(0, 2).Faint(true),
		focusBox:       boxStyle(p.border, p.focus),
		blurBox:        boxStyle(p.border, p.blur),
		starOn:         t.StarOn,
		starOff:        t.StarOff,
		trash:          t.Trash,
	}
}

func boxStyle(b lipgloss.Border, color string) lipgloss.Style {
	s := lipgloss.NewStyle().Border(b).Padding(0, 1)
	if color != "" {
		s = s.BorderForeground(lipgloss.Color(color))
	}
	return s
}

func (s styles) section(focused bool) lipgloss.Style {
	if focused {
		return s.focusBox
	}
	return s.blurBox
}
