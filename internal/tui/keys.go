package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Rate      key.Binding
	Left      key.Binding
	Right     key.Binding
	Next      key.Binding
	Prev      key.Binding
	Submit    key.Binding
	Confirm   key.Binding
	Another   key.Binding
	Delete    key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

var keys = keyMap{
	Rate:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "rate")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "adjust")),
	Right:     key.NewBinding(key.WithKeys("right", "l")),
	Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	Prev:      key.NewBinding(key.WithKeys("shift+tab")),
	Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
	Confirm:   key.NewBinding(key.WithKeys("enter")),
	Another:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "submit another")),
	Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave comment")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}

// helpKeys adapts the bindings for the current focus to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (m Model) helpFor() helpKeys {
	switch m.focus {
	case focusComment:
		return helpKeys{keys.Back, keys.Next, keys.Submit}
	case focusEntries:
		return helpKeys{keys.Delete, keys.Next, keys.Submit, keys.Quit}
	default:
		h := helpKeys{keys.Rate, keys.Left, keys.Next, keys.Submit}
		if m.widget.Form.Success {
			h = append(h, keys.Another)
		}
		return append(h, keys.Quit)
	}
}
