package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Press      key.Binding
	Connect    key.Binding
	Disconnect key.Binding
	Touch      key.Binding
	Next       key.Binding
	Up         key.Binding
	Down       key.Binding
	Add        key.Binding
	Delete     key.Binding
	Back       key.Binding
	Practice   key.Binding
	Game       key.Binding
	Start      key.Binding
	Stop       key.Binding
	Correct    key.Binding
	Wrong      key.Binding
	Ready      key.Binding
	Tab        key.Binding
	EditWords  key.Binding
	Shutdown   key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Press:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "device button")),
		Connect:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect")),
		Disconnect: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "disconnect")),
		Touch:      key.NewBinding(key.WithKeys("t", " "), key.WithHelp("t", "touch")),
		Next:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		Up:         key.NewBinding(key.WithKeys("up", "k", "left", "h"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j", "right", "l"), key.WithHelp("↓/j", "down")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add patient")),
		Delete:     key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "remove")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Practice:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "practice")),
		Game:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "game")),
		Start:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Stop:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
		Correct:    key.NewBinding(key.WithKeys("y", "+"), key.WithHelp("y", "correct")),
		Wrong:      key.NewBinding(key.WithKeys("n", "-"), key.WithHelp("n", "wrong")),
		Ready:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "ready")),
		Tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch game")),
		EditWords:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit words")),
		Shutdown:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "shut down")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) forScreen(m *Model) []key.Binding {
	switch m.screen {
	case screenIntro:
		return []key.Binding{k.Connect, k.Disconnect, k.Touch, k.Press, k.Next, k.Quit}
	case screenLog:
		return []key.Binding{k.Up, k.Down, k.Next, k.Add, k.Delete, k.Back, k.Quit}
	case screenAdd:
		return []key.Binding{
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			k.Back,
		}
	case screenArtic:
		return []key.Binding{k.Up, k.Down, k.Next, k.Back, k.Quit}
	case screenMode:
		return []key.Binding{k.Practice, k.Game, k.Back, k.Quit}
	case screenPractice:
		return []key.Binding{k.Start, k.Stop, k.Correct, k.Wrong, k.Shutdown, k.Back}
	case screenGame:
		if m.editingWords {
			return []key.Binding{key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done editing"))}
		}
		if m.gameTab == tabReaction {
			return []key.Binding{k.Tab, k.Ready, k.Start, k.Stop, k.Touch, k.Back}
		}
		return []key.Binding{k.Tab, k.EditWords, k.Ready, k.Start, k.Stop, k.Correct, k.Wrong, k.Back}
	}
	return []key.Binding{k.Quit}
}
