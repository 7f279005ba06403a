package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	esc     key.Binding
	quit    key.Binding
	refresh key.Binding
	copy    key.Binding
	delete  key.Binding
	backup  key.Binding
	info    key.Binding
	help    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "вверх")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "вниз")),
	esc:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "назад")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "выход")),
	refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "обновить")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "копировать")),
	delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "удалить")),
	backup:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "бэкап")),
	info:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "о программе")),
	help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "справка")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.copy, k.delete, k.refresh, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.esc},
		{k.copy, k.delete, k.backup, k.refresh},
		{k.info, k.help, k.quit},
	}
}
