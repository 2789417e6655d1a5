package picker

import (
	"github.com/charmbracelet/bubbles/key"

	"rofipaste/pkg/types"
)

type keyMap struct {
	Confirm   key.Binding
	Cancel    key.Binding
	Up        key.Binding
	Down      key.Binding
	CopyOnly  key.Binding
	TypeOnly  key.Binding
	CopyPaste key.Binding
	EditEntry key.Binding
	Recent    []key.Binding // alt+1 .. alt+0
}

func defaultKeyMap() keyMap {
	km := keyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "paste"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p", "ctrl+k"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "ctrl+j", "tab"),
		),
		CopyOnly: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("alt+c", "copy"),
		),
		TypeOnly: key.NewBinding(
			key.WithKeys("alt+t"),
			key.WithHelp("alt+t", "type"),
		),
		CopyPaste: key.NewBinding(
			key.WithKeys("alt+p"),
			key.WithHelp("alt+p", "paste via clipboard"),
		),
		EditEntry: key.NewBinding(
			key.WithKeys("alt+e"),
			key.WithHelp("alt+e", "edit"),
		),
	}
	for _, digit := range "1234567890" {
		km.Recent = append(km.Recent, key.NewBinding(key.WithKeys("alt+"+string(digit))))
	}
	return km
}

type actionKey struct {
	binding key.Binding
	code    int
}

// actions pairs the direct-action bindings with the code rofi would return
func (km keyMap) actions() []actionKey {
	return []actionKey{
		{km.CopyOnly, types.ExitCopyOnly},
		{km.TypeOnly, types.ExitTypeOnly},
		{km.CopyPaste, types.ExitCopyPaste},
		{km.EditEntry, types.ExitEditEntry},
	}
}

func (km keyMap) helpLine() []key.Binding {
	return []key.Binding{km.Confirm, km.CopyOnly, km.TypeOnly, km.CopyPaste, km.EditEntry, km.Cancel}
}
