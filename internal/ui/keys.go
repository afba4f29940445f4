package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/morty/internal/locale"
)

// keyMap defines the keyboard bindings. It implements help.KeyMap.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Open   key.Binding
	Back   key.Binding
	Reload key.Binding

	CycleTheme key.Binding
	ToggleLogs key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func defaultKeyMap(loc *locale.Localizer) keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", loc.T(locale.MsgKeyUp, nil)),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", loc.T(locale.MsgKeyDown, nil)),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", loc.T(locale.MsgKeyOpen, nil)),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", loc.T(locale.MsgKeyBack, nil)),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", loc.T(locale.MsgKeyReload, nil)),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", loc.T(locale.MsgKeyTheme, nil)),
		),
		ToggleLogs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", loc.T(locale.MsgKeyLogs, nil)),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", loc.T(locale.MsgKeyHelp, nil)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", loc.T(locale.MsgKeyQuit, nil)),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", loc.T(locale.MsgKeyQuit, nil)),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back, k.Reload, k.ToggleLogs, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.Open, k.Back, k.Reload},
		{k.CycleTheme, k.ToggleLogs, k.Help, k.Quit, k.ForceQuit},
	}
}
