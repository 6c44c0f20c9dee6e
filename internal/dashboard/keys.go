package dashboard

import "github.com/charmbracelet/bubbles/key"

// contactKeys holds key bindings for the contact pane.
type contactKeys struct {
	Up     key.Binding
	Down   key.Binding
	Tab    key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns the contact pane bindings for the help bar.
func (k contactKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Tab, k.Delete, k.Quit}
}

// FullHelp returns the contact pane bindings grouped for expanded help.
func (k contactKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Tab, k.Delete, k.Quit},
	}
}

// phoneKeys holds key bindings for the phone pane.
type phoneKeys struct {
	Up     key.Binding
	Down   key.Binding
	Tab    key.Binding
	Remove key.Binding
	Quit   key.Binding
}

// ShortHelp returns the phone pane bindings for the help bar.
func (k phoneKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Tab, k.Remove, k.Quit}
}

// FullHelp returns the phone pane bindings grouped for expanded help.
func (k phoneKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Tab, k.Remove, k.Quit},
	}
}

// confirmKeys holds key bindings for the delete confirmation.
type confirmKeys struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns the confirmation bindings for the help bar.
func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// FullHelp returns the confirmation bindings grouped for expanded help.
func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel}}
}

func upBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	)
}

func downBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	)
}

func tabBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	)
}

func quitBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)
}

// ContactKeyMap returns the key bindings for the contact pane.
func ContactKeyMap() contactKeys {
	return contactKeys{
		Up:   upBinding(),
		Down: downBinding(),
		Tab:  tabBinding(),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete contact"),
		),
		Quit: quitBinding(),
	}
}

// PhoneKeyMap returns the key bindings for the phone pane.
func PhoneKeyMap() phoneKeys {
	return phoneKeys{
		Up:   upBinding(),
		Down: downBinding(),
		Tab:  tabBinding(),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove phone"),
		),
		Quit: quitBinding(),
	}
}

// ConfirmKeyMap returns the key bindings for the delete confirmation.
func ConfirmKeyMap() confirmKeys {
	return confirmKeys{
		Confirm: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter", "delete"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
