// Package dashboard implements a two-pane TUI for browsing an address book:
// contact names on the left, the selected contact's phones on the right.
package dashboard

// Mode represents the current dashboard view mode.
type Mode int

const (
	ModeBrowse  Mode = iota // Browsing contacts with the phone pane.
	ModeConfirm             // Waiting for confirmation to delete a contact.
)

// Focus represents which pane has keyboard focus.
type Focus int

const (
	PaneLeft  Focus = iota // Left pane (contact list) has focus.
	PaneRight              // Right pane (phone list) has focus.
)
