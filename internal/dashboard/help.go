package dashboard

import "github.com/charmbracelet/bubbles/help"

// HelpBindings returns the help.KeyMap for the given mode and focus,
// providing context-aware help bar content.
func HelpBindings(mode Mode, focus Focus) help.KeyMap {
	switch {
	case mode == ModeConfirm:
		return ConfirmKeyMap()
	case focus == PaneRight:
		return PhoneKeyMap()
	default:
		return ContactKeyMap()
	}
}
