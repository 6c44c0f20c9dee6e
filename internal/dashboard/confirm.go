package dashboard

import (
	"fmt"
	"strings"
)

// confirmState holds the contact awaiting delete confirmation.
type confirmState struct {
	name   string
	phones []string
}

// View renders the confirmation screen.
func (cs confirmState) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", WarningText(fmt.Sprintf("Delete %s?", cs.name)))
	if len(cs.phones) == 0 {
		b.WriteString("\n  No phones on record.")
	} else {
		b.WriteString("\n  This removes the contact and:")
		for _, p := range cs.phones {
			fmt.Fprintf(&b, "\n  • %s", p)
		}
	}

	b.WriteString("\n\n  [Enter] Delete   [Esc] Cancel")
	return b.String()
}
