package dashboard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// MinLeftWidth is the minimum character width for the left pane.
const MinLeftWidth = 28

var (
	accentColor = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	dimColor    = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}
	warnColor   = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
)

// PhoneCountBadge returns a styled phone count like "2 phones".
// Contacts without phones are rendered dim.
func PhoneCountBadge(n int) string {
	label := fmt.Sprintf("%d phones", n)
	if n == 1 {
		label = "1 phone"
	}
	color := accentColor
	if n == 0 {
		color = dimColor
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Render(label)
}

// StatusLine renders the last action message below the panes.
func StatusLine(msg string) string {
	return lipgloss.NewStyle().
		Foreground(dimColor).
		Render(msg)
}

// WarningText renders text in the warning color, used by the confirmation.
func WarningText(s string) string {
	return lipgloss.NewStyle().
		Foreground(warnColor).
		Bold(true).
		Render(s)
}

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor)
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// PaneWidths calculates the left and right pane widths from a total width.
// Left pane gets 1/3 (minimum MinLeftWidth), right pane gets the rest.
func PaneWidths(totalWidth int) (left, right int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	left = totalWidth / 3
	if left < MinLeftWidth {
		left = MinLeftWidth
	}
	right = totalWidth - left
	if right < 0 {
		right = 0
	}
	return left, right
}
