package dashboard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/addressbook/internal/book"
	"github.com/smileynet/addressbook/internal/contact"
)

// containsText is a test alias for strings.Contains.
func containsText(s, sub string) bool {
	return strings.Contains(s, sub)
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// demoBook returns a book with John (two phones) and Jane (one phone).
func demoBook(t *testing.T) *book.AddressBook {
	t.Helper()
	b := book.New()
	john := contact.NewRecord("John")
	for _, p := range []string{"1234567890", "5555555555"} {
		if err := john.AddPhone(p); err != nil {
			t.Fatal(err)
		}
	}
	b.AddRecord(john)
	jane := contact.NewRecord("Jane")
	if err := jane.AddPhone("9876543210"); err != nil {
		t.Fatal(err)
	}
	b.AddRecord(jane)
	return b
}

// keyRune builds a KeyMsg for a single printable key.
func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// press feeds msgs through Update in order and returns the resulting model.
func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}
