package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/addressbook/internal/book"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// statusBarHeight is the number of lines reserved for the status line.
const statusBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// phoneHeaderLines is the number of lines above the first phone in the right pane.
const phoneHeaderLines = 2

// Model is the root Bubble Tea model for the dashboard TUI.
// It edits the book it was given in place; the book must not be used
// elsewhere while the program runs.
type Model struct {
	book     *book.AddressBook
	mode     Mode
	focus    Focus
	contacts listState
	phones   listState
	pending  confirmState
	status   string
	width    int
	height   int
	viewport viewport.Model
	help     help.Model

	contactKeys contactKeys
	phoneKeys   phoneKeys
	confirmKeys confirmKeys
}

// NewModel creates a dashboard Model in browse mode with left-pane focus.
func NewModel(b *book.AddressBook) Model {
	m := Model{
		book:        b,
		mode:        ModeBrowse,
		focus:       PaneLeft,
		viewport:    viewport.New(0, 0),
		help:        help.New(),
		contactKeys: ContactKeyMap(),
		phoneKeys:   PhoneKeyMap(),
		confirmKeys: ConfirmKeyMap(),
	}
	m.contacts = m.contacts.setItems(b.Names())
	return m.syncPhones().syncScroll()
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, rightWidth := PaneWidths(msg.Width)
		vpWidth := rightWidth - borderChrome
		if vpWidth < 0 {
			vpWidth = 0
		}
		m.viewport.Width = vpWidth
		m.viewport.Height = m.contentHeight()
		return m.syncScroll(), nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		if m.mode == ModeConfirm {
			m, cmd = m.handleConfirmKey(msg)
		} else {
			m, cmd = m.handleKey(msg)
		}
		return m.syncScroll(), cmd
	}

	return m, nil
}

// handleKey processes key messages in browse mode.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.contactKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.contactKeys.Tab):
		// The phone pane only takes focus when there is something to select.
		if m.focus == PaneLeft && len(m.phones.items) > 0 {
			m.focus = PaneRight
		} else {
			m.focus = PaneLeft
		}
		return m, nil

	case key.Matches(msg, m.contactKeys.Up):
		return m.moveCursor(-1), nil

	case key.Matches(msg, m.contactKeys.Down):
		return m.moveCursor(1), nil

	case key.Matches(msg, m.contactKeys.Delete):
		if m.focus == PaneRight {
			return m.removeSelectedPhone(), nil
		}
		return m.askDelete(), nil
	}

	return m, nil
}

// handleConfirmKey processes key messages while a delete is pending.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.confirmKeys.Confirm):
		name := m.pending.name
		m.book.Delete(name)
		m.mode = ModeBrowse
		m.pending = confirmState{}
		m.status = fmt.Sprintf("Deleted %s", name)
		m.contacts = m.contacts.setItems(m.book.Names())
		return m.syncPhones(), nil

	case key.Matches(msg, m.confirmKeys.Cancel):
		m.mode = ModeBrowse
		m.pending = confirmState{}
		m.status = "Delete cancelled"
		return m, nil
	}

	return m, nil
}

// moveCursor moves the cursor of the focused pane.
func (m Model) moveCursor(delta int) Model {
	if m.focus == PaneRight {
		m.phones = m.phones.move(delta)
		return m
	}
	m.contacts = m.contacts.move(delta)
	m.phones.cursor = 0
	return m.syncPhones()
}

// askDelete switches to confirmation for the selected contact.
func (m Model) askDelete() Model {
	name, ok := m.contacts.selected()
	if !ok {
		return m
	}
	m.mode = ModeConfirm
	m.pending = confirmState{name: name, phones: append([]string(nil), m.phones.items...)}
	return m
}

// removeSelectedPhone removes every phone equal to the selected one.
func (m Model) removeSelectedPhone() Model {
	name, ok := m.contacts.selected()
	if !ok {
		return m
	}
	phone, ok := m.phones.selected()
	if !ok {
		return m
	}
	if rec := m.book.Find(name); rec != nil {
		rec.RemovePhone(phone)
		m.status = fmt.Sprintf("Removed %s from %s", phone, name)
	}
	return m.syncPhones()
}

// syncPhones reloads the phone list for the selected contact.
func (m Model) syncPhones() Model {
	var values []string
	if name, ok := m.contacts.selected(); ok {
		if rec := m.book.Find(name); rec != nil {
			for _, p := range rec.Phones() {
				values = append(values, p.Value)
			}
		}
	}
	m.phones = m.phones.setItems(values)
	if len(values) == 0 && m.focus == PaneRight {
		m.focus = PaneLeft
	}
	return m
}

// syncScroll keeps both cursors on screen: the contact window follows the
// contact cursor and the viewport follows the phone cursor.
func (m Model) syncScroll() Model {
	m.viewport.SetContent(m.viewRight())
	if m.height == 0 {
		return m
	}
	m.contacts = m.contacts.follow(m.contentHeight())

	if m.mode == ModeConfirm || m.phones.cursor == 0 {
		m.viewport.GotoTop()
		return m
	}
	row := phoneHeaderLines + m.phones.cursor
	switch {
	case row < m.viewport.YOffset:
		m.viewport.SetYOffset(row)
	case row >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(row - m.viewport.Height + 1)
	}
	return m
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome, the status line and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - statusBarHeight - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the two-pane layout with status line and help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	var leftStyle, rightStyle lipgloss.Style
	if m.focus == PaneLeft {
		leftStyle = FocusedBorder()
		rightStyle = UnfocusedBorder()
	} else {
		leftStyle = UnfocusedBorder()
		rightStyle = FocusedBorder()
	}

	leftStyle = leftStyle.
		Width(leftWidth - borderChrome).
		Height(contentHeight)
	rightStyle = rightStyle.
		Width(rightWidth - borderChrome).
		Height(contentHeight)

	leftPane := leftStyle.Render(m.viewLeft())
	rightPane := rightStyle.Render(m.viewport.View())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	helpView := m.help.View(HelpBindings(m.mode, m.focus))

	return lipgloss.JoinVertical(lipgloss.Left, panes, StatusLine(m.status), helpView)
}

// viewLeft renders the window of the contact list that fits the pane.
func (m Model) viewLeft() string {
	if len(m.contacts.items) == 0 {
		return "No contacts"
	}
	var b strings.Builder
	start, names := m.contacts.window(m.contentHeight())
	for i, name := range names {
		prefix := "  "
		if start+i == m.contacts.cursor {
			prefix = CursorMarker
		}
		n := 0
		if rec := m.book.Find(name); rec != nil {
			n = len(rec.Phones())
		}
		fmt.Fprintf(&b, "%s%s %s\n", prefix, name, PhoneCountBadge(n))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// viewRight renders the confirmation or the selected contact's phones.
func (m Model) viewRight() string {
	if m.mode == ModeConfirm {
		return m.pending.View()
	}
	name, ok := m.contacts.selected()
	if !ok {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Contact name: %s\n\n", name)
	if len(m.phones.items) == 0 {
		b.WriteString("  No phones")
		return b.String()
	}
	for i, p := range m.phones.items {
		prefix := "  "
		if m.focus == PaneRight && i == m.phones.cursor {
			prefix = CursorMarker
		}
		fmt.Fprintf(&b, "%s%s\n", prefix, p)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
