package dashboard

// CursorMarker is the prefix shown on the selected row.
const CursorMarker = "▸ "

// listState is a cursor over a list of strings. Movement wraps at both ends.
// offset is the first row shown when the list is taller than its pane.
type listState struct {
	items  []string
	cursor int
	offset int
}

// setItems replaces the items and keeps the cursor in range.
func (ls listState) setItems(items []string) listState {
	ls.items = items
	switch {
	case len(ls.items) == 0:
		ls.cursor = 0
	case ls.cursor >= len(ls.items):
		ls.cursor = len(ls.items) - 1
	}
	return ls
}

// move shifts the cursor by delta, wrapping around.
func (ls listState) move(delta int) listState {
	n := len(ls.items)
	if n == 0 {
		return ls
	}
	ls.cursor = ((ls.cursor+delta)%n + n) % n
	return ls
}

// follow scrolls the window of height rows so the cursor row stays visible.
func (ls listState) follow(height int) listState {
	if height < 1 {
		return ls
	}
	switch {
	case ls.cursor < ls.offset:
		ls.offset = ls.cursor
	case ls.cursor >= ls.offset+height:
		ls.offset = ls.cursor - height + 1
	}
	ls.offset = min(ls.offset, max(0, len(ls.items)-height))
	return ls
}

// window returns the index of the first visible row and the rows that fit
// in height.
func (ls listState) window(height int) (int, []string) {
	if height < 1 || len(ls.items) <= height {
		return 0, ls.items
	}
	start := min(ls.offset, len(ls.items)-height)
	return start, ls.items[start : start+height]
}

// selected returns the item under the cursor.
func (ls listState) selected() (string, bool) {
	if len(ls.items) == 0 {
		return "", false
	}
	return ls.items[ls.cursor], true
}
