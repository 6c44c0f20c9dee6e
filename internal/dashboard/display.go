package dashboard

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/addressbook/internal/book"
)

// Display presents an address book to the user.
type Display interface {
	Run(ctx context.Context, b *book.AddressBook) error
}

// DisplayOptions configures display creation.
type DisplayOptions struct {
	Writer     io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force plain text even if TTY.
}

// NewDisplay returns a TUI display when the writer is a TTY, or a plain text
// display otherwise. ForcePlain overrides TTY detection.
func NewDisplay(opts DisplayOptions) Display {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	if opts.ForcePlain || !IsTTY(opts.Writer) {
		return &PlainDisplay{w: opts.Writer}
	}

	return &TUIDisplay{w: opts.Writer}
}

// IsTTY reports whether w is connected to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainDisplay prints every record as a text line.
type PlainDisplay struct {
	w io.Writer
}

// Run writes the book and returns.
func (d *PlainDisplay) Run(ctx context.Context, b *book.AddressBook) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.Len() == 0 {
		_, err := fmt.Fprintln(d.w, "No contacts")
		return err
	}
	_, err := io.WriteString(d.w, b.String())
	return err
}

// TUIDisplay runs the interactive dashboard over the book.
// Falls back to PlainDisplay if the TUI program fails to start.
type TUIDisplay struct {
	w io.Writer
}

// Run starts the Bubble Tea program and blocks until the user quits.
func (d *TUIDisplay) Run(ctx context.Context, b *book.AddressBook) error {
	p := tea.NewProgram(NewModel(b),
		tea.WithOutput(d.w),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		plain := &PlainDisplay{w: d.w}
		return plain.Run(ctx, b)
	}
	return nil
}
