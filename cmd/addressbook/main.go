package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/smileynet/addressbook"
	"github.com/smileynet/addressbook/internal/book"
	"github.com/smileynet/addressbook/internal/config"
	"github.com/smileynet/addressbook/internal/contact"
	"github.com/smileynet/addressbook/internal/dashboard"
	"github.com/smileynet/addressbook/internal/logging"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// localSeedDir is checked for seed overrides before the embedded seeds.
const localSeedDir = ".addressbook/seeds"

// errInvalidPhones is returned by check when at least one value is rejected.
var errInvalidPhones = errors.New("invalid phone values")

// CLI is the top-level command structure for addressbook.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Demo    DemoCmd          `cmd:"" help:"Run the scripted address book demo."`
	List    ListCmd          `cmd:"" help:"Print every contact in a seed file."`
	Check   CheckCmd         `cmd:"" help:"Validate phone numbers."`
	Browse  BrowseCmd        `cmd:"" help:"Browse contacts in the interactive dashboard."`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/addressbook/config.yaml"),
		".addressbook/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads and validates config and builds the stderr logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log.Level, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// loadSeed decodes the seed at path, or the default seed from seeds when
// path is empty. Records are built under the configured phone rules.
func loadSeed(seeds fs.FS, path string, cfg *config.Config, log *zap.Logger) (*book.AddressBook, error) {
	var (
		f   io.ReadCloser
		err error
	)
	if path != "" {
		f, err = os.Open(path)
	} else {
		f, err = seeds.Open(addressbook.DemoSeed)
	}
	if err != nil {
		return nil, fmt.Errorf("opening seed: %w", err)
	}
	defer f.Close()

	b, err := book.Decode(f,
		book.WithRecordOptions(cfg.RecordOptions()...),
		book.WithBookOptions(book.WithLogger(log)),
	)
	if err != nil {
		return nil, err
	}
	log.Debug("seed loaded", zap.String("path", path), zap.Int("contacts", b.Len()))
	return b, nil
}

// --- Demo command ---

// DemoCmd runs the reference scenario against a fresh book.
type DemoCmd struct{}

// Run executes the demo command.
func (d *DemoCmd) Run() error {
	cfg, log, err := setup()
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	defer func() { _ = log.Sync() }()
	return d.run(os.Stdout, cfg, log)
}

// run plays the demo, writing each step to w.
func (d *DemoCmd) run(w io.Writer, cfg *config.Config, log *zap.Logger) error {
	b := book.New(book.WithLogger(log))
	opts := cfg.RecordOptions()

	john := contact.NewRecord("John", opts...)
	for _, p := range []string{"1234567890", "5555555555"} {
		if err := john.AddPhone(p); err != nil {
			return fmt.Errorf("demo: %w", err)
		}
	}
	b.AddRecord(john)

	jane := contact.NewRecord("Jane", opts...)
	if err := jane.AddPhone("9876543210"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	b.AddRecord(jane)

	for _, rec := range b.All() {
		_, _ = fmt.Fprintln(w, rec)
	}

	found := b.Find("John")
	if err := found.EditPhone("1234567890", "1112223333"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	_, _ = fmt.Fprintln(w, found)

	if p := found.FindPhone("5555555555"); p != nil {
		_, _ = fmt.Fprintf(w, "%s: %s\n", found.Name(), p)
	}

	b.Delete("Jane")
	_, _ = fmt.Fprintf(w, "Deleted Jane (%s left)\n", plural(b.Len(), "contact"))
	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// --- List command ---

// ListCmd prints the contacts of a seed file.
type ListCmd struct {
	Seed   string `help:"Seed YAML file (default: embedded demo seed)." type:"path"`
	Format string `help:"Output format: text or yaml (default from config)."`
}

// Run executes the list command.
func (l *ListCmd) Run() error {
	cfg, log, err := setup()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	defer func() { _ = log.Sync() }()
	return l.run(os.Stdout, addressbook.OverlayFS(localSeedDir, addressbook.Seeds), cfg, log)
}

// run lists the seed contacts, enabling testable wiring.
func (l *ListCmd) run(w io.Writer, seeds fs.FS, cfg *config.Config, log *zap.Logger) error {
	if l.Format != "" {
		cfg.Output.Format = l.Format
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("list: %w", err)
	}

	b, err := loadSeed(seeds, l.Seed, cfg, log)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	if cfg.Output.Format == config.FormatYAML {
		if err := book.Encode(w, b); err != nil {
			return fmt.Errorf("list: %w", err)
		}
		return nil
	}
	_, _ = io.WriteString(w, b.String())
	return nil
}

// --- Check command ---

// CheckCmd validates phone values under the configured rules.
type CheckCmd struct {
	Phones []string `arg:"" name:"phone" help:"Phone values to validate."`
}

// Run executes the check command.
func (c *CheckCmd) Run() error {
	cfg, log, err := setup()
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	defer func() { _ = log.Sync() }()
	return c.run(os.Stdout, cfg.Rules())
}

// run reports each value on its own line and fails if any value is invalid.
func (c *CheckCmd) run(w io.Writer, rules contact.Rules) error {
	bad := 0
	for _, v := range c.Phones {
		err := rules.Validate(v)
		if err == nil {
			_, _ = fmt.Fprintf(w, "ok %s\n", v)
			continue
		}
		bad++
		reason := err
		var ve *contact.ValidationError
		if errors.As(err, &ve) {
			reason = ve.Err
		}
		_, _ = fmt.Fprintf(w, "invalid %s: %v\n", v, reason)
	}
	if bad > 0 {
		return fmt.Errorf("check: %d of %d: %w", bad, len(c.Phones), errInvalidPhones)
	}
	return nil
}

// --- Browse command ---

// BrowseCmd opens the dashboard over a seed.
type BrowseCmd struct {
	Seed  string `help:"Seed YAML file (default: embedded demo seed)." type:"path"`
	NoTUI bool   `help:"Force plain text output even if stdout is a TTY." default:"false"`
}

// Run executes the browse command.
func (b *BrowseCmd) Run() error {
	cfg, log, err := setup()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return b.run(ctx, os.Stdout, addressbook.OverlayFS(localSeedDir, addressbook.Seeds), cfg, log)
}

// run loads the seed and hands it to the display picked for w.
func (b *BrowseCmd) run(ctx context.Context, w io.Writer, seeds fs.FS, cfg *config.Config, log *zap.Logger) error {
	bk, err := loadSeed(seeds, b.Seed, cfg, log)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	display := dashboard.NewDisplay(dashboard.DisplayOptions{
		Writer:     w,
		ForcePlain: b.NoTUI,
	})
	return display.Run(ctx, bk)
}

// Exit codes.
const (
	exitSuccess    = 0
	exitValidation = 1
	exitSetup      = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, errInvalidPhones) || errors.Is(err, contact.ErrInvalidPhone) {
		return exitValidation
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Description("An in-memory address book."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
