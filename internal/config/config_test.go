package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smileynet/addressbook/internal/contact"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Phone.DigitsOnly {
		t.Error("default digits_only should be false")
	}
	if cfg.Phone.StrictEdit {
		t.Error("default strict_edit should be false")
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("default format = %q, want %q", cfg.Output.Format, FormatText)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("default log level = %q, want %q", cfg.Log.Level, "warn")
	}
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_ValidFile(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), `
phone:
  digits_only: true
  strict_edit: true
output:
  format: yaml
log:
  level: debug
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Phone.DigitsOnly {
		t.Error("digits_only = false, want true")
	}
	if !cfg.Phone.StrictEdit {
		t.Error("strict_edit = false, want true")
	}
	if cfg.Output.Format != FormatYAML {
		t.Errorf("format = %q, want %q", cfg.Output.Format, FormatYAML)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("Load() should return defaults for missing file, got error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(missing) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), "{{invalid yaml")

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("Load(invalid YAML) should return error")
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), `
phone:
  digits_only: true
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Phone.DigitsOnly {
		t.Error("digits_only = false, want true")
	}
	// Unset fields should retain defaults.
	if cfg.Output.Format != FormatText {
		t.Errorf("format = %q, want default %q", cfg.Output.Format, FormatText)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q, want default %q", cfg.Log.Level, "warn")
	}
}

func TestLoad_LayeredPriority(t *testing.T) {
	// Setup: user config sets format and level, project config overrides level.
	userCfg := writeConfig(t, t.TempDir(), `
output:
  format: yaml
log:
  level: info
`)
	projectCfg := writeConfig(t, t.TempDir(), `
log:
  level: error
`)

	cfg, err := LoadLayered(userCfg, projectCfg)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	// Format from user config (project doesn't set it).
	if cfg.Output.Format != FormatYAML {
		t.Errorf("format = %q, want %q", cfg.Output.Format, FormatYAML)
	}
	// Level from project config (overrides user).
	if cfg.Log.Level != "error" {
		t.Errorf("log level = %q, want %q", cfg.Log.Level, "error")
	}
	// Phone settings retain defaults when neither layer sets them.
	if cfg.Phone.DigitsOnly {
		t.Error("digits_only should keep default false")
	}
}

func TestLoadLayered_ExplicitFalseOverrides(t *testing.T) {
	userCfg := writeConfig(t, t.TempDir(), `
phone:
  strict_edit: true
`)
	projectCfg := writeConfig(t, t.TempDir(), `
phone:
  strict_edit: false
`)

	cfg, err := LoadLayered(userCfg, projectCfg)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	if cfg.Phone.StrictEdit {
		t.Error("project strict_edit: false should override user true")
	}
}

func TestLoadLayered_InvalidLayer(t *testing.T) {
	good := writeConfig(t, t.TempDir(), "log:\n  level: info\n")
	bad := writeConfig(t, t.TempDir(), "phone:\n  digts_only: true\n")

	if _, err := LoadLayered(good, bad); err == nil {
		t.Fatal("LoadLayered() should fail on unknown field in a layer")
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		envs    map[string]string
		wantErr bool
		check   func(*testing.T, Config)
	}{
		{
			name: "ADDRESSBOOK_DIGITS_ONLY enables digit check",
			envs: map[string]string{"ADDRESSBOOK_DIGITS_ONLY": "true"},
			check: func(t *testing.T, c Config) {
				if !c.Phone.DigitsOnly {
					t.Error("digits_only = false, want true")
				}
			},
		},
		{
			name: "ADDRESSBOOK_STRICT_EDIT enables strict edit",
			envs: map[string]string{"ADDRESSBOOK_STRICT_EDIT": "1"},
			check: func(t *testing.T, c Config) {
				if !c.Phone.StrictEdit {
					t.Error("strict_edit = false, want true")
				}
			},
		},
		{
			name: "ADDRESSBOOK_OUTPUT_FORMAT overrides format",
			envs: map[string]string{"ADDRESSBOOK_OUTPUT_FORMAT": "yaml"},
			check: func(t *testing.T, c Config) {
				if c.Output.Format != FormatYAML {
					t.Errorf("format = %q, want %q", c.Output.Format, FormatYAML)
				}
			},
		},
		{
			name: "ADDRESSBOOK_LOG_LEVEL overrides level",
			envs: map[string]string{"ADDRESSBOOK_LOG_LEVEL": "debug"},
			check: func(t *testing.T, c Config) {
				if c.Log.Level != "debug" {
					t.Errorf("log level = %q, want %q", c.Log.Level, "debug")
				}
			},
		},
		{
			name:    "invalid ADDRESSBOOK_DIGITS_ONLY returns error",
			envs:    map[string]string{"ADDRESSBOOK_DIGITS_ONLY": "sometimes"},
			wantErr: true,
		},
		{
			name:    "invalid ADDRESSBOOK_STRICT_EDIT returns error",
			envs:    map[string]string{"ADDRESSBOOK_STRICT_EDIT": "maybe"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envs {
				t.Setenv(k, v)
			}
			cfg := DefaultConfig()
			err := cfg.ApplyEnv()

			if tt.wantErr {
				if err == nil {
					t.Fatal("ApplyEnv() should return error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnv() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), `
phone:
  digts_only: true
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("Load() should return error for unknown field 'digts_only'")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:   "yaml format",
			modify: func(c *Config) { c.Output.Format = FormatYAML },
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Output.Format = "csv" },
			wantErr: true,
		},
		{
			name:    "empty format",
			modify:  func(c *Config) { c.Output.Format = "" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecordOptions(t *testing.T) {
	// Given: a config with both phone checks enabled
	cfg := DefaultConfig()
	cfg.Phone.DigitsOnly = true
	cfg.Phone.StrictEdit = true

	// When: a record is built with the derived options
	r := contact.NewRecord("John", cfg.RecordOptions()...)

	// Then: non-digit phones are rejected on add and on edit
	if err := r.AddPhone("abcdefghij"); err == nil {
		t.Error("AddPhone(letters) should fail with digits_only")
	}
	if err := r.AddPhone("1234567890"); err != nil {
		t.Fatalf("AddPhone() error = %v", err)
	}
	if err := r.EditPhone("1234567890", "12"); err == nil {
		t.Error("EditPhone(short) should fail with strict_edit")
	}
}

func TestRecordOptions_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	r := contact.NewRecord("John", cfg.RecordOptions()...)

	if err := r.AddPhone("abcdefghij"); err != nil {
		t.Errorf("AddPhone(letters) error = %v, want nil under default rules", err)
	}
	if err := r.EditPhone("abcdefghij", "12"); err != nil {
		t.Errorf("EditPhone() error = %v, want nil without strict_edit", err)
	}
}

func TestLoad_CommentOnlyFile(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), "# just a comment\n")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load(comment-only) error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(comment-only) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoadLayered_AllMissing(t *testing.T) {
	cfg, err := LoadLayered("/no/user.yaml", "/no/project.yaml")
	if err != nil {
		t.Fatalf("LoadLayered(all missing) error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("got %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir(), "")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load(empty) error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(empty) = %+v, want defaults %+v", *cfg, want)
	}
}
