package config

// Notes:
// - resolveConfigPath user-directory branch: depends on os.UserConfigDir and is
//   only covered through the "not found" error message.
// - Tests changing the working directory use t.Chdir and cannot run in parallel.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig writes content to name inside a temp dir and returns the path.
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestDefaultConfig - Built-in defaults
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Width != "210mm" {
		t.Errorf("Width = %q, want %q", cfg.Width, "210mm")
	}
	if cfg.Paper != "free" {
		t.Errorf("Paper = %q, want %q", cfg.Paper, "free")
	}
	if cfg.Outline {
		t.Error("Outline = true, want false")
	}
	if got := cfg.DiagramTimeoutDuration(); got != 10*time.Second {
		t.Errorf("DiagramTimeoutDuration() = %v, want 10s", got)
	}
	if got := cfg.TimeoutDuration(); got != 60*time.Second {
		t.Errorf("TimeoutDuration() = %v, want 60s", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidate - Field validation
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"paper a4 upper case", func(c *Config) { c.Paper = "A4" }, false},
		{"paper a3", func(c *Config) { c.Paper = "a3" }, false},
		{"paper letter rejected", func(c *Config) { c.Paper = "letter" }, true},
		{"empty timeout means unset", func(c *Config) { c.Timeout = "" }, false},
		{"bad timeout", func(c *Config) { c.Timeout = "soon" }, true},
		{"negative diagram timeout", func(c *Config) { c.Diagram.Timeout = "-1s" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = "0s" }, true},
		{"long selector", func(c *Config) { c.Headings.Selector = strings.Repeat("h1,", 100) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrConfigInvalid) {
					t.Errorf("Validate() = %v, want ErrConfigInvalid", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "render.yaml", "paper: a3\noutline: true\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Paper != "a3" {
			t.Errorf("Paper = %q, want a3", cfg.Paper)
		}
		if !cfg.Outline {
			t.Error("Outline = false, want true")
		}
		if cfg.Width != DefaultWidth {
			t.Errorf("Width = %q, want default %q", cfg.Width, DefaultWidth)
		}
		if cfg.Diagram.Selector != DefaultDiagramSelector {
			t.Errorf("Diagram.Selector = %q, want default", cfg.Diagram.Selector)
		}
	})

	t.Run("nested sections", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "render.yaml", `
diagram:
  selector: "svg.chart"
  timeout: 3s
headings:
  selector: "h1, h2"
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Diagram.Selector != "svg.chart" {
			t.Errorf("Diagram.Selector = %q", cfg.Diagram.Selector)
		}
		if cfg.DiagramTimeoutDuration() != 3*time.Second {
			t.Errorf("DiagramTimeoutDuration() = %v, want 3s", cfg.DiagramTimeoutDuration())
		}
		if cfg.Headings.Selector != "h1, h2" {
			t.Errorf("Headings.Selector = %q", cfg.Headings.Selector)
		}
	})

	t.Run("unknown key is a parse error", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "render.yaml", "papr: a4\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "render.yaml", "paper: tabloid\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigInvalid) {
			t.Errorf("error = %v, want ErrConfigInvalid", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})
}

func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "print.yml"), []byte("width: 300mm\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := LoadConfig("print")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != "300mm" {
		t.Errorf("Width = %q, want 300mm", cfg.Width)
	}

	_, err = LoadConfig("missing")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("error should list tried paths, got %v", err)
	}
}
