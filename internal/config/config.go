// Package config loads render defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-html2pdf/internal/fileutil"
	"github.com/alnah/go-html2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config value")
)

// Built-in defaults.
const (
	DefaultWidth           = "210mm"
	DefaultPaper           = "free"
	DefaultTimeout         = "60s"
	DefaultDiagramSelector = ".mermaid svg"
	DefaultDiagramTimeout  = "10s"
	DefaultHeadingSelector = "h1, h2, .spec-title"
)

// maxSelectorLength bounds CSS selectors passed to the page.
const maxSelectorLength = 256

// Config holds render defaults. CLI flags override every field.
type Config struct {
	Width    string         `yaml:"width"`   // page width in free scroll mode, e.g. "210mm"
	Paper    string         `yaml:"paper"`   // "a4", "a3", "free"
	Timeout  string         `yaml:"timeout"` // Go duration for the whole render
	Outline  bool           `yaml:"outline"` // embed headings as PDF outline
	Diagram  DiagramConfig  `yaml:"diagram"`
	Headings HeadingsConfig `yaml:"headings"`
}

// DiagramConfig defines the best-effort diagram wait.
type DiagramConfig struct {
	Selector string `yaml:"selector"`
	Timeout  string `yaml:"timeout"`
}

// HeadingsConfig defines which elements become bookmarks.
type HeadingsConfig struct {
	Selector string `yaml:"selector"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Width:   DefaultWidth,
		Paper:   DefaultPaper,
		Timeout: DefaultTimeout,
		Diagram: DiagramConfig{
			Selector: DefaultDiagramSelector,
			Timeout:  DefaultDiagramTimeout,
		},
		Headings: HeadingsConfig{Selector: DefaultHeadingSelector},
	}
}

// Validate checks enumerations, durations and selector lengths.
// Width syntax is checked by the renderer, which owns unit parsing.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Paper) {
	case "", "a4", "a3", "free":
	default:
		return fmt.Errorf("%w: paper %q (must be a4, a3, or free)", ErrConfigInvalid, c.Paper)
	}
	if _, err := parsePositiveDuration("timeout", c.Timeout); err != nil {
		return err
	}
	if _, err := parsePositiveDuration("diagram.timeout", c.Diagram.Timeout); err != nil {
		return err
	}
	if len(c.Diagram.Selector) > maxSelectorLength {
		return fmt.Errorf("%w: diagram.selector exceeds %d chars", ErrConfigInvalid, maxSelectorLength)
	}
	if len(c.Headings.Selector) > maxSelectorLength {
		return fmt.Errorf("%w: headings.selector exceeds %d chars", ErrConfigInvalid, maxSelectorLength)
	}
	return nil
}

// TimeoutDuration returns the render timeout, or 0 if unset.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := parsePositiveDuration("timeout", c.Timeout)
	return d
}

// DiagramTimeoutDuration returns the diagram wait, or 0 if unset.
func (c *Config) DiagramTimeoutDuration() time.Duration {
	d, _ := parsePositiveDuration("diagram.timeout", c.Diagram.Timeout)
	return d
}

// parsePositiveDuration parses s; empty means unset and returns 0.
func parsePositiveDuration(field, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", ErrConfigInvalid, field, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %s", ErrConfigInvalid, field, s)
	}
	return d, nil
}

// LoadConfig loads configuration from a file path or config name.
// Fields absent from the file keep their built-in defaults.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched in the current directory and ~/.config/go-html2pdf/.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.FileExists(nameOrPath) && !strings.ContainsAny(nameOrPath, "/\\") {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-html2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-html2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
