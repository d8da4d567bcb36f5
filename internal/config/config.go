// Package config holds runtime configuration: defaults, flag and file
// loading, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// KeyMode selects how a discovered path is folded into a grouping key.
type KeyMode string

const (
	KeyPath KeyMode = "path" // Lowercased full path (default).
	KeyName KeyMode = "name" // Lowercased base name only.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then overlaid by [Load] before being passed (by pointer) to packages that
// need it.
type Config struct {
	// Root is the directory to scan. Default: ".".
	Root string `mapstructure:"root"`

	// Grouping.
	KeyMode KeyMode `mapstructure:"key"` // Default: "path".

	// Operator UI.
	Lang     string            `mapstructure:"lang"`     // Locale tag; empty means detect from env.
	Messages map[string]string `mapstructure:"messages"` // Per-key catalog overrides.

	// Display and logging.
	Verbose   bool      `mapstructure:"verbose"`
	ColorMode ColorMode `mapstructure:"color"`    // Default: "auto".
	LogFile   string    `mapstructure:"log_file"` // Optional log file path.

	// ConfigFile is the file that was actually read, if any.
	ConfigFile string `mapstructure:"-"`
}

// DefaultConfig returns a Config with every default applied. Used as the base
// before [Load] applies file, environment and flag overrides.
func DefaultConfig() Config {
	return Config{
		Root:      ".",
		KeyMode:   KeyPath,
		Lang:      "",
		Verbose:   false,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path. An argument
// made only of slashes is the filesystem root "/".
func NormalizeDirArg(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" && path != "" {
		return "/"
	}
	return trimmed
}

// Validate checks that enum fields hold valid values and that a root
// directory was given.
func (c *Config) Validate() error {
	switch c.KeyMode {
	case KeyPath, KeyName:
		// valid
	default:
		return fmt.Errorf("invalid key mode %q (use 'path' or 'name')", c.KeyMode)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.Root == "" {
		return errors.New("root directory must not be empty")
	}
	return nil
}
