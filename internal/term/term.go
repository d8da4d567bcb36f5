// Package term resolves the colour mode and detects terminals.
//
// The resolved profile is package state because logging and display both
// render through lipgloss. [Configure] sets it once during startup; with
// colours off every style renders as plain text.
package term

import (
	"io"
	"os"
	"strings"

	"github.com/backmassage/casedup/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var profile = termenv.Ascii

// Configure resolves mode against w and applies the resulting profile to the
// default lipgloss renderer. Call once during startup.
func Configure(mode config.ColorMode, w io.Writer) termenv.Profile {
	if resolve(mode, w) {
		profile = termenv.NewOutput(w).EnvColorProfile()
		if profile == termenv.Ascii && mode == config.ColorAlways {
			profile = termenv.ANSI256
		}
	} else {
		profile = termenv.Ascii
	}
	lipgloss.SetColorProfile(profile)
	return profile
}

// Profile returns the profile chosen by the last [Configure] call.
func Profile() termenv.Profile { return profile }

// Enabled reports whether colours are currently active.
func Enabled() bool { return profile != termenv.Ascii }

// resolve determines whether colours should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(w) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether w is a file attached to a TTY.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
