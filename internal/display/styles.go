package display

import "github.com/charmbracelet/lipgloss"

// Palette shared by the session output. Tuned for dark terminals.
const (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorSuccess = lipgloss.Color("#10B981")
	ColorError   = lipgloss.Color("#EF4444")
	ColorWarning = lipgloss.Color("#F59E0B")
)

var (
	// TitleStyle is for the banner and group headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// MutedStyle is for secondary text such as the summary.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for deletion confirmations.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for per-index and parse failures.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// PromptStyle is for the question asked once per group.
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
