// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/footprint-tools/parsedcmd/internal/domain"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init sets whether output is styled and loads the theme from cfg.
// NO_COLOR or PCMD_NO_COLOR (any non-empty value) disables styling
// regardless of enable. A nil cfg uses the default theme.
//
// Call it once from main before any output.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("PCMD_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
}

// GetColors returns the current color configuration.
// Returns empty config if styling is not enabled.
func GetColors() ColorConfig {
	return colors
}

func initStyles(colors ColorConfig) {
	// ANSI256 covers both the basic palette and the extended theme colors.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
}

// makeStyle creates a lipgloss style from "bold" or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles text for successful operations.
func Success(text string) string { return render(successStyle, text) }

// Warning styles text for warning messages.
func Warning(text string) string { return render(warningStyle, text) }

// Error styles text for error messages.
func Error(text string) string { return render(errorStyle, text) }

// Info styles text for informational messages and command names.
func Info(text string) string { return render(infoStyle, text) }

// Header styles text for section headers or titles.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles text for less important or secondary information.
func Muted(text string) string { return render(mutedStyle, text) }

// Outcome styles text by the result of a dispatched line.
func Outcome(o domain.Outcome, text string) string {
	switch o {
	case domain.OutcomeOK:
		return Success(text)
	case domain.OutcomeBindError, domain.OutcomeCastError:
		return Warning(text)
	case domain.OutcomeHandlerError:
		return Error(text)
	default:
		return Muted(text)
	}
}
