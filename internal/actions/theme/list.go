package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

func list(sh *dispatchers.Shell, deps Deps) error {
	current, _ := deps.Get("theme")
	if current == "" {
		current = "default"
	}
	current = deps.Resolve(current)

	_, _ = sh.Println("Available themes (* = current)")
	_, _ = sh.Println()

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == current {
			marker = style.Success("* ")
		}

		preview := renderColorPreview(deps.Themes[name])
		_, _ = sh.Printf("%s%-14s  %s\n", marker, name, preview)
	}

	_, _ = sh.Println()
	_, _ = sh.Println(style.Muted("Use 'theme <name>' to change"))

	return nil
}

// renderColorPreview returns colored text samples for a theme. The
// samples are rendered even when styling is off so the list stays useful.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if !style.Enabled() {
			return text
		}
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("warning ", cfg.Warning) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted ", cfg.Muted) +
		colorize("header", cfg.Header)
}
