package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"neon",
	"aurora",
	"mono",
	"ocean",
	"sunset",
	"candy",
	"contrast",
}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"neon-dark", "neon-light",
	"aurora-dark", "aurora-light",
	"mono-dark", "mono-light",
	"ocean-dark", "ocean-light",
	"sunset-dark", "sunset-light",
	"candy-dark", "candy-light",
	"contrast-dark", "contrast-light",
}

// Themes contains the built-in color themes.
// Dark themes use BRIGHT colors (high contrast on dark backgrounds).
// Light themes use DARK colors (high contrast on light/white backgrounds).
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
	},

	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "243",
		Header:  "bold",
	},

	"neon-dark": {
		Success: "48",
		Warning: "220",
		Error:   "197",
		Info:    "51",
		Muted:   "244",
		Header:  "bold",
	},

	"neon-light": {
		Success: "29",
		Warning: "166",
		Error:   "161",
		Info:    "32",
		Muted:   "245",
		Header:  "bold",
	},

	"aurora-dark": {
		Success: "121",
		Warning: "222",
		Error:   "204",
		Info:    "147",
		Muted:   "246",
		Header:  "bold",
	},

	"aurora-light": {
		Success: "30",
		Warning: "136",
		Error:   "125",
		Info:    "62",
		Muted:   "244",
		Header:  "bold",
	},

	"mono-dark": {
		Success: "50",
		Warning: "229",
		Error:   "210",
		Info:    "50",
		Muted:   "245",
		Header:  "bold",
	},

	"mono-light": {
		Success: "30",
		Warning: "136",
		Error:   "124",
		Info:    "30",
		Muted:   "244",
		Header:  "bold",
	},

	"ocean-dark": {
		Success: "43",
		Warning: "221",
		Error:   "174",
		Info:    "75",
		Muted:   "245",
		Header:  "bold",
	},

	"ocean-light": {
		Success: "30",
		Warning: "130",
		Error:   "124",
		Info:    "25",
		Muted:   "244",
		Header:  "bold",
	},

	"sunset-dark": {
		Success: "216",
		Warning: "221",
		Error:   "204",
		Info:    "183",
		Muted:   "245",
		Header:  "bold",
	},

	"sunset-light": {
		Success: "166",
		Warning: "136",
		Error:   "125",
		Info:    "90",
		Muted:   "244",
		Header:  "bold",
	},

	"candy-dark": {
		Success: "158",
		Warning: "222",
		Error:   "211",
		Info:    "153",
		Muted:   "250",
		Header:  "bold",
	},

	"candy-light": {
		Success: "36",
		Warning: "172",
		Error:   "168",
		Info:    "68",
		Muted:   "244",
		Header:  "bold",
	},

	"contrast-dark": {
		Success: "46",
		Warning: "226",
		Error:   "196",
		Info:    "51",
		Muted:   "250",
		Header:  "bold",
	},

	"contrast-light": {
		Success: "22",
		Warning: "130",
		Error:   "124",
		Info:    "21",
		Muted:   "240",
		Header:  "bold",
	},
}

// fields maps each color_* config key to the ColorConfig field it overrides.
func (c *ColorConfig) fields() map[string]*string {
	return map[string]*string{
		"color_success": &c.Success,
		"color_warning": &c.Warning,
		"color_error":   &c.Error,
		"color_info":    &c.Info,
		"color_muted":   &c.Muted,
		"color_header":  &c.Header,
	}
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName takes a theme name and returns the full theme name.
// If the name doesn't have a -dark/-light suffix, it appends one based
// on terminal background detection.
func ResolveThemeName(name string) string {
	// If already has suffix, return as-is
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	// Auto-detect and append suffix
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// For the theme and each color_* key, the environment (PCMD_THEME,
// PCMD_COLOR_*) wins over cfg. Unknown themes fall back to default-dark.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := cfg["theme"]
	if env := os.Getenv("PCMD_THEME"); env != "" {
		name = env
	}
	if name == "" {
		name = "default"
	}

	result, ok := Themes[ResolveThemeName(name)]
	if !ok {
		result = Themes["default-dark"]
	}

	for key, field := range result.fields() {
		if env := os.Getenv("PCMD_" + strings.ToUpper(key)); env != "" {
			*field = env
			continue
		}
		if v := cfg[key]; v != "" {
			*field = v
		}
	}

	return result
}
