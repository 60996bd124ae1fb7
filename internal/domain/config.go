package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in UI (Shell, History, Display, etc.)
	Hidden      bool   // Hidden keys are not shown in help or config list
	HideIfEmpty bool   // Only show in config list if explicitly set
}

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
// Order determines display order in `config -list`.
var ConfigKeys = []ConfigKey{
	// Shell
	{
		Name:        "prompt",
		Default:     "(pcmd) ",
		Description: "Prompt shown before each line",
		Section:     "Shell",
	},
	{
		Name:        "option_prefix",
		Default:     "-",
		Description: "Prefix marking an option token (-name value); use -- for the legacy style",
		Section:     "Shell",
	},
	{
		Name:        "strip_nul",
		Default:     "true",
		Description: "Remove NUL bytes from tokens (true/false)",
		Section:     "Shell",
	},
	{
		Name:        "cast_policy",
		Default:     "input",
		Description: "When casters run: input (every typed value) or unless_default (skip values equal to the default)",
		Section:     "Shell",
	},
	{
		Name:        "show_usage",
		Default:     "true",
		Description: "Append a usage line to command help (true/false)",
		Section:     "Shell",
	},
	{
		Name:        "repeat_empty",
		Default:     "false",
		Description: "Repeat the last command on an empty line (true/false)",
		Section:     "Shell",
	},
	// History
	{
		Name:        "history_enabled",
		Default:     "true",
		Description: "Record dispatched lines in the history database (true/false)",
		Section:     "History",
	},
	{
		Name:        "history_limit",
		Default:     "1000",
		Description: "Number of history entries kept when the shell exits",
		Section:     "History",
	},
	// Display
	{
		Name:        "pager",
		Default:     "less -FRSX",
		Description: "Pager command for long output",
		Section:     "Display",
	},
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, neon, aurora, mono, ocean, sunset, candy, contrast",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum level written to the log: debug, info, warn, error",
		Section:     "Logging",
	},
	// Color Overrides - override specific colors from the current theme (ANSI 0-255)
	{
		Name:        "color_success",
		Description: "Override success color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_warning",
		Description: "Override warning color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_error",
		Description: "Override error color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_info",
		Description: "Override info color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Description: "Override muted text color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_header",
		Description: "Override header style from current theme (ANSI 0-255 or 'bold')",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Shell", "History", "Display", "Logging", "Color Overrides"}
}

// ConfigKeysBySection returns visible config keys grouped by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		if !key.Hidden {
			result[key.Section] = append(result[key.Section], key)
		}
	}
	return result
}
