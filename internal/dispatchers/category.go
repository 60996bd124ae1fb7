package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryGeneral                       // Everyday commands
	CategoryMath                          // Arithmetic over typed arguments
	CategorySession                       // History and the current session
	CategoryConfig                        // Configuration
	CategoryBuiltin                       // help, shell escapes, quitting
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryGeneral:
		return "commands"
	case CategoryMath:
		return "arithmetic"
	case CategorySession:
		return "session and history"
	case CategoryConfig:
		return "configure pcmd"
	case CategoryBuiltin:
		return "shell built-ins"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryGeneral,
	CategoryMath,
	CategorySession,
	CategoryConfig,
	CategoryBuiltin,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
