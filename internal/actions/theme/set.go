package theme

import (
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

func setTheme(sh *dispatchers.Shell, name string, deps Deps) error {
	if err := deps.Set("theme", name); err != nil {
		return err
	}
	if deps.OnChange != nil {
		deps.OnChange("theme")
	}

	_, _ = sh.Printf("theme set to %s\n", style.Success(name))
	return nil
}
