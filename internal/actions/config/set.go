package config

import (
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

func set(sh *dispatchers.Shell, key, value string, deps Deps) error {
	if err := deps.Set(key, value); err != nil {
		return err
	}
	deps.changed(key)

	_, _ = sh.Printf("%s %s=%s\n", style.Success("set"), key, value)
	return nil
}
