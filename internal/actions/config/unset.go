package config

import (
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/domain"
	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

func unset(sh *dispatchers.Shell, key string, deps Deps) error {
	if err := deps.Unset(key); err != nil {
		return err
	}
	deps.changed(key)

	def, _ := domain.GetDefaultValue(key)
	_, _ = sh.Printf("%s %s %s\n", style.Success("unset"), key, style.Muted("(default "+quoteEmpty(def)+")"))
	return nil
}

func quoteEmpty(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
