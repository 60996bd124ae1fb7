package config

import (
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/usage"
)

func get(sh *dispatchers.Shell, key string, deps Deps) error {
	value, found := deps.Get(key)
	if !found {
		return usage.InvalidConfigKey(key)
	}

	_, _ = sh.Println(value)
	return nil
}
