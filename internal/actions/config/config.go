// Package config holds the command that reads and edits ~/.pcmdrc from
// inside the shell.
package config

import (
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/usage"
)

// Command returns the config handler bound to deps.
//
//	config               list every visible key
//	config KEY           print one value
//	config KEY VALUE     write a value
//	config -unset KEY    remove a key, restoring its default
func Command(deps Deps) *dispatchers.Handler {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:    "config",
		Summary: "Show or change configuration",
		Doc: `Show or change configuration.
Without arguments every key is listed. With KEY its value is printed and
with KEY VALUE it is written. -unset KEY restores the default of KEY.`,
		Category: dispatchers.CategoryConfig,
		Signature: dispatchers.NewSignature().
			Optional("key", nil).
			Optional("value", nil).
			Option("unset", nil),
		Action: func(sh *dispatchers.Shell, call *dispatchers.Call) error {
			return run(sh, call, deps)
		},
	})
}

func run(sh *dispatchers.Shell, call *dispatchers.Call, deps Deps) error {
	if call.Has("unset") {
		if call.Has("key") {
			return usage.InvalidFlag("-unset does not take other arguments")
		}
		return unset(sh, call.String("unset"), deps)
	}

	switch {
	case !call.Has("key"):
		return list(sh, deps)
	case !call.Has("value"):
		return get(sh, call.String("key"), deps)
	default:
		return set(sh, call.String("key"), call.String("value"), deps)
	}
}
