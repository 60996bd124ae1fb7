// Package cli assembles the commands of the pcmd shell and parses the
// process command line.
package cli

import (
	"time"

	"github.com/footprint-tools/parsedcmd/internal/actions/config"
	"github.com/footprint-tools/parsedcmd/internal/actions/demo"
	"github.com/footprint-tools/parsedcmd/internal/actions/history"
	"github.com/footprint-tools/parsedcmd/internal/actions/logs"
	"github.com/footprint-tools/parsedcmd/internal/actions/session"
	"github.com/footprint-tools/parsedcmd/internal/actions/theme"
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/domain"
	"github.com/footprint-tools/parsedcmd/internal/log"
)

// Deps carries what the command groups are bound to.
type Deps struct {
	Version string
	History history.Deps
	Config  config.Deps
	Theme   theme.Deps
	Logs    logs.Deps
	Logger  domain.Logger
}

// BuildRegistry returns a registry holding every pcmd command. Each
// handler is wrapped to log how long it ran; the wrappers are transparent
// so binding, help and completion still see the inner signatures.
func BuildRegistry(deps Deps) (*dispatchers.Registry, error) {
	logger := deps.Logger
	if logger == nil {
		logger = log.NopLogger{}
	}

	var handlers []*dispatchers.Handler
	handlers = append(handlers, demo.Commands()...)
	handlers = append(handlers, session.Commands(deps.Version)...)
	handlers = append(handlers, history.Commands(deps.History)...)
	handlers = append(handlers,
		config.Command(deps.Config),
		theme.Command(deps.Theme),
		logs.Command(deps.Logs),
	)

	reg := dispatchers.NewRegistry()
	for _, h := range handlers {
		if err := reg.Register(dispatchers.Wrap(h, timed(logger, h.Name))); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func timed(logger domain.Logger, name string) dispatchers.Middleware {
	return func(next dispatchers.CommandFunc) dispatchers.CommandFunc {
		return func(sh *dispatchers.Shell, call *dispatchers.Call) error {
			start := time.Now()
			err := next(sh, call)
			logger.Debug("command %s finished in %s", name, time.Since(start).Round(time.Microsecond))
			return err
		}
	}
}
