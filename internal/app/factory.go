// Package app wires the pcmd shell together from its configuration.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/parsedcmd/internal/actions/config"
	"github.com/footprint-tools/parsedcmd/internal/actions/history"
	"github.com/footprint-tools/parsedcmd/internal/actions/logs"
	"github.com/footprint-tools/parsedcmd/internal/actions/theme"
	"github.com/footprint-tools/parsedcmd/internal/cli"
	cfg "github.com/footprint-tools/parsedcmd/internal/config"
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/domain"
	"github.com/footprint-tools/parsedcmd/internal/log"
	"github.com/footprint-tools/parsedcmd/internal/paths"
	"github.com/footprint-tools/parsedcmd/internal/store"
	"github.com/footprint-tools/parsedcmd/internal/tokenize"
	"github.com/footprint-tools/parsedcmd/internal/ui"
	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Empty paths use the per-user defaults.
	ConfigPath string
	DBPath     string
	LogPath    string

	// Pager options
	PagerDisabled bool
	PagerOverride string

	// StyleEnabled is whether output may be colored at all, usually
	// whether stdout is a terminal. The theme comes from the config.
	StyleEnabled bool

	// NoHistory keeps this session out of the history database.
	NoHistory bool

	// Legacy switches to --name options, kept NUL bytes and the
	// unless_default cast policy whatever the config says.
	Legacy bool

	Stdout io.Writer
}

// App is a configured pcmd instance.
type App struct {
	*domain.Application

	Settings cfg.Settings

	provider *cfg.Provider
	store    *store.Store
	logPath  string
	opts     Options
	shell    *dispatchers.Shell
}

// New creates an App with all dependencies wired up. Invalid config values
// are not fatal: they fall back to their defaults and are logged.
func New(opts Options) (*App, error) {
	provider, err := newProvider(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	settings, loadErr := cfg.Load(provider)

	logPath := opts.LogPath
	if logPath == "" {
		logPath = paths.LogFilePath()
	}

	session := domain.NewSessionID()

	var logger domain.Logger = log.NopLogger{}
	if settings.EnableLog {
		l, err := log.New(logPath, log.ParseLevel(settings.LogLevel))
		if err == nil {
			l.SetTag(shortSession(session))
			log.SetDefault(l)
			logger = l
		}
	}
	if loadErr != nil {
		logger.Warn("%v", loadErr)
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = store.DBPath()
	}
	historyStore, err := store.New(dbPath)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	a := &App{
		Application: &domain.Application{
			Session: session,
			History: historyStore,
			Config:  provider,
			Logger:  logger,
			Styler:  style.NewStyler(),
		},
		Settings: settings,
		provider: provider,
		store:    historyStore,
		logPath:  logPath,
		opts:     opts,
	}
	a.Output = ui.NewWriterTo(stdout, a.writerOptions()...)

	a.initStyle()
	logger.Debug("session %s started, config %s, history %s", session, provider.Path(), dbPath)

	return a, nil
}

// NewForTesting creates an App whose files all live in dir. Output goes
// to out and styling and the pager are off.
func NewForTesting(dir string, out io.Writer) (*App, error) {
	return New(Options{
		ConfigPath:    filepath.Join(dir, ".pcmdrc"),
		DBPath:        filepath.Join(dir, "history.db"),
		LogPath:       filepath.Join(dir, "pcmd.log"),
		PagerDisabled: true,
		Stdout:        out,
	})
}

func newProvider(path string) (*cfg.Provider, error) {
	if path != "" {
		return cfg.NewProviderAt(path), nil
	}
	return cfg.NewProvider()
}

func shortSession(id domain.SessionID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func (a *App) writerOptions() []ui.WriterOption {
	var opts []ui.WriterOption
	if a.opts.PagerDisabled {
		opts = append(opts, ui.WithPagerDisabled())
	}
	if a.opts.PagerOverride != "" {
		opts = append(opts, ui.WithPagerOverride(a.opts.PagerOverride))
	}
	return append(opts, ui.WithConfigGetter(a.provider.Get))
}

func (a *App) initStyle() {
	all, err := a.provider.GetAll()
	if err != nil {
		a.Logger.Warn("read config for theme: %v", err)
	}
	style.Init(a.opts.StyleEnabled, all)
}

// Shell returns the shell that dispatches lines for this App, building
// it on first use.
func (a *App) Shell(version string) (*dispatchers.Shell, error) {
	if a.shell != nil {
		return a.shell, nil
	}

	configDeps := config.DefaultDeps(a.provider)
	configDeps.OnChange = a.reload

	themeDeps := theme.DefaultDeps(a.provider)
	themeDeps.OnChange = a.reload

	logsDeps := logs.DefaultDeps()
	logsDeps.LogFilePath = func() string { return a.logPath }

	reg, err := cli.BuildRegistry(cli.Deps{
		Version: version,
		History: history.DefaultDeps(a.store, a.Session),
		Config:  configDeps,
		Theme:   themeDeps,
		Logs:    logsDeps,
		Logger:  a.Logger,
	})
	if err != nil {
		return nil, err
	}

	shellOpts, err := a.shellOptions()
	if err != nil {
		return nil, err
	}

	stdout := a.opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	options := []dispatchers.ShellOption{
		dispatchers.WithStdout(stdout),
		dispatchers.WithOptions(shellOpts),
		dispatchers.WithLogger(a.Logger),
		dispatchers.WithPagerOptions(a.writerOptions()...),
	}
	if a.recordsHistory() {
		options = append(options, dispatchers.WithHistory(a.store, a.Session))
	}

	a.shell = dispatchers.NewShell(reg, options...)
	return a.shell, nil
}

func (a *App) recordsHistory() bool {
	return a.Settings.HistoryEnabled && !a.opts.NoHistory
}

func (a *App) shellOptions() (dispatchers.Options, error) {
	s := a.Settings

	opts := dispatchers.DefaultOptions()
	opts.ShowUsage = s.ShowUsage
	opts.RepeatLastOnEmpty = s.RepeatEmpty

	if a.opts.Legacy {
		legacy := dispatchers.LegacyOptions()
		opts.OptionPrefix = legacy.OptionPrefix
		opts.Tokenizer = legacy.Tokenizer
		opts.CastPolicy = legacy.CastPolicy
		return opts, nil
	}

	policy, err := dispatchers.ParseCastPolicy(s.CastPolicy)
	if err != nil {
		return opts, err
	}
	opts.OptionPrefix = s.OptionPrefix
	opts.Tokenizer = tokenize.Shell{StripNUL: s.StripNUL}
	opts.CastPolicy = policy
	return opts, nil
}

// reload re-reads the settings after key was written from inside the
// shell so the change applies to the next line.
func (a *App) reload(key string) {
	settings, err := cfg.Load(a.provider)
	if err != nil {
		a.Logger.Warn("reload config after %s: %v", key, err)
	}
	a.Settings = settings

	if key == "theme" || strings.HasPrefix(key, "color_") {
		a.initStyle()
	}

	if a.shell != nil {
		opts, err := a.shellOptions()
		if err != nil {
			a.Logger.Warn("reload shell options: %v", err)
			return
		}
		a.shell.Options = opts
		if a.recordsHistory() {
			a.shell.History, a.shell.Session = a.store, a.Session
		} else {
			a.shell.History = nil
		}
	}
	a.Logger.Debug("config %s changed", key)
}

// Close prunes the history to history_limit and releases the store and
// the log file.
func Close(a *App) error {
	if a == nil {
		return nil
	}

	var errs []error
	if a.store != nil {
		if a.Settings.HistoryLimit > 0 {
			if n, err := a.store.Prune(a.Settings.HistoryLimit); err != nil {
				errs = append(errs, fmt.Errorf("prune history: %w", err))
			} else if n > 0 {
				a.Logger.Debug("pruned %d history entries", n)
			}
		}
		errs = append(errs, a.store.Close())
	}
	if a.Logger != nil {
		_ = a.Logger.Close()
	}
	return errors.Join(errs...)
}
