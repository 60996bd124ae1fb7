package dispatchers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/footprint-tools/parsedcmd/internal/domain"
	"github.com/footprint-tools/parsedcmd/internal/log"
	"github.com/footprint-tools/parsedcmd/internal/tokenize"
	"github.com/footprint-tools/parsedcmd/internal/ui"
	"github.com/footprint-tools/parsedcmd/internal/ui/style"
	"github.com/footprint-tools/parsedcmd/internal/usage"
)

// Options controls how a Shell parses lines.
type Options struct {
	// OptionPrefix marks an option token. Every leading occurrence of its
	// characters is stripped to get the option name.
	OptionPrefix string

	Tokenizer  tokenize.Tokenizer
	CastPolicy CastPolicy

	// ShowUsage appends a synthesized usage line to command help.
	ShowUsage bool

	// RepeatLastOnEmpty re-runs the last non-empty line on an empty one.
	RepeatLastOnEmpty bool

	// Shortcuts rewrite a line starting with the key character into the
	// named command followed by the rest of the line.
	Shortcuts map[byte]string
}

// DefaultOptions returns the options a shell uses unless configured.
func DefaultOptions() Options {
	return Options{
		OptionPrefix: DefaultOptionPrefix,
		Tokenizer:    tokenize.Default(),
		CastPolicy:   CastInput,
		ShowUsage:    true,
		Shortcuts:    map[byte]string{'?': "help", '!': "shell"},
	}
}

// LegacyOptions returns the double-dash variant: options are written
// --name value, NUL bytes are kept and input equal to a default is not cast.
func LegacyOptions() Options {
	opts := DefaultOptions()
	opts.OptionPrefix = "--"
	opts.Tokenizer = tokenize.Shell{}
	opts.CastPolicy = CastUnlessDefault
	return opts
}

// BindErrorFunc reports an argument list that does not fit a signature.
type BindErrorFunc func(sh *Shell, tokens []string, reason error)

// CastErrorFunc reports a value rejected by its caster.
type CastErrorFunc func(sh *Shell, param, value, caster string, reason error)

// Shell dispatches lines to registered handlers.
type Shell struct {
	Registry *Registry
	Options  Options
	Stdout   io.Writer
	Logger   domain.Logger

	History domain.HistoryRecorder
	Session domain.SessionID

	PagerOptions []ui.WriterOption

	// Hooks. Nil means the built-in behavior.
	EmptyLine func(sh *Shell) error
	Default   func(sh *Shell, line string) error
	BindError BindErrorFunc
	CastError CastErrorFunc

	lastCmd string
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithStdout sets the writer handlers print to.
func WithStdout(w io.Writer) ShellOption {
	return func(sh *Shell) {
		sh.Stdout = w
	}
}

// WithOptions replaces the parsing options.
func WithOptions(opts Options) ShellOption {
	return func(sh *Shell) {
		sh.Options = opts
	}
}

// WithLogger sets the logger.
func WithLogger(l domain.Logger) ShellOption {
	return func(sh *Shell) {
		sh.Logger = l
	}
}

// WithHistory records every dispatched line under session.
func WithHistory(rec domain.HistoryRecorder, session domain.SessionID) ShellOption {
	return func(sh *Shell) {
		sh.History = rec
		sh.Session = session
	}
}

// WithPagerOptions sets the options of the writer used for help output.
func WithPagerOptions(opts ...ui.WriterOption) ShellOption {
	return func(sh *Shell) {
		sh.PagerOptions = opts
	}
}

// NewShell creates a shell over reg. A help command is registered in reg
// unless one is already present.
func NewShell(reg *Registry, opts ...ShellOption) *Shell {
	if reg == nil {
		reg = NewRegistry()
	}
	sh := &Shell{
		Registry: reg,
		Options:  DefaultOptions(),
		Stdout:   os.Stdout,
		Logger:   log.NopLogger{},
	}
	for _, opt := range opts {
		opt(sh)
	}
	if _, ok := reg.Lookup("help"); !ok {
		reg.MustRegister(HelpCommand())
	}
	return sh
}

// Printf formats and prints to the shell's output.
func (sh *Shell) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(sh.Stdout, format, args...)
}

// Println prints a line to the shell's output.
func (sh *Shell) Println(args ...any) (int, error) {
	return fmt.Fprintln(sh.Stdout, args...)
}

// Pager shows content through the pager configured for this shell.
func (sh *Shell) Pager(content string) {
	ui.NewWriterTo(sh.Stdout, sh.PagerOptions...).Pager(content)
}

// LastCmd returns the last non-empty line dispatched.
func (sh *Shell) LastCmd() string {
	return sh.lastCmd
}

// ParseLine splits a line into the command word and the rest.
//
// The line is trimmed first. A line starting with a shortcut character is
// rewritten to the shortcut's command when that command is registered;
// otherwise the command comes back empty so the line goes to Default.
func (sh *Shell) ParseLine(line string) (cmd, arg, trimmed string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", ""
	}

	if target, ok := sh.Options.Shortcuts[line[0]]; ok {
		if _, registered := sh.Registry.Lookup(target); !registered {
			return "", "", line
		}
		line = target + " " + line[1:]
	}

	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, "", line
	}
	return line[:i], strings.TrimSpace(line[i:]), line
}

// Onecmd interprets one line.
//
// Bind and cast failures are reported through the BindError and CastError
// hooks and are not returned. Errors returned by the handler, including
// ErrQuit, are returned unchanged.
func (sh *Shell) Onecmd(line string) error {
	cmd, arg, line := sh.ParseLine(line)
	if line == "" {
		return sh.emptyLine()
	}
	if cmd == "" {
		return sh.unknown(cmd, line)
	}

	sh.lastCmd = line
	if line == "EOF" {
		sh.lastCmd = ""
	}

	h, ok := sh.Registry.Lookup(cmd)
	if !ok {
		return sh.unknown(cmd, line)
	}
	return sh.dispatch(h, cmd, arg, line)
}

func (sh *Shell) dispatch(h *Handler, cmd, arg, line string) error {
	call, err := sh.Prepare(h, cmd, arg, line)
	if err != nil {
		return sh.reportUsage(cmd, line, err)
	}

	sh.Logger.Debug("dispatch: %s %q", cmd, arg)

	err = h.Action(sh, call)
	switch {
	case err == nil, errors.Is(err, ErrQuit):
		sh.record(cmd, line, domain.OutcomeOK, "")
	default:
		sh.Logger.Warn("command %s failed: %v", cmd, err)
		sh.record(cmd, line, domain.OutcomeHandlerError, err.Error())
	}
	return err
}

// Prepare turns the argument part of a line into a Call for h without
// invoking it.
func (sh *Shell) Prepare(h *Handler, cmd, arg, line string) (*Call, error) {
	res, err := Resolve(h)
	if err != nil {
		return nil, err
	}
	if res.Raw {
		return NewCall(cmd, line, arg, nil, nil), nil
	}

	tok := sh.Options.Tokenizer
	if tok == nil {
		tok = tokenize.Default()
	}
	tokens, err := tok.Split(arg)
	if err != nil {
		return nil, err
	}

	positional, named, err := SplitOptions(tokens, res.Signature, sh.Options.OptionPrefix)
	if err != nil {
		return nil, err
	}

	bound, err := Bind(positional, named, res.Signature)
	if err != nil {
		return nil, err
	}

	cast, err := Cast(bound, res.Signature, sh.Options.CastPolicy)
	if err != nil {
		return nil, err
	}

	return NewCall(cmd, line, arg, res.Signature, cast), nil
}

func (sh *Shell) reportUsage(cmd, line string, err error) error {
	var ue *usage.Error
	if !errors.As(err, &ue) || ue.Kind == usage.ErrWrapperCycle {
		sh.Logger.Error("command %s: %v", cmd, err)
		return err
	}

	if ue.Kind == usage.ErrCast {
		sh.Logger.Info("command %s: %v", cmd, ue)
		sh.record(cmd, line, domain.OutcomeCastError, ue.Error())
		sh.castError(ue.Param, ue.Value, ue.Caster, ue.Err)
		return nil
	}

	tokens := ue.Tokens
	if ue.Kind == usage.ErrTokenize && tokens == nil {
		tokens = []string{ue.Value}
	}
	sh.Logger.Info("command %s: %v", cmd, ue)
	sh.record(cmd, line, domain.OutcomeBindError, ue.Error())
	sh.bindError(tokens, ue)
	return nil
}

func (sh *Shell) emptyLine() error {
	if sh.EmptyLine != nil {
		return sh.EmptyLine(sh)
	}
	if sh.Options.RepeatLastOnEmpty && sh.lastCmd != "" {
		return sh.Onecmd(sh.lastCmd)
	}
	sh.record("", "", domain.OutcomeEmpty, "")
	return nil
}

func (sh *Shell) unknown(cmd, line string) error {
	sh.record(cmd, line, domain.OutcomeUnknown, "")
	if sh.Default != nil {
		return sh.Default(sh, line)
	}

	var suggestions []string
	if cmd != "" {
		suggestions = FindSimilarCommands(cmd, sh.Registry, 3)
	}
	err := usage.UnknownCommand(line, suggestions...)

	msg, hint, _ := strings.Cut(err.Error(), "\n")
	sh.Println(style.Error("*** " + capitalize(msg)))
	if hint != "" {
		sh.Println(style.Muted("*** " + hint))
	}
	return nil
}

func (sh *Shell) bindError(tokens []string, reason error) {
	if sh.BindError != nil {
		sh.BindError(sh, tokens, reason)
		return
	}
	sh.Println(style.Error(fmt.Sprintf("*** This argument list could not be bound: %q", tokens)))
	sh.Println(style.Muted("*** " + reason.Error()))
}

func (sh *Shell) castError(param, value, caster string, reason error) {
	if sh.CastError != nil {
		sh.CastError(sh, param, value, caster, reason)
		return
	}
	msg := fmt.Sprintf(`*** While trying to cast "%s" with "%s" for argument "%s", the following error occurred:`, value, caster, param)
	sh.Println(style.Error(strings.ReplaceAll(ansi.Wordwrap(msg, 72, ""), "\n", "\n*** ")))
	sh.Println(style.Muted(fmt.Sprintf("*** %v", reason)))
}

func (sh *Shell) record(cmd, line string, outcome domain.Outcome, reason string) {
	if sh.History == nil {
		return
	}
	err := sh.History.Record(domain.HistoryEntry{
		SessionID: sh.Session,
		Line:      line,
		Command:   cmd,
		Outcome:   outcome,
		Reason:    reason,
	})
	if err != nil {
		sh.Logger.Warn("history: record %q: %v", line, err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
