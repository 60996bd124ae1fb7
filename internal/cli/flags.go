package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/footprint-tools/parsedcmd/internal/usage"
)

// Flags is the parsed process command line.
type Flags struct {
	// Commands are run in order instead of the interactive loop.
	Commands []string

	// Script is a file whose lines are run instead of reading stdin.
	Script string

	ConfigPath string
	NoColor    bool
	NoPager    bool
	Pager      string
	NoHistory  bool
	Legacy     bool
	Version    bool
	Help       bool

	set *pflag.FlagSet
}

// ParseFlags parses args (without the program name).
func ParseFlags(args []string) (Flags, error) {
	var f Flags

	fs := pflag.NewFlagSet("pcmd", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringArrayVarP(&f.Commands, "command", "c", nil, "run `line` and exit (repeatable)")
	fs.StringVar(&f.ConfigPath, "config", "", "read settings from `path` instead of ~/.pcmdrc")
	fs.BoolVar(&f.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&f.NoPager, "no-pager", false, "never page output")
	fs.StringVar(&f.Pager, "pager", "", "page output through `cmd`")
	fs.BoolVar(&f.NoHistory, "no-history", false, "do not record this session")
	fs.BoolVar(&f.Legacy, "legacy", false, "use --name options, keep NUL bytes and skip casting defaults")
	fs.BoolVarP(&f.Version, "version", "v", false, "print the version and exit")
	fs.BoolVarP(&f.Help, "help", "h", false, "show this help")
	f.set = fs

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			f.Help = true
			return f, nil
		}
		return f, flagError(err.Error())
	}

	switch rest := fs.Args(); {
	case len(rest) > 1:
		return f, flagError(fmt.Sprintf("unexpected argument: %s", rest[1]))
	case len(rest) == 1:
		if len(f.Commands) > 0 {
			return f, flagError("--command and a script file cannot be combined")
		}
		f.Script = rest[0]
	}

	return f, nil
}

func flagError(msg string) *usage.Error {
	return &usage.Error{Kind: usage.ErrInvalidFlag, Message: "pcmd: " + msg}
}

// Usage returns the help text for the command line.
func (f Flags) Usage() string {
	text := "Usage: pcmd [flags] [script]\n\n" +
		"Without a script or --command, pcmd reads commands interactively.\n\n" +
		"Flags:\n"
	if f.set != nil {
		text += f.set.FlagUsages()
	}
	return text
}
