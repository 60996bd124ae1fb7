package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/footprint-tools/parsedcmd/internal/app"
	"github.com/footprint-tools/parsedcmd/internal/cli"
	"github.com/footprint-tools/parsedcmd/internal/completions"
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/repl"
	"github.com/footprint-tools/parsedcmd/internal/usage"
)

var version = "dev"

const intro = `pcmd %s. Type "help" for a list of commands.`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, err := cli.ParseFlags(args)
	if err != nil {
		return fail(stderr, err)
	}
	if flags.Help {
		fmt.Fprint(stdout, flags.Usage())
		return 0
	}
	if flags.Version {
		fmt.Fprintf(stdout, "pcmd version %s\n", version)
		return 0
	}

	a, err := app.New(app.Options{
		ConfigPath:    flags.ConfigPath,
		PagerDisabled: flags.NoPager,
		PagerOverride: flags.Pager,
		StyleEnabled:  isTerminal(stdout) && !flags.NoColor,
		NoHistory:     flags.NoHistory,
		Legacy:        flags.Legacy,
		Stdout:        stdout,
	})
	if err != nil {
		return fail(stderr, err)
	}

	code := dispatch(a, flags, stdin, stdout, stderr)
	if err := app.Close(a); err != nil {
		fmt.Fprintf(stderr, "pcmd: %v\n", err)
	}
	return code
}

func dispatch(a *app.App, flags cli.Flags, stdin io.Reader, stdout, stderr io.Writer) int {
	sh, err := a.Shell(version)
	if err != nil {
		return fail(stderr, err)
	}
	ctx := context.Background()

	switch {
	case len(flags.Commands) > 0:
		for _, line := range flags.Commands {
			err := sh.Onecmd(line)
			if errors.Is(err, dispatchers.ErrQuit) {
				break
			}
			if err != nil {
				return fail(stderr, err)
			}
		}
		return 0

	case flags.Script != "":
		f, err := os.Open(flags.Script)
		if err != nil {
			return fail(stderr, err)
		}
		defer func() { _ = f.Close() }()

		loop := &repl.Loop{
			Shell:       sh,
			Source:      repl.NewScannerSource(f, nil),
			StopOnError: true,
		}
		if err := loop.Run(ctx); err != nil {
			return fail(stderr, err)
		}
		return 0
	}

	loop := &repl.Loop{
		Shell:  sh,
		Source: newSource(sh, stdin, stdout),
		Prompt: a.Settings.Prompt,
	}
	if isTerminal(stdin) && isTerminal(stdout) {
		loop.Intro = fmt.Sprintf(intro, version)
	}
	// config can change the prompt from inside the loop.
	loop.PostCmd = func(stop bool, _ string) bool {
		loop.Prompt = a.Settings.Prompt
		return stop
	}

	if err := loop.Run(ctx); err != nil {
		return fail(stderr, err)
	}
	return 0
}

func newSource(sh *dispatchers.Shell, stdin io.Reader, stdout io.Writer) repl.Source {
	in, inOK := stdin.(*os.File)
	out, outOK := stdout.(*os.File)
	if !inOK || !outOK {
		return repl.NewScannerSource(stdin, nil)
	}

	complete := func(line string) []string {
		return completions.Line(sh.Registry, line, sh.Options.OptionPrefix)
	}
	return repl.NewSource(in, out, complete, false)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func fail(stderr io.Writer, err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, ue.Error())
		return ue.GetExitCode()
	}
	fmt.Fprintf(stderr, "pcmd: %v\n", err)
	return 1
}
