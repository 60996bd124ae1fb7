package repl

import (
	"context"
	"errors"
	"io"

	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

// Loop drives a Shell from a Source.
//
// Each iteration reads a line, passes it through PreCmd, dispatches it
// with Onecmd and hands the result to PostCmd. The loop ends when a
// handler returns dispatchers.ErrQuit, when PostCmd asks to stop or when
// the source is exhausted. At end of input the EOF command is dispatched
// if one is registered.
type Loop struct {
	Shell  *dispatchers.Shell
	Source Source

	Prompt string
	Intro  string

	// StopOnError ends the loop on the first handler error instead of
	// printing it and reading the next line.
	StopOnError bool

	PreLoop  func()
	PostLoop func()
	PreCmd   func(line string) string
	PostCmd  func(stop bool, line string) bool
}

// Run executes the loop until it stops or ctx is cancelled.
// A quit is not an error.
func (l *Loop) Run(ctx context.Context) error {
	sh := l.Shell

	if l.PreLoop != nil {
		l.PreLoop()
	}
	if l.Intro != "" {
		sh.Println(l.Intro)
	}

	err := l.run(ctx)

	if l.PostLoop != nil {
		l.PostLoop()
	}
	return err
}

func (l *Loop) run(ctx context.Context) error {
	sh := l.Shell

	for {
		line, err := l.Source.ReadLine(ctx, l.Prompt)
		atEOF := errors.Is(err, io.EOF)
		switch {
		case errors.Is(err, ErrInterrupted):
			continue
		case atEOF:
			if _, ok := sh.Registry.Lookup("EOF"); !ok {
				return nil
			}
			line = "EOF"
		case err != nil:
			return err
		}

		if l.PreCmd != nil {
			line = l.PreCmd(line)
		}

		stop, err := l.dispatch(line)
		if err != nil {
			return err
		}
		if l.PostCmd != nil {
			stop = l.PostCmd(stop, line)
		}
		if stop || atEOF {
			return nil
		}
	}
}

// dispatch runs one line. Handler errors are shown and swallowed unless
// StopOnError is set.
func (l *Loop) dispatch(line string) (stop bool, err error) {
	err = l.Shell.Onecmd(line)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, dispatchers.ErrQuit):
		return true, nil
	case l.StopOnError:
		return true, err
	}

	l.Shell.Println(style.Error("*** Error: " + err.Error()))
	return false, nil
}
