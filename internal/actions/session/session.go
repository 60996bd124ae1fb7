// Package session holds the commands that control the shell itself.
package session

import (
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
)

// Commands returns quit, EOF and version. The version command prints v.
func Commands(v string) []*dispatchers.Handler {
	return []*dispatchers.Handler{
		Quit(),
		EOF(),
		Version(v),
	}
}

// Quit ends the command loop.
func Quit() *dispatchers.Handler {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "quit",
		Summary:  "Leave the shell",
		Doc:      "Leave the shell. Ctrl+D on an empty line does the same.",
		Category: dispatchers.CategoryBuiltin,
		Action: func(*dispatchers.Shell, *dispatchers.Call) error {
			return dispatchers.ErrQuit
		},
	})
}

// EOF is dispatched by the loop when input ends. It finishes the prompt
// line before quitting.
func EOF() *dispatchers.Handler {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "EOF",
		Category: dispatchers.CategoryBuiltin,
		Action: func(sh *dispatchers.Shell, _ *dispatchers.Call) error {
			_, _ = sh.Println()
			return dispatchers.ErrQuit
		},
	})
}

// Version prints the shell version.
func Version(v string) *dispatchers.Handler {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Summary:  "Show the pcmd version",
		Category: dispatchers.CategorySession,
		Action: func(sh *dispatchers.Shell, _ *dispatchers.Call) error {
			_, _ = sh.Printf("pcmd version %v\n", v)
			return nil
		},
	})
}
