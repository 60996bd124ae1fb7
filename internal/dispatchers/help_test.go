package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsage(t *testing.T) {
	tests := []struct {
		name   string
		h      *Handler
		prefix string
		want   string
	}{
		{name: "options then defaulted positional", h: printCommand(), prefix: "-", want: "print [-flag F(=true)] [-repeat R(=1)] [LINE(=abc)]"},
		{name: "legacy prefix", h: printCommand(), prefix: "--", want: "print [--flag F(=true)] [--repeat R(=1)] [LINE(=abc)]"},
		{name: "required and variadic", h: multiplyCommand(), prefix: "-", want: "multiply MUL [NUMS]"},
		{name: "variadic only", h: doubleCommand(), prefix: "-", want: "double [NUMS]"},
		{name: "raw", h: shellCommand(), prefix: "-", want: "shell LINE"},
		{name: "nil default", h: HelpCommand(), prefix: "-", want: "help [TOPIC]"},
		{name: "empty prefix falls back", h: printCommand(), prefix: "", want: "print [-flag F(=true)] [-repeat R(=1)] [LINE(=abc)]"},
		{
			name:   "no signature",
			h:      Command(CommandSpec{Name: "quit", Action: func(*Shell, *Call) error { return nil }}),
			prefix: "-",
			want:   "quit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Usage(tt.h, tt.prefix))
		})
	}
}

func TestHelp_Command(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "help print", line: "help print", want: printDoc + "\n\tprint [-flag F(=true)] [-repeat R(=1)] [LINE(=abc)]"},
		{name: "question mark shortcut", line: "?multiply", want: "Print `mul` times the numbers given.\n\tmultiply MUL [NUMS]"},
		{name: "unknown topic", line: "help nothing", want: "*** No help on nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestShell(t)

			require.NoError(t, ts.Onecmd(tt.line))
			require.Equal(t, tt.want, ts.output())
		})
	}
}

func TestHelp_WithoutUsage(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowUsage = false
	ts := newTestShell(t, WithOptions(opts))

	require.NoError(t, ts.Onecmd("help print"))
	require.Equal(t, printDoc, ts.output())
}

func TestHelp_Overview(t *testing.T) {
	ts := newTestShell(t)
	ts.Registry.MustRegister(Command(CommandSpec{
		Name:   "secret",
		Action: func(*Shell, *Call) error { return nil },
	}))

	require.NoError(t, ts.Onecmd("help"))

	out := ts.output()
	require.Contains(t, out, "Documented commands (type help <topic>):")
	require.Contains(t, out, "print")
	require.Contains(t, out, "shell built-ins")
	require.Contains(t, out, "Undocumented commands:\n   secret")
	require.Contains(t, out, `Print a given string (defaults to "abc").`)
}

func TestFormatUsage(t *testing.T) {
	require.Equal(t, "quit", formatUsage("quit"))
	require.Equal(t, "print [LINE(=abc)]", formatUsage("print [LINE(=abc)]"))
}
