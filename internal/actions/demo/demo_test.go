package demo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
)

func newShell(t *testing.T, opts ...dispatchers.ShellOption) (*dispatchers.Shell, *bytes.Buffer) {
	t.Helper()

	reg := dispatchers.NewRegistry()
	require.NoError(t, reg.Register(Commands()...))

	var out bytes.Buffer
	opts = append([]dispatchers.ShellOption{dispatchers.WithStdout(&out)}, opts...)
	return dispatchers.NewShell(reg, opts...), &out
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "print default", line: "print", want: "abc\n"},
		{name: "print argument", line: "print def", want: "def\n"},
		{name: "print repeated", line: "print -repeat 3 def", want: "def\ndef\ndef\n"},
		{name: "print disabled", line: "print -flag off", want: ""},
		{name: "print quoted", line: `print "two words"`, want: "two words\n"},
		{name: "print semicolon word", line: "print a;b", want: "a;b\n"},
		{name: "print non-ascii before operator", line: "print café;latte", want: "café;latte\n"},
		{name: "double", line: "double 1 2 3", want: "2\n4\n6\n"},
		{name: "double nothing", line: "double", want: ""},
		{name: "multiply", line: "multiply 3 1 2", want: "3\n6\n"},
		{name: "shell raw", line: "shell ls -la  'x'", want: "ls -la  'x'\n"},
		{name: "bang shortcut", line: "!echo -n hi", want: "echo -n hi\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, out := newShell(t)

			require.NoError(t, sh.Onecmd(tt.line))
			require.Equal(t, tt.want, out.String())
		})
	}
}

func TestCommands_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "multiply without mul", line: "multiply", want: "could not be bound"},
		{name: "print too many", line: "print a b", want: "could not be bound"},
		{name: "double bad number", line: "double 1 x", want: `While trying to cast "x" with "int"`},
		{name: "print bad repeat", line: "print -repeat many", want: `While trying to cast "many" with "int"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, out := newShell(t)

			require.NoError(t, sh.Onecmd(tt.line))
			require.Contains(t, out.String(), tt.want)
		})
	}
}

func TestPrint_LegacyPrefix(t *testing.T) {
	sh, out := newShell(t, dispatchers.WithOptions(dispatchers.LegacyOptions()))

	require.NoError(t, sh.Onecmd("print --repeat 2 --flag yes xyz"))
	require.Equal(t, "xyz\nxyz\n", out.String())
}

func TestPrint_Help(t *testing.T) {
	sh, out := newShell(t)

	require.NoError(t, sh.Onecmd("help print"))
	require.Equal(t, PrintDoc+"\n\tprint [-flag F(=true)] [-repeat R(=1)] [LINE(=abc)]\n", out.String())
}
