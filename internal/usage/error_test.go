package usage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_GetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{name: "bind", err: Bind(nil, "too many positional arguments"), want: 2},
		{name: "cast", err: Cast("repeat", "x", "int", errors.New("bad")), want: 2},
		{name: "tokenize", err: Tokenize(`"abc`, errors.New("invalid command line string")), want: 2},
		{name: "unknown command", err: UnknownCommand("prnt"), want: 1},
		{name: "wrapper cycle", err: WrapperCycle("print"), want: 1},
		{name: "explicit exit code wins", err: &Error{Kind: ErrBind, ExitCode: 7}, want: 7},
		{name: "unmapped kind", err: &Error{Kind: ErrorKind(99)}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.GetExitCode())
		})
	}
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("dispatch: %w", Bind([]string{"a"}, "boom"))

	require.True(t, Is(wrapped, ErrBind))
	require.False(t, Is(wrapped, ErrCast))
	require.False(t, Is(errors.New("plain"), ErrBind))
}

func TestCast_UnwrapsCause(t *testing.T) {
	cause := errors.New(`strconv.Atoi: parsing "x": invalid syntax`)
	err := Cast("repeat", "x", "int", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "repeat", err.Param)
	require.Equal(t, "x", err.Value)
	require.Equal(t, "int", err.Caster)
	require.Contains(t, err.Error(), "argument 'repeat'")
}

func TestUnknownCommand_Suggestions(t *testing.T) {
	tests := []struct {
		name        string
		suggestions []string
		contains    string
	}{
		{name: "no suggestions", suggestions: nil, contains: "unknown syntax: prnt"},
		{name: "one suggestion", suggestions: []string{"print"}, contains: "did you mean 'print'?"},
		{name: "several suggestions", suggestions: []string{"print", "paint"}, contains: "did you mean one of: print, paint?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UnknownCommand("prnt", tt.suggestions...)
			require.Contains(t, err.Error(), tt.contains)
			require.Equal(t, tt.suggestions, err.Suggestions)
		})
	}
}

func TestMissingOptionValue(t *testing.T) {
	err := MissingOptionValue([]string{"-repeat"}, "repeat")

	require.Equal(t, ErrBind, err.Kind)
	require.Equal(t, []string{"-repeat"}, err.Tokens)
	require.Contains(t, err.Error(), "value not given for option")
}
