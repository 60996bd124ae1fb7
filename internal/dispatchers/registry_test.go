package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	noop := func(*Shell, *Call) error { return nil }

	cyclic := &Handler{Name: "loop", Action: noop}
	cyclic.Wrapped = cyclic

	tests := []struct {
		name    string
		h       *Handler
		wantErr string
	}{
		{name: "valid", h: printCommand()},
		{name: "nil", h: nil, wantErr: "nil handler"},
		{name: "empty name", h: &Handler{Action: noop}, wantErr: "invalid command name"},
		{name: "space in name", h: &Handler{Name: "a b", Action: noop}, wantErr: "invalid command name"},
		{name: "no action", h: &Handler{Name: "idle"}, wantErr: "has no action"},
		{name: "cycle", h: cyclic, wantErr: "contains a cycle"},
		{
			name:    "bad signature",
			h:       Command(CommandSpec{Name: "bad", Signature: NewSignature().Optional("a", 1).Arg("b"), Action: noop}),
			wantErr: "follows a parameter with a default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.h)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_Duplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(printCommand()))
	require.ErrorContains(t, reg.Register(printCommand()), "already registered")
	require.Panics(t, func() { reg.MustRegister(printCommand()) })
}

func TestRegistry_Names(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(shellCommand(), printCommand(), doubleCommand())

	require.Equal(t, []string{"double", "print", "shell"}, reg.Names())
	require.Len(t, reg.Handlers(), 3)
	require.Equal(t, "double", reg.Handlers()[0].Name)

	_, ok := reg.Lookup("print")
	require.True(t, ok)
	_, ok = reg.Lookup("nope")
	require.False(t, ok)
}

func TestResolve(t *testing.T) {
	passthrough := func(next CommandFunc) CommandFunc { return next }
	base := printCommand()

	res, err := Resolve(Wrap(Wrap(base, passthrough), passthrough))
	require.NoError(t, err)
	require.Same(t, base, res.Source)
	require.Same(t, base.Signature, res.Signature)
	require.False(t, res.Raw)

	sig := NewSignature().Arg("only")
	outer := WrapWithSignature(base, sig, passthrough)
	res, err = Resolve(Wrap(outer, passthrough))
	require.NoError(t, err)
	require.Same(t, outer, res.Source)
	require.Same(t, sig, res.Signature)

	res, err = Resolve(&Handler{Name: "bare"})
	require.NoError(t, err)
	require.Empty(t, res.Signature.Params)

	inner := shellCommand()
	res, err = Resolve(&Handler{Name: "shell", Wrapped: inner})
	require.NoError(t, err)
	require.True(t, res.Raw)
}
