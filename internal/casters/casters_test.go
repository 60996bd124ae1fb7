package casters

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestBool(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "off", want: false},
		{raw: "OFF", want: false},
		{raw: "false", want: false},
		{raw: "False", want: false},
		{raw: "f", want: false},
		{raw: "0", want: false},
		{raw: "on", want: true},
		{raw: "true", want: true},
		{raw: "1", want: true},
		{raw: "", want: true},
		{raw: "anything", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Bool.Cast(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestInt(t *testing.T) {
	got, err := Int.Cast("42")
	require.NoError(t, err)
	require.Equal(t, 42, got)

	_, err = Int.Cast("4x")
	require.Error(t, err)
	require.Equal(t, "int", Int.String())
}

func TestFloat(t *testing.T) {
	got, err := Float.Cast("2.5")
	require.NoError(t, err)
	require.Equal(t, 2.5, got)

	_, err = Float.Cast("two")
	require.Error(t, err)
}

func TestDuration(t *testing.T) {
	got, err := Duration.Cast("1m30s")
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, got)
}

func TestDate(t *testing.T) {
	got, err := Date.Cast("2024-01-15")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = Date.Cast("15/01/2024")
	require.Error(t, err)
}

func TestUUID(t *testing.T) {
	id := uuid.New()

	got, err := UUID.Cast(id.String())
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = UUID.Cast("not-a-uuid")
	require.Error(t, err)
}

func TestChoice(t *testing.T) {
	c := Choice("ok", "bind_error")

	got, err := c.Cast("ok")
	require.NoError(t, err)
	require.Equal(t, "ok", got)

	_, err = c.Cast("nope")
	require.ErrorContains(t, err, "not one of ok, bind_error")
	require.Equal(t, "choice(ok|bind_error)", c.String())

	e, ok := c.(Enumerable)
	require.True(t, ok)
	require.Equal(t, []string{"ok", "bind_error"}, e.Values())

	_, ok = Int.(Enumerable)
	require.False(t, ok)
}

func TestFunc(t *testing.T) {
	boom := errors.New("boom")
	c := Func("fail", func(string) (any, error) { return nil, boom })

	_, err := c.Cast("x")
	require.ErrorIs(t, err, boom)
	require.Equal(t, "fail", c.String())
}

func TestOf_FailureReturnsNilValue(t *testing.T) {
	v, err := Int.Cast("nan")
	require.Error(t, err)
	require.Nil(t, v)
}
