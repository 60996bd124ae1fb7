// Package casters converts raw string tokens into typed values.
//
// A Caster is attached to a parameter of a command signature. It is only
// ever applied to values that came from the input line; declared defaults
// are already typed and are passed through untouched.
package casters

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Caster converts a raw token into a typed value.
type Caster interface {
	Cast(raw string) (any, error)

	// String names the caster in diagnostics (e.g. "int").
	String() string
}

type funcCaster struct {
	name string
	fn   func(string) (any, error)
}

func (c funcCaster) Cast(raw string) (any, error) {
	return c.fn(raw)
}

func (c funcCaster) String() string {
	return c.name
}

// Func adapts a plain function to the Caster interface.
func Func(name string, fn func(string) (any, error)) Caster {
	return funcCaster{name: name, fn: fn}
}

// Of adapts a typed conversion function to the Caster interface.
func Of[T any](name string, fn func(string) (T, error)) Caster {
	return funcCaster{
		name: name,
		fn: func(raw string) (any, error) {
			v, err := fn(raw)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

var (
	// String returns the token unchanged.
	String = Of("str", func(s string) (string, error) { return s, nil })

	// Int parses a base-10 integer.
	Int = Of("int", strconv.Atoi)

	// Float parses a 64-bit floating point number.
	Float = Of("float", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})

	// Bool is a lenient boolean: "off", "false", "f" and "0" (any case)
	// are false, everything else is true. It never fails.
	Bool = Of("boolean", func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "off", "false", "f", "0":
			return false, nil
		}
		return true, nil
	})

	// Duration parses a Go duration such as "1m30s".
	Duration = Of("duration", time.ParseDuration)

	// Date parses a YYYY-MM-DD date.
	Date = Of("date", func(s string) (time.Time, error) {
		return time.Parse("2006-01-02", s)
	})

	// UUID parses a UUID in any of the forms accepted by uuid.Parse.
	UUID = Of("uuid", uuid.Parse)
)

// Enumerable is implemented by casters that accept a fixed set of tokens.
type Enumerable interface {
	Values() []string
}

type choiceCaster struct {
	values []string
}

// Choice accepts only one of the given values.
func Choice(values ...string) Caster {
	return choiceCaster{values: slices.Clone(values)}
}

func (c choiceCaster) Cast(raw string) (any, error) {
	if slices.Contains(c.values, raw) {
		return raw, nil
	}
	return nil, fmt.Errorf("%q is not one of %s", raw, strings.Join(c.values, ", "))
}

func (c choiceCaster) String() string {
	return "choice(" + strings.Join(c.values, "|") + ")"
}

// Values returns the accepted tokens.
func (c choiceCaster) Values() []string {
	return slices.Clone(c.values)
}
