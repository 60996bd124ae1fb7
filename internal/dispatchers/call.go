package dispatchers

import (
	"fmt"
	"strconv"
	"time"
)

// Call carries the arguments of one dispatched line to a handler.
type Call struct {
	// Command is the command word of the line.
	Command string

	// Line is the full line after shortcut expansion.
	Line string

	// Raw is the remainder of the line after the command word.
	Raw string

	sig   *Signature
	bound *BoundCall
}

// NewCall builds a Call from a bound and cast argument list.
func NewCall(command, line, raw string, sig *Signature, bound *BoundCall) *Call {
	if sig == nil {
		sig = emptySignature
	}
	if bound == nil {
		bound = &BoundCall{}
	}
	return &Call{Command: command, Line: line, Raw: raw, sig: sig, bound: bound}
}

// Value returns the bound value of a parameter. The variadic collector is
// returned as []any and the variadic named collector as map[string]any.
func (c *Call) Value(name string) (Value, bool) {
	for i, p := range c.sig.Positional() {
		if p.Name == name {
			return c.bound.Positional[i], true
		}
	}
	if v, ok := c.bound.Named[name]; ok {
		return v, true
	}
	if name != "" && name == c.sig.Variadic {
		return Value{V: c.Rest(), Source: FromInput}, true
	}
	if name != "" && name == c.sig.VariadicNamed {
		return Value{V: c.Extra(), Source: FromInput}, true
	}
	return Value{}, false
}

// Get returns the bound value of a parameter.
func (c *Call) Get(name string) (any, bool) {
	v, ok := c.Value(name)
	return v.V, ok
}

// Has returns true if the parameter was given on the line.
func (c *Call) Has(name string) bool {
	v, ok := c.Value(name)
	return ok && v.Source == FromInput
}

// String returns a parameter as a string.
func (c *Call) String(name string) string {
	v, ok := c.Get(name)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Int returns a parameter as an int, or 0 if it has no integer value.
func (c *Call) Int(name string) int {
	v, _ := c.Get(name)
	return toInt(v)
}

// Float returns a parameter as a float64, or 0 if it has no numeric value.
func (c *Call) Float(name string) float64 {
	v, _ := c.Get(name)
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// Bool returns a parameter as a bool.
func (c *Call) Bool(name string) bool {
	v, _ := c.Get(name)
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(b)
		return err == nil && parsed
	}
	return false
}

// Date returns a time.Time parameter, or nil if it holds none.
func (c *Call) Date(name string) *time.Time {
	v, _ := c.Get(name)
	switch d := v.(type) {
	case time.Time:
		return &d
	case string:
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil
		}
		return &t
	}
	return nil
}

// Rest returns the values collected by the variadic parameter.
func (c *Call) Rest() []any {
	out := make([]any, len(c.bound.Variadic))
	for i, v := range c.bound.Variadic {
		out[i] = v.V
	}
	return out
}

// RestInts returns the variadic values converted with the same rules as Int.
func (c *Call) RestInts() []int {
	out := make([]int, len(c.bound.Variadic))
	for i, v := range c.bound.Variadic {
		out[i] = toInt(v.V)
	}
	return out
}

// Extra returns the values collected by the variadic named parameter.
func (c *Call) Extra() map[string]any {
	out := make(map[string]any, len(c.bound.Extra))
	for k, v := range c.bound.Extra {
		out[k] = v.V
	}
	return out
}

// Args returns the positional values followed by the variadic ones.
func (c *Call) Args() []any {
	out := make([]any, 0, len(c.bound.Positional)+len(c.bound.Variadic))
	for _, v := range c.bound.Positional {
		out = append(out, v.V)
	}
	return append(out, c.Rest()...)
}

// Kwargs returns the named-only values merged with the variadic named ones.
func (c *Call) Kwargs() map[string]any {
	out := c.Extra()
	for k, v := range c.bound.Named {
		out[k] = v.V
	}
	return out
}

// Bound returns a copy of the underlying bound argument list.
func (c *Call) Bound() *BoundCall {
	return c.bound.clone()
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return i
	}
	return 0
}
