package dispatchers

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/footprint-tools/parsedcmd/internal/casters"
	"github.com/footprint-tools/parsedcmd/internal/usage"
)

// CastPolicy decides which bound values are passed to their caster.
type CastPolicy int

const (
	// CastInput casts every value that came from the input line.
	// Defaults are never cast.
	CastInput CastPolicy = iota

	// CastUnlessDefault additionally skips input values that are equal
	// to the parameter's declared default.
	CastUnlessDefault
)

// String returns the config spelling of the policy.
func (p CastPolicy) String() string {
	if p == CastUnlessDefault {
		return "unless_default"
	}
	return "input"
}

// ParseCastPolicy converts a config value to a CastPolicy.
func ParseCastPolicy(s string) (CastPolicy, error) {
	switch s {
	case "", "input":
		return CastInput, nil
	case "unless_default":
		return CastUnlessDefault, nil
	}
	return CastInput, fmt.Errorf("invalid cast policy %q (valid: input, unless_default)", s)
}

// Cast applies the casters of sig to bc and returns a new BoundCall.
// Variadic collectors are cast element by element. On the first failure
// nothing is returned and bc is left untouched.
func Cast(bc *BoundCall, sig *Signature, policy CastPolicy) (*BoundCall, error) {
	if sig == nil {
		sig = emptySignature
	}
	out := bc.clone()

	for i, p := range sig.Positional() {
		v, err := castValue(p.Name, p, out.Positional[i], sig.Caster(p.Name), policy)
		if err != nil {
			return nil, err
		}
		out.Positional[i] = v
	}

	for _, p := range sig.NamedOnly() {
		v, err := castValue(p.Name, p, out.Named[p.Name], sig.Caster(p.Name), policy)
		if err != nil {
			return nil, err
		}
		out.Named[p.Name] = v
	}

	if c := sig.Caster(sig.Variadic); c != nil {
		for i, v := range out.Variadic {
			cv, err := castValue(sig.Variadic, Param{Name: sig.Variadic}, v, c, policy)
			if err != nil {
				return nil, err
			}
			out.Variadic[i] = cv
		}
	}

	if c := sig.Caster(sig.VariadicNamed); c != nil {
		for _, name := range slices.Sorted(maps.Keys(out.Extra)) {
			cv, err := castValue(sig.VariadicNamed, Param{Name: sig.VariadicNamed}, out.Extra[name], keyed(c, name), policy)
			if err != nil {
				return nil, err
			}
			out.Extra[name] = cv
		}
	}

	return out, nil
}

// keyed reports which collected option a variadic named cast failed on.
func keyed(c casters.Caster, key string) casters.Caster {
	return casters.Func(c.String(), func(s string) (any, error) {
		v, err := c.Cast(s)
		if err != nil {
			return nil, fmt.Errorf("option %s: %w", key, err)
		}
		return v, nil
	})
}

func castValue(name string, p Param, v Value, c casters.Caster, policy CastPolicy) (Value, error) {
	if c == nil || v.Source == FromDefault {
		return v, nil
	}
	if policy == CastUnlessDefault && p.HasDefault && reflect.DeepEqual(v.V, p.Default) {
		return v, nil
	}

	raw, ok := v.V.(string)
	if !ok {
		raw = fmt.Sprint(v.V)
	}
	cv, err := c.Cast(raw)
	if err != nil {
		return Value{}, usage.Cast(name, raw, c.String(), err)
	}
	return Value{V: cv, Source: v.Source}, nil
}
