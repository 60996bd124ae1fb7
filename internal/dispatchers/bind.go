package dispatchers

import (
	"maps"
	"slices"

	"github.com/footprint-tools/parsedcmd/internal/usage"
)

// Source records where a bound value came from.
type Source int

const (
	FromDefault Source = iota
	FromInput
)

// Value is a bound parameter value.
type Value struct {
	V      any
	Source Source
}

// BoundCall maps every parameter of a signature to a value.
type BoundCall struct {
	// Positional is aligned with Signature.Positional().
	Positional []Value
	Variadic   []Value
	Named      map[string]Value
	Extra      map[string]Value
}

func (bc *BoundCall) clone() *BoundCall {
	return &BoundCall{
		Positional: slices.Clone(bc.Positional),
		Variadic:   slices.Clone(bc.Variadic),
		Named:      maps.Clone(bc.Named),
		Extra:      maps.Clone(bc.Extra),
	}
}

// Bind maps positional tokens and named values onto sig.
//
// Tokens fill positional parameters in order; any surplus goes to the
// variadic collector, or fails when there is none. Named values then fill
// the parameter with that name, which must not already hold a positional
// token. Names matching no parameter go to the variadic named collector,
// or fail when there is none. Parameters still empty take their default;
// a required parameter without a value fails.
func Bind(tokens []string, named map[string]string, sig *Signature) (*BoundCall, error) {
	if sig == nil {
		sig = emptySignature
	}
	pos := sig.Positional()

	bc := &BoundCall{
		Positional: make([]Value, len(pos)),
		Named:      make(map[string]Value),
		Extra:      make(map[string]Value),
	}
	assigned := make([]bool, len(pos))

	for i, tok := range tokens {
		if i < len(pos) {
			bc.Positional[i] = Value{V: tok, Source: FromInput}
			assigned[i] = true
			continue
		}
		if sig.Variadic == "" {
			return nil, usage.Bind(tokens, "too many positional arguments (takes at most %d, got %d)", len(pos), len(tokens))
		}
		bc.Variadic = append(bc.Variadic, Value{V: tok, Source: FromInput})
	}

	for _, name := range slices.Sorted(maps.Keys(named)) {
		v := Value{V: named[name], Source: FromInput}

		if i := slices.IndexFunc(pos, func(p Param) bool { return p.Name == name }); i >= 0 {
			if assigned[i] {
				return nil, usage.Bind(tokens, "multiple values for parameter '%s'", name)
			}
			bc.Positional[i] = v
			assigned[i] = true
			continue
		}
		if sig.IsNamedOnly(name) {
			bc.Named[name] = v
			continue
		}
		if sig.VariadicNamed != "" {
			bc.Extra[name] = v
			continue
		}
		return nil, usage.Bind(tokens, "unexpected keyword argument '%s'", name)
	}

	for i, p := range pos {
		if assigned[i] {
			continue
		}
		if !p.HasDefault {
			err := usage.MissingArgument(p.Name)
			err.Tokens = tokens
			return nil, err
		}
		bc.Positional[i] = Value{V: p.Default, Source: FromDefault}
	}

	for _, p := range sig.NamedOnly() {
		if _, ok := bc.Named[p.Name]; !ok {
			bc.Named[p.Name] = Value{V: p.Default, Source: FromDefault}
		}
	}

	return bc, nil
}
