package dispatchers

import (
	"strings"

	"github.com/footprint-tools/parsedcmd/internal/usage"
)

// DefaultOptionPrefix marks an option token.
const DefaultOptionPrefix = "-"

// SplitOptions separates the leading option pairs from tokens.
//
// Scanning stops at the first token that does not start with prefix, or
// whose name (the token with every leading prefix character removed) is
// not a named-only parameter of sig. Each recognized token consumes the
// token that follows it as its value; the last occurrence of a name wins.
// An option token with nothing after it is a bind error.
func SplitOptions(tokens []string, sig *Signature, prefix string) ([]string, map[string]string, error) {
	if prefix == "" {
		prefix = DefaultOptionPrefix
	}
	named := make(map[string]string)

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if !strings.HasPrefix(tok, prefix) {
			break
		}
		name := strings.TrimLeft(tok, prefix)
		if name == "" || !sig.IsNamedOnly(name) {
			break
		}
		if i+1 >= len(tokens) {
			return nil, nil, usage.MissingOptionValue(tokens[i:], name)
		}
		named[name] = tokens[i+1]
		i += 2
	}

	return tokens[i:], named, nil
}
