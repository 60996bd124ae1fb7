// Package tokenize splits the argument part of a command line into words.
package tokenize

import (
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/footprint-tools/parsedcmd/internal/usage"
)

// Tokenizer splits a raw argument string into tokens.
// Implementations report malformed input with a *usage.Error of kind
// usage.ErrTokenize.
type Tokenizer interface {
	Split(line string) ([]string, error)
}

// Func adapts a plain function to the Tokenizer interface.
type Func func(line string) ([]string, error)

// Split implements Tokenizer.
func (f Func) Split(line string) ([]string, error) {
	return f(line)
}

// Shell splits like a POSIX shell: whitespace separates words, single and
// double quotes group them and are removed, backslash escapes the next
// character. There are no pipes or redirections, so operator characters
// such as ; | > ( are ordinary word characters: "a;b" is one word.
type Shell struct {
	// StripNUL removes NUL bytes from every token.
	StripNUL bool

	// ExpandEnv expands $VAR references using the process environment.
	ExpandEnv bool
}

// Split implements Tokenizer.
func (s Shell) Split(line string) ([]string, error) {
	p := shellwords.NewParser()
	p.ParseEnv = s.ExpandEnv

	tokens, err := p.Parse(escapeOperators(line))
	if err != nil {
		return nil, usage.Tokenize(line, err)
	}

	if s.StripNUL {
		for i, tok := range tokens {
			tokens[i] = strings.ReplaceAll(tok, "\x00", "")
		}
	}
	return tokens, nil
}

// operatorChars stop the shellwords parser when unquoted.
const operatorChars = ";&|<>()`"

// escapeOperators backslash-escapes operator characters outside quotes
// so the parser keeps them inside the surrounding word.
func escapeOperators(line string) string {
	if !strings.ContainsAny(line, operatorChars) {
		return line
	}

	var (
		b                       strings.Builder
		single, double, escaped bool
	)
	b.Grow(len(line) + 8)
	// Every special character is ASCII, so walking bytes leaves
	// multi-byte characters intact.
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && !single:
			escaped = true
		case c == '\'' && !double:
			single = !single
		case c == '"' && !single:
			double = !double
		case !single && !double && strings.IndexByte(operatorChars, c) >= 0:
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Fields splits on whitespace only; quotes have no meaning.
type Fields struct{}

// Split implements Tokenizer.
func (Fields) Split(line string) ([]string, error) {
	return strings.Fields(line), nil
}

// Default returns the tokenizer shells use unless configured otherwise.
func Default() Tokenizer {
	return Shell{StripNUL: true}
}
