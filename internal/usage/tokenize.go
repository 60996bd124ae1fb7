package usage

import "fmt"

// Tokenize is returned when a line cannot be split into words,
// typically because of an unterminated quote.
func Tokenize(line string, err error) *Error {
	return &Error{
		Kind:    ErrTokenize,
		Message: fmt.Sprintf("cannot split %q: %v", line, err),
		Value:   line,
		Err:     err,
	}
}
