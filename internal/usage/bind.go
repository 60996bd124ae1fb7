package usage

import "fmt"

// Bind is returned when an argument list does not match a handler signature.
func Bind(tokens []string, format string, args ...any) *Error {
	return &Error{
		Kind:    ErrBind,
		Message: fmt.Sprintf(format, args...),
		Tokens:  tokens,
	}
}

// MissingOptionValue is returned when an option token ends the line.
func MissingOptionValue(tokens []string, option string) *Error {
	e := Bind(tokens, "value not given for option '%s'", option)
	e.Param = option
	return e
}
