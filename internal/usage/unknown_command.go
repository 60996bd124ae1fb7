package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when a line names no registered command.
// Suggestions, when given, are appended as a "did you mean" hint.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("unknown syntax: %s", command)
	if len(suggestions) == 1 {
		msg += fmt.Sprintf("\ndid you mean '%s'?", suggestions[0])
	} else if len(suggestions) > 1 {
		msg += "\ndid you mean one of: " + strings.Join(suggestions, ", ") + "?"
	}
	return &Error{
		Kind:        ErrUnknownCommand,
		Message:     msg,
		Suggestions: suggestions,
	}
}
