package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionID identifies one run of an interactive shell.
type SessionID string

// NewSessionID returns a fresh random session id.
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// String returns the string representation of the SessionID.
func (id SessionID) String() string {
	return string(id)
}

// IsEmpty returns true if the SessionID is empty.
func (id SessionID) IsEmpty() bool {
	return id == ""
}

// Outcome describes how the dispatch of a line ended.
type Outcome string

const (
	OutcomeOK           Outcome = "ok"
	OutcomeHandlerError Outcome = "handler_error"
	OutcomeBindError    Outcome = "bind_error"
	OutcomeCastError    Outcome = "cast_error"
	OutcomeUnknown      Outcome = "unknown"
	OutcomeEmpty        Outcome = "empty"
)

// Outcomes lists every outcome in display order.
func Outcomes() []Outcome {
	return []Outcome{
		OutcomeOK,
		OutcomeHandlerError,
		OutcomeBindError,
		OutcomeCastError,
		OutcomeUnknown,
		OutcomeEmpty,
	}
}

// String returns the string representation of the Outcome.
func (o Outcome) String() string {
	return string(o)
}

// ParseOutcome converts a string to an Outcome.
func ParseOutcome(s string) (Outcome, bool) {
	for _, o := range Outcomes() {
		if string(o) == s {
			return o, true
		}
	}
	return "", false
}

// HistoryEntry is one dispatched line.
type HistoryEntry struct {
	ID        int64
	SessionID SessionID
	Line      string
	Command   string
	Outcome   Outcome
	Reason    string
	CreatedAt time.Time
}

// HistoryFilter narrows a history listing. Zero values mean "any".
type HistoryFilter struct {
	SessionID SessionID
	Command   string
	Outcome   Outcome
	Since     *time.Time
	Limit     int
}
