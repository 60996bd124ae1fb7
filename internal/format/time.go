// Package format renders timestamps for terminal output.
package format

import (
	"fmt"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	dateShortLayout = "Jan 02"
	timeLayout      = "15:04"
	timeFullLayout  = "15:04:05"
)

// DateTime formats a time with both date and time.
// Example output: "2024-01-23 15:04"
func DateTime(t time.Time) string {
	return Date(t) + " " + Time(t)
}

// DateTimeShort formats a time with short date and time (no year).
// Example output: "Jan 23 15:04"
func DateTimeShort(t time.Time) string {
	return DateShort(t) + " " + Time(t)
}

// Date formats only the date portion.
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// DateShort formats date without year.
func DateShort(t time.Time) string {
	return t.Format(dateShortLayout)
}

// Time formats only the time portion.
func Time(t time.Time) string {
	return t.Format(timeLayout)
}

// TimeFull formats time with seconds.
func TimeFull(t time.Time) string {
	return t.Format(timeFullLayout)
}

// Full formats with full date and time with seconds.
// Example output: "2024-01-23 15:04:05"
func Full(t time.Time) string {
	return Date(t) + " " + TimeFull(t)
}

// Stamp picks the shortest unambiguous form of t relative to now:
// the time of day for today, month and day within the same year,
// the full date otherwise.
func Stamp(t, now time.Time) string {
	t = t.In(now.Location())
	switch {
	case sameDay(t, now):
		return TimeFull(t)
	case t.Year() == now.Year():
		return DateTimeShort(t)
	default:
		return DateTime(t)
	}
}

// Ago formats the distance from t to now in the largest whole unit.
// Example output: "just now", "5m ago", "3h ago", "2d ago"
func Ago(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
