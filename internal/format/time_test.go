package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testTime is a fixed time for consistent test results
var testTime = time.Date(2024, 1, 23, 15, 4, 5, 0, time.UTC)

func TestLayouts(t *testing.T) {
	tests := []struct {
		name string
		fn   func(time.Time) string
		want string
	}{
		{name: "DateTime", fn: DateTime, want: "2024-01-23 15:04"},
		{name: "DateTimeShort", fn: DateTimeShort, want: "Jan 23 15:04"},
		{name: "Date", fn: Date, want: "2024-01-23"},
		{name: "DateShort", fn: DateShort, want: "Jan 23"},
		{name: "Time", fn: Time, want: "15:04"},
		{name: "TimeFull", fn: TimeFull, want: "15:04:05"},
		{name: "Full", fn: Full, want: "2024-01-23 15:04:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.fn(testTime))
		})
	}
}

func TestStamp(t *testing.T) {
	now := time.Date(2024, 1, 23, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "same day", t: testTime, want: "15:04:05"},
		{name: "same year", t: testTime.AddDate(0, 0, -3), want: "Jan 20 15:04"},
		{name: "earlier year", t: testTime.AddDate(-1, 0, 0), want: "2023-01-23 15:04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Stamp(tt.t, now))
		})
	}
}

func TestAgo(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "seconds", d: 30 * time.Second, want: "just now"},
		{name: "minutes", d: 5 * time.Minute, want: "5m ago"},
		{name: "hours", d: 3*time.Hour + 10*time.Minute, want: "3h ago"},
		{name: "days", d: 50 * time.Hour, want: "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Ago(testTime.Add(-tt.d), testTime))
		})
	}
}
