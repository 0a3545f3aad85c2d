// Package models defines the records persisted by the store
package models

import (
	"cmp"
	"slices"
	"time"

	"github.com/ayoisaiah/tally/internal/timeutil"
)

// Category is a named bucket of work. Categories are shared by all users.
type Category struct {
	Name string `json:"name"`
	ID   uint64 `json:"id"`
}

// Session is a single logged timer run. It is never mutated once written.
type Session struct {
	// StartTime and EndTime are local wall-clock instants. Date, start and end
	// strings are derived from them.
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Category  string    `json:"category"`
	WorkDone  string    `json:"work_done"`
	UserID    string    `json:"user_id"`
	// DurationSeconds is authoritative. The display string is derived from it.
	DurationSeconds int64 `json:"duration_seconds"`
	Efficiency      int   `json:"efficiency"`
}

// Date returns the calendar day the session ended on.
func (s *Session) Date() string {
	return s.EndTime.Format(timeutil.DateFormat)
}

// Start returns the wall-clock start time.
func (s *Session) Start() string {
	return s.StartTime.Format(timeutil.TimeFormat)
}

// End returns the wall-clock end time.
func (s *Session) End() string {
	return s.EndTime.Format(timeutil.TimeFormat)
}

// Duration returns the formatted duration of the session.
func (s *Session) Duration() string {
	return timeutil.FormatDuration(s.DurationSeconds)
}

// Totals maps a category name to the total seconds logged against it.
type Totals map[string]int64

// SortSessions orders sessions most recent first: by date descending, then by
// start time descending.
func SortSessions(sessions []Session) {
	slices.SortStableFunc(sessions, func(a, b Session) int {
		if c := cmp.Compare(b.Date(), a.Date()); c != 0 {
			return c
		}

		return cmp.Compare(b.Start(), a.Start())
	})
}
