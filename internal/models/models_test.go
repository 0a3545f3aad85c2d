package models

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 5, day, hour, minute, 0, 0, time.Local)
}

func TestSortSessions(t *testing.T) {
	sessions := []Session{
		{Category: "a", StartTime: at(1, 9, 0), EndTime: at(1, 10, 0)},
		{Category: "b", StartTime: at(2, 8, 0), EndTime: at(2, 9, 0)},
		{Category: "c", StartTime: at(1, 14, 0), EndTime: at(1, 15, 0)},
		{Category: "d", StartTime: at(2, 13, 0), EndTime: at(2, 14, 0)},
	}

	SortSessions(sessions)

	got := make([]string, len(sessions))
	for i := range sessions {
		got[i] = sessions[i].Category
	}

	want := []string{"d", "b", "c", "a"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortSessions() mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionDisplayFields(t *testing.T) {
	s := Session{
		StartTime:       at(3, 9, 58),
		EndTime:         at(3, 10, 0),
		DurationSeconds: 120,
	}

	if s.Date() != "2024-05-03" {
		t.Errorf("Date() = %s", s.Date())
	}

	if s.Start() != "09:58:00" || s.End() != "10:00:00" {
		t.Errorf("Start() = %s, End() = %s", s.Start(), s.End())
	}

	if s.Duration() != "00 : 00 : 02 : 00" {
		t.Errorf("Duration() = %s", s.Duration())
	}
}
