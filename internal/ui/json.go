package ui

import (
	"encoding/json"

	"github.com/ayoisaiah/tally/internal/models"
	"github.com/ayoisaiah/tally/internal/timeutil"
)

// sessionJSON is the exported shape of a session. It carries both the
// integer duration and its display string.
type sessionJSON struct {
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Duration        string `json:"duration"`
	Category        string `json:"category"`
	WorkDone        string `json:"work_done"`
	DurationSeconds int64  `json:"duration_seconds"`
	Efficiency      int    `json:"efficiency"`
}

// SessionsJSON encodes sessions for machine consumption.
func SessionsJSON(sessions []models.Session) ([]byte, error) {
	out := make([]sessionJSON, len(sessions))

	for i := range sessions {
		s := &sessions[i]

		out[i] = sessionJSON{
			Date:            s.Date(),
			StartTime:       s.Start(),
			EndTime:         s.End(),
			Duration:        s.Duration(),
			Category:        s.Category,
			WorkDone:        s.WorkDone,
			DurationSeconds: s.DurationSeconds,
			Efficiency:      s.Efficiency,
		}
	}

	return json.MarshalIndent(out, "", "  ")
}

type totalJSON struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Seconds  int64  `json:"seconds"`
}

// TotalsJSON encodes the total time per category in the given order.
func TotalsJSON(categories []string, totals models.Totals) ([]byte, error) {
	out := make([]totalJSON, len(categories))

	for i, c := range categories {
		out[i] = totalJSON{
			Category: c,
			Total:    timeutil.FormatDuration(totals[c]),
			Seconds:  totals[c],
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
