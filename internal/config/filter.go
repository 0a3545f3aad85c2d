package config

import (
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tally/internal/models"
	"github.com/ayoisaiah/tally/internal/timeutil"
)

// FilterConfig represents a configuration to filter logged sessions by
// their start time, end time, and category.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
	Category  string
}

// Filter initializes and returns a configuration to filter sessions from
// command-line arguments. Without any flags every session matches.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	return newFilter(
		ctx.String("period"),
		ctx.String("since"),
		ctx.String("category"),
		time.Now(),
	)
}

func newFilter(period, since, category string, now time.Time) (*FilterConfig, error) {
	f := &FilterConfig{
		Category: strings.TrimSpace(category),
		EndTime:  timeutil.RoundToEnd(now),
	}

	p := timeutil.Period(strings.TrimSpace(period))

	if p != "" {
		if !slices.Contains(timeutil.PeriodCollection, p) {
			return nil, errInvalidPeriod.Fmt(periodList())
		}

		f.StartTime, f.EndTime = timeutil.PeriodRange(p, now)

		return f, nil
	}

	if since != "" {
		start, err := timeutil.FromStr(since)
		if err != nil {
			return nil, err
		}

		if start.After(now) {
			return nil, errInvalidDateRange
		}

		f.StartTime = start
	}

	return f, nil
}

func periodList() string {
	s := make([]string, len(timeutil.PeriodCollection))
	for i, p := range timeutil.PeriodCollection {
		s[i] = string(p)
	}

	return strings.Join(s, ", ")
}

// Apply returns the sessions that match the filter, preserving their order.
func (f *FilterConfig) Apply(sessions []models.Session) []models.Session {
	var out []models.Session

	for i := range sessions {
		s := sessions[i]

		if f.Category != "" && s.Category != f.Category {
			continue
		}

		if !f.StartTime.IsZero() && s.StartTime.Before(f.StartTime) {
			continue
		}

		if s.StartTime.After(f.EndTime) {
			continue
		}

		out = append(out, s)
	}

	return out
}
