package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tally/internal/models"
)

func TestNewFilterPeriod(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

	f, err := newFilter("7days", "", "", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.Local), f.StartTime)
	assert.Equal(t, time.Date(2024, 5, 10, 23, 59, 59, 0, time.Local), f.EndTime)
}

func TestNewFilterInvalidPeriod(t *testing.T) {
	_, err := newFilter("fortnight", "", "", time.Now())
	assert.Error(t, err)
}

func TestNewFilterDefaultsToAllSessions(t *testing.T) {
	f, err := newFilter("", "", "", time.Now())
	require.NoError(t, err)
	assert.True(t, f.StartTime.IsZero())
}

func TestFilterApply(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 5, d, 9, 0, 0, 0, time.Local)
	}

	sessions := []models.Session{
		{Category: "Reading", StartTime: day(9)},
		{Category: "Writing", StartTime: day(8)},
		{Category: "Reading", StartTime: day(2)},
	}

	f := &FilterConfig{
		StartTime: time.Date(2024, 5, 4, 0, 0, 0, 0, time.Local),
		EndTime:   time.Date(2024, 5, 10, 23, 59, 59, 0, time.Local),
	}

	assert.Len(t, f.Apply(sessions), 2)

	f.Category = "Reading"

	got := f.Apply(sessions)
	require.Len(t, got, 1)
	assert.Equal(t, day(9), got[0].StartTime)
}
