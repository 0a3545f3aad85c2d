// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/tally/internal/apperr"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
	// secondsInAUnit is the weight of the leading field of a formatted
	// duration: one unit is a hundred hours.
	secondsInAUnit = 100 * secondsInAnHour
)

// DurationSeparator joins the fields of a formatted duration.
const DurationSeparator = " : "

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04:05"
)

var (
	errInvalidDuration = &apperr.Error{
		Message: "invalid duration %q: expected four fields of the form UU : HH : MM : SS",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to understand date %q",
	}
)

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period365Days,
}

// FormatDuration renders a number of seconds as four colon-separated
// zero-padded fields: hundred-hour units, hours, minutes and seconds.
// Negative values are treated as zero.
func FormatDuration(secs int64) string {
	if secs < 0 {
		secs = 0
	}

	units := secs / secondsInAUnit
	secs %= secondsInAUnit

	hours := secs / secondsInAnHour
	secs %= secondsInAnHour

	mins := secs / secondsInAMinute
	secs %= secondsInAMinute

	return fmt.Sprintf(
		"%02d%s%02d%s%02d%s%02d",
		units, DurationSeparator,
		hours, DurationSeparator,
		mins, DurationSeparator,
		secs,
	)
}

// ParseDuration reverses FormatDuration.
func ParseDuration(s string) (int64, error) {
	fields := strings.Split(s, DurationSeparator)
	if len(fields) != 4 {
		return 0, errInvalidDuration.Fmt(s)
	}

	weights := [4]int64{secondsInAUnit, secondsInAnHour, secondsInAMinute, 1}

	var total int64

	for i, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil || n < 0 {
			return 0, errInvalidDuration.Fmt(s)
		}

		total += n * weights[i]
	}

	return total, nil
}

// Seconds truncates d to whole seconds.
func Seconds(d time.Duration) int64 {
	if d < 0 {
		return 0
	}

	return int64(d / time.Second)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// PeriodRange returns the start and end time of a reporting period relative
// to now. The all-time period has a zero start.
func PeriodRange(period Period, now time.Time) (start, end time.Time) {
	end = RoundToEnd(now)

	switch period {
	case PeriodAllTime:
		return time.Time{}, end
	case PeriodYesterday:
		start = RoundToStart(now.AddDate(0, 0, Range[period]))

		return start, RoundToEnd(start)
	default:
		return RoundToStart(now.AddDate(0, 0, Range[period])), end
	}
}

// FromStr parses a natural language date such as "3 days ago" or
// "2024-05-01 10:00" relative to the current time.
func FromStr(s string) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errInvalidDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(time.RFC3339Nano))
}
