// Package session turns a finished timer run into a persisted session record
package session

import (
	"time"

	"github.com/ayoisaiah/tally/internal/apperr"
	"github.com/ayoisaiah/tally/internal/models"
	"github.com/ayoisaiah/tally/internal/stopwatch"
	"github.com/ayoisaiah/tally/internal/timeutil"
)

var (
	// ErrNoCategory is returned when logging a run without a selected category.
	ErrNoCategory = &apperr.Error{
		Message: "select a category before logging a session",
	}

	// ErrIncompleteSession is returned by Submit when the run is shorter than
	// the target length.
	ErrIncompleteSession = &apperr.Error{
		Message: "complete the session time, %s left",
	}
)

// Appender persists a session and returns the refreshed category totals.
type Appender interface {
	AppendSession(sess *models.Session) (models.Totals, error)
}

// Result is the outcome of a successful log.
type Result struct {
	Totals  models.Totals
	Session models.Session
}

// Logger records timer runs for a single user.
type Logger struct {
	db   Appender
	user string
}

// NewLogger returns a Logger that saves sessions owned by user to db.
func NewLogger(db Appender, user string) *Logger {
	return &Logger{
		db:   db,
		user: user,
	}
}

// Submit logs the run only if its elapsed time has reached the target length.
// Otherwise it returns ErrIncompleteSession and leaves the stopwatch untouched.
func (l *Logger) Submit(sw *stopwatch.Stopwatch) (*Result, error) {
	if sw.Category() == "" {
		return nil, ErrNoCategory
	}

	elapsed := timeutil.Seconds(sw.Elapsed())
	target := int64(sw.Target()) * 60

	if elapsed < target {
		return nil, ErrIncompleteSession.Fmt(
			timeutil.FormatDuration(target - elapsed),
		)
	}

	return l.log(sw)
}

// Reset logs the run regardless of how long it has been going.
func (l *Logger) Reset(sw *stopwatch.Stopwatch) (*Result, error) {
	if sw.Category() == "" {
		return nil, ErrNoCategory
	}

	return l.log(sw)
}

func (l *Logger) log(sw *stopwatch.Stopwatch) (*Result, error) {
	elapsed := timeutil.Seconds(sw.Elapsed())

	end := sw.Now()

	sess := models.Session{
		StartTime:       end.Add(-time.Duration(elapsed) * time.Second),
		EndTime:         end,
		Category:        sw.Category(),
		WorkDone:        sw.Note(),
		UserID:          l.user,
		DurationSeconds: elapsed,
		Efficiency:      sw.Efficiency(),
	}

	totals, err := l.db.AppendSession(&sess)
	if err != nil {
		return nil, err
	}

	sw.Reset()

	return &Result{
		Session: sess,
		Totals:  totals,
	}, nil
}
