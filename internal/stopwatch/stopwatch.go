// Package stopwatch tracks the elapsed time of a single timer run
package stopwatch

import (
	"time"

	"github.com/ayoisaiah/tally/internal/apperr"
)

// State is the state of a stopwatch.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Bounds of the target session length in minutes.
const (
	DefaultTarget = 50
	MinTarget     = 5
	MaxTarget     = 50
	TargetStep    = 5
)

const (
	minEfficiency = 0
	maxEfficiency = 100
)

// ErrSwitchWhileActive is returned when changing category while a run has
// unlogged elapsed time.
var ErrSwitchWhileActive = &apperr.Error{
	Message: "the current run on %q has unlogged time: log or reset it before switching to %q",
}

// Stopwatch holds the state of one user's timer run. It is not safe for
// concurrent use.
type Stopwatch struct {
	now      func() time.Time
	resumeAt time.Time
	category string
	note     string
	elapsed  time.Duration
	state    State
	target   int
	eff      int
}

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock replaces the wall clock used to measure elapsed time.
func WithClock(now func() time.Time) Option {
	return func(sw *Stopwatch) {
		sw.now = now
	}
}

// WithTarget sets the target session length in minutes.
func WithTarget(minutes int) Option {
	return func(sw *Stopwatch) {
		sw.SetTarget(minutes)
	}
}

// New returns an idle stopwatch.
func New(opts ...Option) *Stopwatch {
	sw := &Stopwatch{
		now:    time.Now,
		target: DefaultTarget,
	}

	for _, opt := range opts {
		opt(sw)
	}

	return sw
}

// State reports whether the stopwatch is idle, running or paused.
func (sw *Stopwatch) State() State {
	return sw.state
}

// Category returns the selected category, or an empty string.
func (sw *Stopwatch) Category() string {
	return sw.category
}

// SelectCategory changes the category the run is tracked against. Elapsed
// time is not reset. Switching away from a category with unlogged time fails
// with ErrSwitchWhileActive unless force is set.
func (sw *Stopwatch) SelectCategory(name string, force bool) error {
	if name == sw.category {
		return nil
	}

	if !force && sw.category != "" && sw.Elapsed() > 0 {
		return ErrSwitchWhileActive.Fmt(sw.category, name)
	}

	sw.category = name

	return nil
}

// Start begins or resumes the run. Elapsed time continues from where it was
// paused.
func (sw *Stopwatch) Start() {
	if sw.state == Running {
		return
	}

	sw.resumeAt = sw.now().Add(-sw.elapsed)
	sw.state = Running
}

// Pause freezes elapsed time.
func (sw *Stopwatch) Pause() {
	if sw.state != Running {
		return
	}

	sw.elapsed = sw.since()
	sw.state = Paused
}

// Toggle pauses a running stopwatch or starts it otherwise.
func (sw *Stopwatch) Toggle() {
	if sw.state == Running {
		sw.Pause()
		return
	}

	sw.Start()
}

// Tick recomputes elapsed time while running.
func (sw *Stopwatch) Tick() time.Duration {
	if sw.state == Running {
		sw.elapsed = sw.since()
	}

	return sw.elapsed
}

// Reset returns the stopwatch to idle and clears elapsed time and the
// pending note and efficiency. The selected category and target are kept.
func (sw *Stopwatch) Reset() {
	sw.state = Idle
	sw.elapsed = 0
	sw.resumeAt = time.Time{}
	sw.note = ""
	sw.eff = 0
}

// Elapsed returns the time accumulated in the current run.
func (sw *Stopwatch) Elapsed() time.Duration {
	if sw.state == Running {
		return sw.since()
	}

	return sw.elapsed
}

func (sw *Stopwatch) since() time.Duration {
	d := sw.now().Sub(sw.resumeAt)
	if d < 0 {
		return 0
	}

	return d
}

// Target returns the target session length in minutes.
func (sw *Stopwatch) Target() int {
	return sw.target
}

// TargetDuration returns the target session length.
func (sw *Stopwatch) TargetDuration() time.Duration {
	return time.Duration(sw.target) * time.Minute
}

// SetTarget sets the target session length, clamped to the allowed range and
// rounded down to a multiple of TargetStep.
func (sw *Stopwatch) SetTarget(minutes int) {
	minutes = min(max(minutes, MinTarget), MaxTarget)
	sw.target = minutes - minutes%TargetStep
}

// Remaining returns the time left until the target length is reached, or zero.
func (sw *Stopwatch) Remaining() time.Duration {
	return max(sw.TargetDuration()-sw.Elapsed(), 0)
}

// Note returns the pending work-done note.
func (sw *Stopwatch) Note() string {
	return sw.note
}

// SetNote sets the pending work-done note.
func (sw *Stopwatch) SetNote(note string) {
	sw.note = note
}

// Efficiency returns the pending efficiency rating.
func (sw *Stopwatch) Efficiency() int {
	return sw.eff
}

// SetEfficiency sets the pending efficiency rating, clamped to 0–100.
func (sw *Stopwatch) SetEfficiency(eff int) {
	sw.eff = min(max(eff, minEfficiency), maxEfficiency)
}

// Now returns the current time according to the stopwatch clock.
func (sw *Stopwatch) Now() time.Time {
	return sw.now()
}
