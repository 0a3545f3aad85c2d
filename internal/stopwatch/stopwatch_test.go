package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestStopwatch(opts ...Option) (*Stopwatch, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)}

	return New(append([]Option{WithClock(clock.now)}, opts...)...), clock
}

func TestNewStopwatchDefaults(t *testing.T) {
	sw := New()

	assert.Equal(t, Idle, sw.State())
	assert.Equal(t, DefaultTarget, sw.Target())
	assert.Equal(t, time.Duration(0), sw.Elapsed())
	assert.Empty(t, sw.Category())
}

func TestStartPauseIsAdditive(t *testing.T) {
	sw, clock := newTestStopwatch()

	sw.Start()
	clock.advance(30 * time.Second)
	sw.Pause()

	assert.Equal(t, Paused, sw.State())
	assert.Equal(t, 30*time.Second, sw.Elapsed())

	// time spent paused does not count
	clock.advance(10 * time.Minute)
	assert.Equal(t, 30*time.Second, sw.Elapsed())

	sw.Start()
	clock.advance(45 * time.Second)
	sw.Pause()

	assert.Equal(t, 75*time.Second, sw.Elapsed())
}

func TestTickWhileRunning(t *testing.T) {
	sw, clock := newTestStopwatch()

	sw.Start()

	for i := 0; i < 5; i++ {
		clock.advance(time.Second)
		sw.Tick()
	}

	assert.Equal(t, Running, sw.State())
	assert.Equal(t, 5*time.Second, sw.Elapsed())
}

func TestTickDoesNothingWhenPaused(t *testing.T) {
	sw, clock := newTestStopwatch()

	sw.Start()
	clock.advance(3 * time.Second)
	sw.Pause()
	clock.advance(time.Minute)

	assert.Equal(t, 3*time.Second, sw.Tick())
}

func TestElapsedNeverNegative(t *testing.T) {
	sw, clock := newTestStopwatch()

	sw.Start()
	clock.advance(-time.Hour)

	assert.Equal(t, time.Duration(0), sw.Elapsed())
}

func TestToggle(t *testing.T) {
	sw, clock := newTestStopwatch()

	sw.Toggle()
	assert.Equal(t, Running, sw.State())

	clock.advance(time.Second)
	sw.Toggle()
	assert.Equal(t, Paused, sw.State())
	assert.Equal(t, time.Second, sw.Elapsed())
}

func TestResetClearsRun(t *testing.T) {
	sw, clock := newTestStopwatch(WithTarget(25))

	_ = sw.SelectCategory("Reading", false)
	sw.SetNote("chapter 3")
	sw.SetEfficiency(70)
	sw.Start()
	clock.advance(time.Minute)

	sw.Reset()

	assert.Equal(t, Idle, sw.State())
	assert.Equal(t, time.Duration(0), sw.Elapsed())
	assert.Empty(t, sw.Note())
	assert.Equal(t, 0, sw.Efficiency())
	assert.Equal(t, "Reading", sw.Category())
	assert.Equal(t, 25, sw.Target())
}

func TestSelectCategoryWithUnloggedTime(t *testing.T) {
	sw, clock := newTestStopwatch()

	assert.NoError(t, sw.SelectCategory("Reading", false))

	sw.Start()
	clock.advance(time.Minute)

	err := sw.SelectCategory("Writing", false)
	assert.ErrorIs(t, err, ErrSwitchWhileActive)
	assert.Equal(t, "Reading", sw.Category())

	assert.NoError(t, sw.SelectCategory("Writing", true))
	assert.Equal(t, "Writing", sw.Category())
	assert.Equal(t, time.Minute, sw.Elapsed())
}

func TestSetTarget(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{in: 50, want: 50},
		{in: 5, want: 5},
		{in: 0, want: 5},
		{in: 90, want: 50},
		{in: 27, want: 25},
	}

	sw := New()

	for _, tc := range cases {
		sw.SetTarget(tc.in)
		assert.Equal(t, tc.want, sw.Target(), "SetTarget(%d)", tc.in)
	}
}

func TestRemaining(t *testing.T) {
	sw, clock := newTestStopwatch(WithTarget(5))

	sw.Start()
	clock.advance(2 * time.Minute)

	assert.Equal(t, 3*time.Minute, sw.Remaining())

	clock.advance(10 * time.Minute)
	assert.Equal(t, time.Duration(0), sw.Remaining())
}

func TestSetEfficiencyClamps(t *testing.T) {
	sw := New()

	sw.SetEfficiency(150)
	assert.Equal(t, 100, sw.Efficiency())

	sw.SetEfficiency(-5)
	assert.Equal(t, 0, sw.Efficiency())
}
