package timer

import (
	"fmt"
	"strings"

	"github.com/ayoisaiah/tally/internal/stopwatch"
	"github.com/ayoisaiah/tally/internal/timeutil"
)

func (t *Timer) stateView() string {
	switch t.sw.State() {
	case stopwatch.Running:
		return t.style.running.Render("RUNNING")
	case stopwatch.Paused:
		return t.style.paused.Render("PAUSED")
	case stopwatch.Idle:
	}

	return t.style.idle.Render("IDLE")
}

func (t *Timer) categoryView() string {
	if t.sw.Category() == "" {
		return t.style.hint.Render("no category selected")
	}

	return t.style.secondary.Render(t.sw.Category())
}

func (t *Timer) statusView() string {
	if t.status == "" {
		return ""
	}

	switch t.statusKind {
	case statusWarning:
		return t.style.warning.Render(t.status)
	case statusError:
		return t.style.err.Render(t.status)
	case statusInfo:
	}

	return t.style.info.Render(t.status)
}

// liveTotal is the stored total for the selected category plus the unlogged
// elapsed time.
func (t *Timer) liveTotal() int64 {
	return t.totals[t.sw.Category()] + timeutil.Seconds(t.sw.Elapsed())
}

func (t *Timer) startedAt() string {
	format := "03:04:05 PM"
	if t.clock24 {
		format = timeutil.TimeFormat
	}

	return t.sw.Now().Add(-t.sw.Elapsed()).Format(format)
}

func (t *Timer) percent() float64 {
	target := t.sw.TargetDuration()
	if target <= 0 {
		return 0
	}

	return min(float64(t.sw.Elapsed())/float64(target), 1)
}

func (t *Timer) timerView() string {
	var s strings.Builder

	elapsed := timeutil.Seconds(t.sw.Elapsed())
	remaining := timeutil.Seconds(t.sw.Remaining())

	s.WriteString(t.stateView())
	s.WriteString(t.categoryView())
	s.WriteString(t.style.hint.Render("  " + t.name))
	s.WriteString("\n\n")
	s.WriteString(t.style.main.Render(timeutil.FormatDuration(elapsed)))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.percent()))
	s.WriteString("\n\n")

	target := fmt.Sprintf("target %d min", t.sw.Target())
	if remaining > 0 {
		target += ", " + timeutil.FormatDuration(remaining) + " left"
	} else {
		target += ", reached"
	}

	if t.sw.State() != stopwatch.Idle {
		target += ", started " + t.startedAt()
	}

	s.WriteString(t.style.hint.Render(target))
	s.WriteString("\n")
	s.WriteString(
		t.style.hint.Render("total ") +
			t.style.secondary.Render(timeutil.FormatDuration(t.liveTotal())),
	)

	if status := t.statusView(); status != "" {
		s.WriteString("\n\n" + status)
	}

	return s.String()
}

func (t *Timer) View() string {
	view := t.timerView()

	if t.form != nil {
		view += "\n\n" + t.form.View()
	} else {
		view += "\n\n" + t.help.ShortHelpView(t.keys.shortHelp())
	}

	return t.style.base.Render(view)
}
