package timer

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/tally/internal/session"
	"github.com/ayoisaiah/tally/internal/stopwatch"
	"github.com/ayoisaiah/tally/report"
)

// tickMsg redraws the clock. Ticks from an earlier run are dropped by id.
type tickMsg struct {
	id int
}

func (t *Timer) tick() tea.Cmd {
	id := t.tickID

	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

func (t *Timer) setStatus(kind statusKind, format string, args ...any) {
	t.statusKind = kind
	t.status = fmt.Sprintf(format, args...)
}

func (t *Timer) reportError(err error) {
	if report.IsWarning(err) {
		t.setStatus(statusWarning, "%s", err.Error())
		return
	}

	slog.Error("timer action failed", slog.Any("error", err))
	t.setStatus(statusError, "%s", err.Error())
}

func (t *Timer) handleTick(msg tickMsg) tea.Cmd {
	if msg.id != t.tickID || t.sw.State() != stopwatch.Running {
		return nil
	}

	elapsed := t.sw.Tick()

	if !t.alerted && elapsed >= t.sw.TargetDuration() {
		t.alerted = true

		return tea.Batch(t.tick(), t.alertCmd())
	}

	return t.tick()
}

func (t *Timer) alertCmd() tea.Cmd {
	category, target := t.sw.Category(), t.sw.Target()

	return func() tea.Msg {
		t.alert.TargetReached(category, target)
		return nil
	}
}

func (t *Timer) toggle() tea.Cmd {
	if t.sw.Category() == "" {
		t.setStatus(statusWarning, "add or select a category before starting")
		return nil
	}

	t.sw.Toggle()

	if t.sw.State() != stopwatch.Running {
		t.setStatus(statusInfo, "paused")
		return nil
	}

	t.status = ""
	t.tickID++

	return t.tick()
}

func (t *Timer) logged(res *session.Result) {
	t.totals = res.Totals
	t.alerted = false
	t.tickID++

	t.setStatus(
		statusInfo,
		"logged %s to %s",
		res.Session.Duration(),
		res.Session.Category,
	)
}

// reset logs the current run whatever its length.
func (t *Timer) reset() {
	res, err := t.logger.Reset(t.sw)
	if err != nil {
		t.reportError(err)
		return
	}

	t.logged(res)
}

// submit logs the current run only once it reaches the target length.
func (t *Timer) submit() {
	res, err := t.logger.Submit(t.sw)
	if err != nil {
		t.reportError(err)
		return
	}

	t.logged(res)
}

func (t *Timer) selectCategory(name string) tea.Cmd {
	err := t.sw.SelectCategory(name, false)
	if errors.Is(err, stopwatch.ErrSwitchWhileActive) {
		return t.openSwitchForm(name)
	}

	if err != nil {
		t.reportError(err)
		return nil
	}

	t.setStatus(statusInfo, "tracking %s", name)

	return nil
}

// switchCategory moves to target after logging or discarding the current run.
func (t *Timer) switchCategory(target string, logFirst bool) {
	if logFirst {
		res, err := t.logger.Reset(t.sw)
		if err != nil {
			t.reportError(err)
			return
		}

		t.logged(res)
	} else {
		t.sw.Reset()
		t.alerted = false
		t.tickID++
	}

	if err := t.sw.SelectCategory(target, false); err != nil {
		t.reportError(err)
		return
	}

	if logFirst {
		t.status += ", now tracking " + target
		return
	}

	t.setStatus(statusInfo, "run discarded, now tracking %s", target)
}

func (t *Timer) addCategory(name string) {
	name = strings.TrimSpace(name)

	categories, err := t.store.AddCategory(name)
	if err != nil {
		t.reportError(err)
		return
	}

	totals, err := t.store.LoadUserTotals(t.user)
	if err != nil {
		t.reportError(err)
		return
	}

	t.categories = categories
	t.totals = totals

	if t.sw.Category() == "" {
		_ = t.sw.SelectCategory(name, false)
	}

	t.setStatus(statusInfo, "category %s added", name)
}

func (t *Timer) adjustTarget(delta int) {
	t.sw.SetTarget(t.sw.Target() + delta)
	t.alerted = t.sw.Elapsed() >= t.sw.TargetDuration()

	t.setStatus(statusInfo, "session length set to %d minutes", t.sw.Target())
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, t.keys.quit):
		return tea.Quit
	case key.Matches(msg, t.keys.toggle):
		return t.toggle()
	case key.Matches(msg, t.keys.reset):
		t.reset()
	case key.Matches(msg, t.keys.log):
		if t.sw.Category() == "" {
			t.reportError(session.ErrNoCategory)
			return nil
		}

		return t.openLogForm()
	case key.Matches(msg, t.keys.category):
		if len(t.categories) == 0 {
			t.setStatus(statusWarning, "no categories yet: press a to add one")
			return nil
		}

		return t.openCategoryForm()
	case key.Matches(msg, t.keys.add):
		return t.openAddCategoryForm()
	case key.Matches(msg, t.keys.increase):
		t.adjustTarget(stopwatch.TargetStep)
	case key.Matches(msg, t.keys.decrease):
		t.adjustTarget(-stopwatch.TargetStep)
	}

	return nil
}

func (t *Timer) updateForm(msg tea.Msg) tea.Cmd {
	model, cmd := t.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		t.form = f
	}

	switch t.form.State {
	case huh.StateCompleted:
		return tea.Batch(cmd, t.completeForm())
	case huh.StateAborted:
		t.closeForm()
		t.setStatus(statusInfo, "cancelled")

		return nil
	case huh.StateNormal:
	}

	return cmd
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tm, ok := msg.(tickMsg); ok {
		return t, t.handleTick(tm)
	}

	slog.Debug("timer update", slog.String("msg", spew.Sdump(msg)))

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		t.progress.Width = max(min(size.Width-padding*2-4, maxWidth), 10)
		t.help.Width = size.Width
	}

	if t.form != nil {
		return t, t.updateForm(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		return t, t.handleKeyPress(k)
	}

	return t, nil
}
