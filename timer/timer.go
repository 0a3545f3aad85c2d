// Package timer runs the interactive stopwatch used to track time against a
// category
package timer

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/tally/internal/models"
	"github.com/ayoisaiah/tally/internal/session"
	"github.com/ayoisaiah/tally/internal/stopwatch"
)

// Store is the subset of the database used by the timer.
type Store interface {
	session.Appender
	ListCategories() ([]string, error)
	AddCategory(name string) ([]string, error)
	LoadUserTotals(user string) (models.Totals, error)
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarning
	statusError
)

type formKind int

const (
	noForm formKind = iota
	logForm
	categoryForm
	addCategoryForm
	switchForm
)

// Timer is the bubbletea model for a single user's tracking session.
type Timer struct {
	alert      Alerter
	store      Store
	sw         *stopwatch.Stopwatch
	logger     *session.Logger
	form       *huh.Form
	totals     models.Totals
	user       string
	name       string
	status     string
	fields     formFields
	categories []string
	help       help.Model
	keys       keymap
	style      styles
	progress   progress.Model
	formKind   formKind
	statusKind statusKind
	tickID     int
	alerted    bool
	clock24    bool
}

// formFields holds the values bound to the open huh form.
type formFields struct {
	note       string
	efficiency string
	category   string
	newName    string
	pending    string
	logFirst   bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithAlerter sets what happens when a run reaches its target length.
func WithAlerter(a Alerter) Option {
	return func(t *Timer) {
		t.alert = a
	}
}

// WithDisplayName sets the name shown in the header.
func WithDisplayName(name string) Option {
	return func(t *Timer) {
		t.name = name
	}
}

// WithDarkTheme adjusts colours for dark terminals.
func WithDarkTheme(dark bool) Option {
	return func(t *Timer) {
		t.style = newStyles(dark)
	}
}

// WithTwentyFourHourClock shows session times on a 24 hour clock.
func WithTwentyFourHourClock(on bool) Option {
	return func(t *Timer) {
		t.clock24 = on
	}
}

// New creates a timer for user. Categories and totals are loaded from db.
func New(
	db Store,
	sw *stopwatch.Stopwatch,
	user string,
	opts ...Option,
) (*Timer, error) {
	t := &Timer{
		store:    db,
		sw:       sw,
		user:     user,
		name:     user,
		logger:   session.NewLogger(db, user),
		alert:    DesktopAlert{},
		keys:     defaultKeymap,
		help:     help.New(),
		style:    newStyles(true),
		progress: progress.New(progress.WithDefaultGradient()),
	}

	for _, opt := range opts {
		opt(t)
	}

	categories, err := db.ListCategories()
	if err != nil {
		return nil, err
	}

	totals, err := db.LoadUserTotals(user)
	if err != nil {
		return nil, err
	}

	t.categories = categories
	t.totals = totals

	if t.sw.Category() == "" && len(categories) > 0 {
		_ = t.sw.SelectCategory(categories[0], false)
	}

	return t, nil
}

func (t *Timer) Init() tea.Cmd {
	return nil
}

// Run starts the interactive program and blocks until the user quits.
func (t *Timer) Run() error {
	_, err := tea.NewProgram(t).Run()

	return err
}
