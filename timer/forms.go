package timer

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/tally/internal/apperr"
)

var (
	errEfficiencyRange = &apperr.Error{
		Message: "efficiency must be a whole number between 0 and 100",
	}

	errEmptyName = &apperr.Error{
		Message: "the category name cannot be empty",
	}
)

func validateEfficiency(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return errEfficiencyRange
	}

	return nil
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmptyName
	}

	return nil
}

func (t *Timer) openForm(kind formKind, groups ...*huh.Group) tea.Cmd {
	t.formKind = kind
	t.form = huh.NewForm(groups...).
		WithKeyMap(formKeymap()).
		WithShowHelp(true).
		WithTheme(huh.ThemeCharm())

	return t.form.Init()
}

func (t *Timer) closeForm() {
	t.form = nil
	t.formKind = noForm
}

func (t *Timer) openLogForm() tea.Cmd {
	t.fields.note = t.sw.Note()
	t.fields.efficiency = strconv.Itoa(t.sw.Efficiency())

	return t.openForm(logForm, huh.NewGroup(
		huh.NewText().
			Title("Work done").
			Value(&t.fields.note),
		huh.NewInput().
			Title("Efficiency (0-100)").
			Validate(validateEfficiency).
			Value(&t.fields.efficiency),
	))
}

func (t *Timer) openCategoryForm() tea.Cmd {
	t.fields.category = t.sw.Category()

	return t.openForm(categoryForm, huh.NewGroup(
		huh.NewSelect[string]().
			Title("Category").
			Options(huh.NewOptions(t.categories...)...).
			Value(&t.fields.category),
	))
}

func (t *Timer) openAddCategoryForm() tea.Cmd {
	t.fields.newName = ""

	return t.openForm(addCategoryForm, huh.NewGroup(
		huh.NewInput().
			Title("New category").
			Validate(validateName).
			Value(&t.fields.newName),
	))
}

func (t *Timer) openSwitchForm(target string) tea.Cmd {
	t.fields.pending = target
	t.fields.logFirst = true

	return t.openForm(switchForm, huh.NewGroup(
		huh.NewConfirm().
			Title("The current run on " + t.sw.Category() + " has not been logged").
			Description("Switch to " + target + " after logging or discarding it?").
			Affirmative("Log it").
			Negative("Discard").
			Value(&t.fields.logFirst),
	))
}

// completeForm applies the values of a submitted form.
func (t *Timer) completeForm() tea.Cmd {
	kind := t.formKind

	t.closeForm()

	switch kind {
	case logForm:
		eff, _ := strconv.Atoi(strings.TrimSpace(t.fields.efficiency))

		t.sw.SetNote(strings.TrimSpace(t.fields.note))
		t.sw.SetEfficiency(eff)

		t.submit()
	case categoryForm:
		return t.selectCategory(t.fields.category)
	case addCategoryForm:
		t.addCategory(t.fields.newName)
	case switchForm:
		t.switchCategory(t.fields.pending, t.fields.logFirst)
	case noForm:
	}

	return nil
}
