// Package report prints the outcome of commands to the terminal
package report

import (
	"errors"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tally/internal/session"
	"github.com/ayoisaiah/tally/store"
)

func Success(format string, args ...any) {
	pterm.Success.Printfln(format, args...)
}

func Info(format string, args ...any) {
	pterm.Info.Printfln(format, args...)
}

// Error prints err as a warning when the user can correct it and as an error
// otherwise.
func Error(err error) {
	if IsWarning(err) {
		pterm.Warning.Println(err)
		return
	}

	pterm.Error.Println(err)
}

// IsWarning reports whether err is an expected rejection that leaves stored
// data unchanged.
func IsWarning(err error) bool {
	return errors.Is(err, store.ErrDuplicateCategory) ||
		errors.Is(err, session.ErrIncompleteSession) ||
		errors.Is(err, session.ErrNoCategory)
}

func Quit(err error) {
	Error(err)
	os.Exit(1)
}
