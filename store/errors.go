package store

import "github.com/ayoisaiah/tally/internal/apperr"

var (
	// ErrDuplicateCategory is returned when adding a category whose name is
	// already taken.
	ErrDuplicateCategory = &apperr.Error{
		Message: "category %q already exists",
	}

	// ErrUnknownCategory is returned when a session references a category
	// that does not exist.
	ErrUnknownCategory = &apperr.Error{
		Message: "category %q does not exist",
	}

	errEmptyCategory = &apperr.Error{
		Message: "category name cannot be empty",
	}

	errTallyRunning = &apperr.Error{
		Message: "is tally already running? Only one instance can use the bolt database at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver %q: expected bolt or sqlite",
	}

	errPersistence = &apperr.Error{
		Message: "unable to save session",
	}
)
