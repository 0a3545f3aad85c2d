package config

import "github.com/ayoisaiah/tally/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidSessionLength = &apperr.Error{
		Message: "session length must be a multiple of %d between %d and %d minutes, got %d",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver %q: expected bolt or sqlite",
	}

	errInvalidPasswordHash = &apperr.Error{
		Message: "password for user %q must be a bcrypt hash",
	}

	errEmptyUserID = &apperr.Error{
		Message: "user ids cannot be empty",
	}

	errInvalidExpiry = &apperr.Error{
		Message: "cookie expiry must not be negative, got %d days",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period: %s",
	}
)
