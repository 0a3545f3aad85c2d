package store

import (
	"github.com/ayoisaiah/tally/internal/models"
)

// Supported storage drivers.
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// DB is the database storage interface.
type DB interface {
	// EnsureSchema creates the categories, sessions and totals tables if they
	// do not exist. It is safe to call repeatedly.
	EnsureSchema() error
	// ListCategories returns every category name in natural order.
	ListCategories() ([]string, error)
	// AddCategory creates a category and a zero total for each known user. It
	// returns the updated list of categories.
	AddCategory(name string) ([]string, error)
	// LoadUserSessions returns the sessions logged by a user, most recent
	// first.
	LoadUserSessions(user string) ([]models.Session, error)
	// LoadUserTotals returns the total seconds logged by a user per category.
	LoadUserTotals(user string) (models.Totals, error)
	// AppendSession saves a session and adds its duration to the matching
	// category total in a single transaction. It returns the updated totals
	// of the session's user.
	AppendSession(sess *models.Session) (models.Totals, error)
	// Close ends the database connection
	Close() error
}

type options struct {
	users []string
}

// Option configures a store client.
type Option func(*options)

// WithUsers registers the known user accounts. Every category gets a zero
// total for each of them.
func WithUsers(users ...string) Option {
	return func(o *options) {
		o.users = append(o.users, users...)
	}
}

func buildOptions(opts []Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Open connects to the store backed by driver at path and ensures its schema
// exists.
func Open(driver, path string, opts ...Option) (DB, error) {
	var (
		db  DB
		err error
	)

	switch driver {
	case DriverBolt, "":
		db, err = NewClient(path, opts...)
	case DriverSQLite:
		db, err = NewSQLClient(path, opts...)
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}

	if err != nil {
		return nil, err
	}

	err = db.EnsureSchema()
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return db, nil
}
