package config

import (
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ayoisaiah/tally/internal/stopwatch"
)

var drivers = []string{"bolt", "sqlite"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateTimer(); err != nil {
		return err
	}

	if !slices.Contains(drivers, c.Storage.Driver) {
		return errUnknownDriver.Fmt(c.Storage.Driver)
	}

	if err := c.validateCredentials(); err != nil {
		return err
	}

	if c.Cookie.ExpiryDays < 0 {
		return errInvalidExpiry.Fmt(c.Cookie.ExpiryDays)
	}

	return nil
}

func (c *Config) validateTimer() error {
	l := c.Timer.SessionLength

	if l < stopwatch.MinTarget || l > stopwatch.MaxTarget ||
		l%stopwatch.TargetStep != 0 {
		return errInvalidSessionLength.Fmt(
			stopwatch.TargetStep,
			stopwatch.MinTarget,
			stopwatch.MaxTarget,
			l,
		)
	}

	return nil
}

func (c *Config) validateCredentials() error {
	for id, user := range c.Credentials.Users {
		if strings.TrimSpace(id) == "" {
			return errEmptyUserID
		}

		if _, err := bcrypt.Cost([]byte(user.Password)); err != nil {
			return errInvalidPasswordHash.Fmt(id)
		}
	}

	return nil
}
