// Package config loads tally settings from the configuration file and
// command-line flags
package config

import (
	"io"
	"os"
)

type (
	// Config holds all configuration settings
	Config struct {
		Credentials CredentialsConfig `mapstructure:"credentials"`
		Cookie      CookieConfig      `mapstructure:"cookie"`
		Storage     StorageConfig     `mapstructure:"storage"`
		CLI         CLIConfig         `mapstructure:"-"`
		Display     DisplayConfig     `mapstructure:"display"`
		Timer       TimerConfig       `mapstructure:"timer"`
	}

	// TimerConfig holds stopwatch settings
	TimerConfig struct {
		// SessionLength is the target length of a session in minutes
		SessionLength int  `mapstructure:"session_length"`
		Notify        bool `mapstructure:"notify"`
		Sound         bool `mapstructure:"sound"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// StorageConfig selects the database backend
	StorageConfig struct {
		Driver string `mapstructure:"driver"`
		Path   string `mapstructure:"path"`
	}

	// CredentialsConfig holds the known user accounts keyed by user id
	CredentialsConfig struct {
		Users map[string]UserCredential `mapstructure:"users"`
	}

	// UserCredential is a single account. Password is a bcrypt hash.
	UserCredential struct {
		Name     string `mapstructure:"name"`
		Password string `mapstructure:"password"`
	}

	// CookieConfig controls the remembered login
	CookieConfig struct {
		Name       string `mapstructure:"name"`
		Key        string `mapstructure:"key"`
		ExpiryDays int    `mapstructure:"expiry_days"`
	}

	// CLIConfig holds settings that only come from command-line flags
	CLIConfig struct {
		User  string
		Debug bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// Stdout receives command output. Tests replace it to capture what is printed.
var Stdout io.Writer = os.Stdout

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// UserIDs returns the ids of every configured account.
func (c *Config) UserIDs() []string {
	ids := make([]string, 0, len(c.Credentials.Users))

	for id := range c.Credentials.Users {
		ids = append(ids, id)
	}

	return ids
}
