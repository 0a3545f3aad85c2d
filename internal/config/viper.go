package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/tally/internal/stopwatch"
)

const (
	keySessionLength  = "timer.session_length"
	keyNotify         = "timer.notify"
	keySound          = "timer.sound"
	keyDarkTheme      = "display.dark_theme"
	keyTwentyFourHour = "display.24hr_clock"
	keyStorageDriver  = "storage.driver"
	keyStoragePath    = "storage.path"
	keyUsers          = "credentials.users"
	keyCookieName     = "cookie.name"
	keyCookieKey      = "cookie.key"
	keyCookieExpiry   = "cookie.expiry_days"
)

const (
	defaultDriver     = "bolt"
	defaultCookieName = "tally_auth"
	defaultExpiryDays = 30
	cookieKeyBytes    = 32
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does not
// exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		// The signing key is generated once and kept in the file so remembered
		// logins survive restarts.
		key, err := newCookieKey()
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		v.Set(keyCookieKey, key)

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults. Values already present in c, for
// example from the first-run prompt, take precedence over the defaults.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keySessionLength, stopwatch.DefaultTarget)
	v.SetDefault(keyNotify, true)
	v.SetDefault(keySound, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyStorageDriver, defaultDriver)
	v.SetDefault(keyStoragePath, "")
	v.SetDefault(keyUsers, map[string]any{})
	v.SetDefault(keyCookieName, defaultCookieName)
	v.SetDefault(keyCookieKey, "")
	v.SetDefault(keyCookieExpiry, defaultExpiryDays)

	if c.Timer.SessionLength != 0 {
		v.SetDefault(keySessionLength, c.Timer.SessionLength)
	}

	if c.Storage.Driver != "" {
		v.SetDefault(keyStorageDriver, c.Storage.Driver)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	err := v.Unmarshal(c)
	if err != nil {
		return errReadConfig.Wrap(err)
	}

	if c.Credentials.Users == nil {
		c.Credentials.Users = make(map[string]UserCredential)
	}

	return nil
}

func newCookieKey() (string, error) {
	b := make([]byte, cookieKeyBytes)

	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
