package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	User          string
	Driver        string
	DBPath        string
	SessionLength int
	Debug         bool
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			User:          ctx.String("user"),
			Driver:        ctx.String("db-driver"),
			DBPath:        ctx.String("db-path"),
			SessionLength: ctx.Int("length"),
			Debug:         ctx.Bool("debug"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.SessionLength != 0 {
		c.Timer.SessionLength = opts.SessionLength
	}

	if opts.Driver != "" {
		c.Storage.Driver = opts.Driver
	}

	if opts.DBPath != "" {
		c.Storage.Path = opts.DBPath
	}

	if opts.DisableNotify {
		c.Timer.Notify = false
	}

	c.CLI.User = strings.ToLower(strings.TrimSpace(opts.User))
	c.CLI.Debug = opts.Debug
}
