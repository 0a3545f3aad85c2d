package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
████████╗ █████╗ ██╗     ██╗  ██╗   ██╗
╚══██╔══╝██╔══██╗██║     ██║  ╚██╗ ██╔╝
   ██║   ███████║██║     ██║   ╚████╔╝
   ██║   ██╔══██║██║     ██║    ╚██╔╝
   ██║   ██║  ██║███████╗███████╗██║
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Driver        string
	SessionLength int
}

// WithPromptConfig returns an Option that configures settings via interactive
// prompts. It only runs when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure tally for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Add user accounts with 'tally user add' and edit settings with 'tally edit-config'.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Target session length").
				Options(
					huh.NewOption("25 minutes", 25),
					huh.NewOption("30 minutes", 30),
					huh.NewOption("45 minutes", 45),
					huh.NewOption("50 minutes", 50).Selected(true),
				).
				Value(&opts.SessionLength),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Database").
				Options(
					huh.NewOption("Bolt (single file key/value store)", "bolt").
						Selected(true),
					huh.NewOption("SQLite", "sqlite"),
				).
				Value(&opts.Driver),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Timer.SessionLength = opts.SessionLength
	c.Storage.Driver = opts.Driver
}
