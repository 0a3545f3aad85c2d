package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tally/internal/config"
)

// Get retrieves the tally app instance.
func Get() *cli.App {
	tallyApp := &cli.App{
		Name: "tally",
		Usage: `
		Tally is a personal time tracker for the command-line. Pick a category,
		run the stopwatch and log each session with a note and an efficiency
		rating. Running totals are kept per category for every user.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Log in and remember the user for later commands",
				Action: loginAction,
			},
			{
				Name:   "logout",
				Usage:  "Forget the remembered user",
				Action: logoutAction,
			},
			{
				Name:  "user",
				Usage: "Manage user accounts",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Create or replace a user account",
						ArgsUsage: "ID",
						Flags:     []cli.Flag{nameFlag},
						Action:    userAddAction,
					},
				},
			},
			{
				Name:  "category",
				Usage: "Manage categories",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Add a category",
						ArgsUsage: "NAME",
						Action:    categoryAddAction,
					},
					{
						Name:    "list",
						Aliases: []string{"ls"},
						Usage:   "List all categories",
						Action:  categoryListAction,
					},
				},
			},
			{
				Name:  "history",
				Usage: "Show your logged sessions, most recent first",
				Flags: []cli.Flag{
					sinceFlag,
					periodFlag,
					categoryFlag,
					jsonFlag,
					chartFlag,
				},
				Action: historyAction,
			},
			{
				Name:   "totals",
				Usage:  "Show the total time you logged per category",
				Flags:  []cli.Flag{jsonFlag},
				Action: totalsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			userFlag,
			lengthFlag,
			dbDriverFlag,
			dbPathFlag,
			disableNotificationFlag,
			noColorFlag,
			debugFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return tallyApp
}
