package app

import "github.com/urfave/cli/v2"

var (
	userFlag = &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "Log in as this user instead of the remembered one",
	}

	lengthFlag = &cli.IntFlag{
		Name:    "length",
		Aliases: []string{"l"},
		Usage:   "Target session length in minutes, a multiple of 5 from 5 to 50 (default: 50)",
	}

	dbDriverFlag = &cli.StringFlag{
		Name:  "db-driver",
		Usage: "Storage backend to use: bolt or sqlite (default: bolt)",
	}

	dbPathFlag = &cli.StringFlag{
		Name:  "db-path",
		Usage: "Path to the database file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when the session length is reached",
	}

	sinceFlag = &cli.StringFlag{
		Name:    "since",
		Aliases: []string{"s"},
		Usage:   "Only include sessions that started after this date (e.g. '2 weeks ago', 'last monday')",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Only include sessions in a reporting period: today, yesterday, 7days, 14days, 30days, 90days, 365days, all-time",
	}

	categoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "Only include sessions logged against this category",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the result as JSON",
	}

	chartFlag = &cli.BoolFlag{
		Name:  "chart",
		Usage: "Show session durations as a bar chart",
	}

	nameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "Display name of the user",
	}
)
