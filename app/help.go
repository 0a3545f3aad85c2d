package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	keys := fmt.Sprintf(
		"%s\n\t\t%s\n",
		pterm.Yellow("TIMER KEYS"),
		keyHelp(),
	)

	return description + usage + version + commands + options + env + keys
}

func envHelp() string {
	return `
TALLY_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

TALLY_ENV: use separate config, database and log files suffixed with this value (e.g. 'dev').`
}

func keyHelp() string {
	return `
space	start or pause the stopwatch
r	log the current run whatever its length
l	add a note and efficiency, then log once the session length is reached
c	choose the category to track
a	add a category
+ / -	change the session length by 5 minutes
q	quit without logging`
}
