package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tally/internal/models"
)

// ChartBars converts sessions into bars of a time series chart: one bar per
// session labelled with its date and start time, valued in seconds. Bars are
// ordered oldest first.
func ChartBars(sessions []models.Session) pterm.Bars {
	bars := make(pterm.Bars, 0, len(sessions))

	for i := len(sessions) - 1; i >= 0; i-- {
		s := &sessions[i]

		bars = append(bars, pterm.Bar{
			Label: s.Date() + " " + s.Start(),
			Value: int(s.DurationSeconds),
		})
	}

	return bars
}

// PrintChart renders the session durations as a horizontal bar chart.
func PrintChart(sessions []models.Session, writer io.Writer) {
	if len(sessions) == 0 {
		return
	}

	pterm.Fprintln(writer, pterm.DefaultSection.Sprint("Session durations over time (seconds)"))

	str, err := pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue().
		WithBars(ChartBars(sessions)).
		Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output session chart: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}
