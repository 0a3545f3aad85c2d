package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tally/internal/models"
	"github.com/ayoisaiah/tally/internal/timeutil"
)

func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output session table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// SessionRows converts sessions into table rows with a header row.
func SessionRows(sessions []models.Session) [][]string {
	rows := make([][]string, 0, len(sessions)+1)

	rows = append(rows, []string{
		"DATE",
		"START",
		"END",
		"DURATION",
		"CATEGORY",
		"WORK DONE",
		"EFFICIENCY",
	})

	for i := range sessions {
		s := &sessions[i]

		rows = append(rows, []string{
			s.Date(),
			s.Start(),
			s.End(),
			s.Duration(),
			s.Category,
			s.WorkDone,
			strconv.Itoa(s.Efficiency),
		})
	}

	return rows
}

// TotalRows converts category totals into table rows with a header row.
// Categories are listed in the given order.
func TotalRows(categories []string, totals models.Totals) [][]string {
	rows := [][]string{{"CATEGORY", "TOTAL TIME"}}

	for _, c := range categories {
		rows = append(rows, []string{c, timeutil.FormatDuration(totals[c])})
	}

	return rows
}
