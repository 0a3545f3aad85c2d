package ui

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tally/internal/models"
	"github.com/ayoisaiah/tally/internal/testutil"
)

func sampleSessions() []models.Session {
	end := time.Date(2024, 5, 2, 10, 30, 0, 0, time.Local)
	earlier := time.Date(2024, 5, 1, 18, 0, 0, 0, time.Local)

	return []models.Session{
		{
			StartTime:       end.Add(-90 * time.Second),
			EndTime:         end,
			Category:        "Reading",
			WorkDone:        "chapter 4",
			DurationSeconds: 90,
			Efficiency:      75,
		},
		{
			StartTime:       earlier.Add(-time.Minute),
			EndTime:         earlier,
			Category:        "Reading",
			WorkDone:        "",
			DurationSeconds: 60,
			Efficiency:      0,
		},
	}
}

func TestSessionsJSON(t *testing.T) {
	b, err := SessionsJSON(sampleSessions())
	if err != nil {
		t.Fatal(err)
	}

	testutil.CompareGoldenFile(t, testutil.Snapshot{
		Golden: "sessions_json",
		Data:   append(b, '\n'),
	})
}

func TestSessionRows(t *testing.T) {
	rows := SessionRows(sampleSessions())

	want := [][]string{
		{"DATE", "START", "END", "DURATION", "CATEGORY", "WORK DONE", "EFFICIENCY"},
		{"2024-05-02", "10:28:30", "10:30:00", "00 : 00 : 01 : 30", "Reading", "chapter 4", "75"},
		{"2024-05-01", "17:59:00", "18:00:00", "00 : 00 : 01 : 00", "Reading", "", "0"},
	}

	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("SessionRows() mismatch (-want +got):\n%s", diff)
	}
}

func TestTotalRows(t *testing.T) {
	rows := TotalRows(
		[]string{"Reading", "Writing"},
		models.Totals{"Reading": 150},
	)

	want := [][]string{
		{"CATEGORY", "TOTAL TIME"},
		{"Reading", "00 : 00 : 02 : 30"},
		{"Writing", "00 : 00 : 00 : 00"},
	}

	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("TotalRows() mismatch (-want +got):\n%s", diff)
	}
}

func TestChartBarsOldestFirst(t *testing.T) {
	bars := ChartBars(sampleSessions())

	want := pterm.Bars{
		{Label: "2024-05-01 17:59:00", Value: 60},
		{Label: "2024-05-02 10:28:30", Value: 90},
	}

	if len(bars) != len(want) {
		t.Fatalf("expected %d bars, got %d", len(want), len(bars))
	}

	for i := range want {
		if bars[i].Label != want[i].Label || bars[i].Value != want[i].Value {
			t.Errorf("bar %d: want %s=%d, got %s=%d",
				i, want[i].Label, want[i].Value, bars[i].Label, bars[i].Value)
		}
	}
}

func TestTotalsJSON(t *testing.T) {
	b, err := TotalsJSON(
		[]string{"Reading", "Writing"},
		models.Totals{"Reading": 150, "Writing": 3600},
	)
	if err != nil {
		t.Fatal(err)
	}

	testutil.CompareGoldenFile(t, testutil.Snapshot{
		Golden: "totals_json",
		Data:   append(b, '\n'),
	})
}

func TestEfficiencyColours(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	for eff, want := range map[int]string{0: "0", 49: "49", 50: "50", 75: "75", 100: "100"} {
		if got := Efficiency(eff); got != want {
			t.Errorf("Efficiency(%d) = %q, want %q", eff, got, want)
		}
	}
}
