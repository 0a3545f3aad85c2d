package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

type styles struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	running   lipgloss.Style
	paused    lipgloss.Style
	idle      lipgloss.Style
	info      lipgloss.Style
	warning   lipgloss.Style
	err       lipgloss.Style
}

func newStyles(dark bool) styles {
	fg := lipgloss.Color("#1F2937")
	muted := lipgloss.Color("#6B7280")

	if dark {
		fg = lipgloss.Color("#F9FAFB")
		muted = lipgloss.Color("#9CA3AF")
	}

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true).Foreground(fg),
		secondary: lipgloss.NewStyle().Foreground(fg),
		hint:      lipgloss.NewStyle().Foreground(muted),
		running: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#16A34A")).
			Padding(0, 1).
			MarginRight(1),
		paused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#D97706")).
			Padding(0, 1).
			MarginRight(1),
		idle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4B5563")).
			Padding(0, 1).
			MarginRight(1),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#D97706")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")),
	}
}
