package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the lighter variant of each colour.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

// Efficiency colours an efficiency rating: green from 75, red below 50.
func Efficiency(eff int) string {
	switch {
	case eff >= 75:
		return Green(eff)
	case eff < 50:
		return Red(eff)
	default:
		return pterm.Sprint(eff)
	}
}
