package auth

import (
	"github.com/charmbracelet/huh"
)

// Prompt asks for a username and password on the terminal. A username that is
// already known is not asked for again.
func Prompt(userID string) (username, password string, err error) {
	username = userID

	var fields []huh.Field

	if username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Value(&username))
	}

	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password))

	err = huh.NewForm(huh.NewGroup(fields...)).Run()

	return username, password, err
}
