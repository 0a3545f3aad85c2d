package config

import (
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// AddUser hashes password and stores the account under id in the config file
// at configPath, replacing any account with the same id.
func AddUser(configPath, id, name, password string) error {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return errEmptyUserID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	err = v.ReadInConfig()
	if err != nil {
		return errReadConfig.Wrap(err)
	}

	v.Set(keyUsers+"."+id, map[string]any{
		"name":     strings.TrimSpace(name),
		"password": string(hash),
	})

	err = v.WriteConfig()
	if err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}
