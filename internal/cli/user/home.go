package user

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	servicePath = ".config/heroku-applink"
)

// HomeDir returns the CLI home directory
func HomeDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, servicePath), nil
}
