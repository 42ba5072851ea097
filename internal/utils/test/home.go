// Package testutils holds shared test helpers
package testutils

import (
	"testing"

	"github.com/mitchellh/go-homedir"
)

// WithHomeDir points $HOME at dir until the test completes
func WithHomeDir(t *testing.T, dir string) {
	t.Helper()

	homedir.DisableCache = true
	t.Setenv("HOME", dir)
	t.Cleanup(func() { homedir.DisableCache = false })
}
