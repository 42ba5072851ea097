package cli

import (
	"fmt"
	"runtime"
)

var (
	// Name represents the CLI name; used for invoking the CLI commands
	Name = "heroku-applink"

	// Version represents the CLI version
	Version = "0.0.0" // value will be injected at build-time
)

// UserAgent returns the user agent sent with every api request
func UserAgent() string {
	return fmt.Sprintf("%s/%s (%s-%s) go/%s", Name, Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
}
