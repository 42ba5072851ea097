package auth

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/heroku/applink-cli/internal/cli/user"

	"github.com/bgentry/go-netrc/netrc"
	"github.com/mitchellh/go-homedir"
)

const (
	netrcFilename = ".netrc"
)

// ErrMissingToken is returned when no Heroku credentials can be found
type ErrMissingToken struct {
	Host string
}

func (err ErrMissingToken) Error() string {
	return fmt.Sprintf("no Heroku credentials found for %s, set HEROKU_API_KEY or log in", err.Host)
}

// DisableUsage disables usage printing
func (err ErrMissingToken) DisableUsage() struct{} { return struct{}{} }

// SuggestedCommands returns the commands to run to log in
func (err ErrMissingToken) SuggestedCommands() []string { return []string{"heroku login"} }

// Resolve finds the user's Heroku credentials for the api url
// HEROKU_API_KEY takes precedence over the api host's netrc machine entry
func Resolve(env user.Env, apiURL string) (user.Credentials, error) {
	if env.APIKey != "" {
		return user.Credentials{Token: env.APIKey, Source: user.CredentialsSourceEnv}, nil
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return user.Credentials{}, fmt.Errorf("invalid Heroku API URL: %w", err)
	}
	if u.Host == "" {
		return user.Credentials{}, fmt.Errorf("missing Heroku API host: %s", apiURL)
	}

	path, err := netrcPath(env)
	if err != nil {
		return user.Credentials{}, err
	}

	rc, err := netrc.ParseFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return user.Credentials{}, ErrMissingToken{u.Hostname()}
		}
		return user.Credentials{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	m := rc.FindMachine(u.Hostname())
	if m == nil || m.Password == "" {
		return user.Credentials{}, ErrMissingToken{u.Hostname()}
	}
	return user.Credentials{Login: m.Login, Token: m.Password, Source: user.CredentialsSourceNetrc}, nil
}

func netrcPath(env user.Env) (string, error) {
	if env.NetrcPath != "" {
		return env.NetrcPath, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, netrcFilename), nil
}
