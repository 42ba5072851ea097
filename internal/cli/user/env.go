package user

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Env is the CLI environment configuration
type Env struct {
	APIKey string `env:"HEROKU_API_KEY"`
	APIURL string `env:"HEROKU_API_URL"`
	App    string `env:"HEROKU_APP"`

	AppLinkAddon     string `env:"HEROKU_APPLINK_ADDON"`
	IntegrationAddon string `env:"HEROKU_INTEGRATION_ADDON"`
	EventsAddon      string `env:"HEROKU_EVENTS_ADDON"`

	PollInterval time.Duration `env:"HEROKU_APPLINK_POLL_INTERVAL" env-default:"5s"`
	PollTimeout  time.Duration `env:"HEROKU_APPLINK_POLL_TIMEOUT" env-default:"15m"`

	NetrcPath string `env:"NETRC_PATH"`
	Debug     bool   `env:"HEROKU_DEBUG"`
}

// LoadEnv reads the CLI environment configuration
func LoadEnv() (Env, error) {
	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return Env{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return env, nil
}
