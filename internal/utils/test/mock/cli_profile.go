package mock

import (
	"testing"
	"time"

	"github.com/heroku/applink-cli/internal/cli/user"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// NewProfile returns a new CLI profile with a random name
// backed by an in-memory filesystem and polling every millisecond
func NewProfile(t *testing.T) *user.Profile {
	t.Helper()
	profile := user.NewProfileWithFs(uuid.NewString(), "/.config/heroku-applink", afero.NewMemMapFs())
	profile.Flags.HerokuAPIURL = user.DefaultHerokuAPIURL
	profile.Env.PollInterval = time.Millisecond
	profile.Env.PollTimeout = time.Minute
	return profile
}
