package mock

import (
	"context"
	"strings"

	"github.com/heroku/applink-cli/internal/cloud/heroku"
)

// HerokuClient is a mocked Heroku Platform API client
type HerokuClient struct {
	heroku.Client
	AddonsFn     func(ctx context.Context, app string) ([]heroku.Addon, error)
	ConfigVarsFn func(ctx context.Context, app string) (map[string]string, error)
}

// Addons calls the mocked Addons implementation if provided,
// otherwise the call falls back to the underlying heroku.Client implementation.
// NOTE: this may panic if the underlying heroku.Client is left undefined
func (hc HerokuClient) Addons(ctx context.Context, app string) ([]heroku.Addon, error) {
	if hc.AddonsFn != nil {
		return hc.AddonsFn(ctx, app)
	}
	return hc.Client.Addons(ctx, app)
}

// ConfigVars calls the mocked ConfigVars implementation if provided,
// otherwise the call falls back to the underlying heroku.Client implementation.
// NOTE: this may panic if the underlying heroku.Client is left undefined
func (hc HerokuClient) ConfigVars(ctx context.Context, app string) (map[string]string, error) {
	if hc.ConfigVarsFn != nil {
		return hc.ConfigVarsFn(ctx, app)
	}
	return hc.Client.ConfigVars(ctx, app)
}

// set of add-on details the mocked Heroku Platform API client returns
const (
	AddonID      = "01234567-89ab-cdef-0123-456789abcdef"
	AddonAPIURL  = "https://applink.example.com/addons/" + AddonID
	AddonToken   = "addon-token"
	AddonAppID   = "app-id"
	AddonAppName = "my-app"
)

// NewHerokuClientWithAddon returns a mocked Heroku Platform API client
// listing a single provisioned add-on of the service attached to the app
func NewHerokuClientWithAddon(service, name string) HerokuClient {
	prefix := strings.ToUpper(strings.ReplaceAll(service, "-", "_"))
	return HerokuClient{
		AddonsFn: func(ctx context.Context, app string) ([]heroku.Addon, error) {
			return []heroku.Addon{{
				ID:           AddonID,
				Name:         name,
				State:        heroku.AddonStateProvisioned,
				ConfigVars:   []string{prefix + "_API_URL", prefix + "_TOKEN"},
				AddonService: heroku.AddonService{Name: service},
				App:          heroku.App{ID: AddonAppID, Name: app},
			}}, nil
		},
		ConfigVarsFn: func(ctx context.Context, app string) (map[string]string, error) {
			return map[string]string{
				prefix + "_API_URL": AddonAPIURL,
				prefix + "_TOKEN":   AddonToken,
			}, nil
		},
	}
}
