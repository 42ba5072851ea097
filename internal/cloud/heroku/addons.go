package heroku

import (
	"context"
	"fmt"

	"github.com/heroku/applink-cli/internal/utils/api"
)

const (
	appPathPattern    = "/apps/%s"
	addonsPathPattern = appPathPattern + "/addons"
)

// AddonStateProvisioned is the state of a ready to use add-on
const AddonStateProvisioned = "provisioned"

// Addon is an add-on attached to a Heroku app
type Addon struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	State        string       `json:"state"`
	ConfigVars   []string     `json:"config_vars"`
	AddonService AddonService `json:"addon_service"`
	Plan         AddonPlan    `json:"plan"`
	App          App          `json:"app"`
}

// App is the Heroku app an add-on is attached to
type App struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddonService is the service an add-on is an instance of
type AddonService struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddonPlan is the plan an add-on is provisioned with
type AddonPlan struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *client) Addons(ctx context.Context, app string) ([]Addon, error) {
	var addons []Addon
	if err := c.getJSON(ctx, fmt.Sprintf(addonsPathPattern, api.PathEscape(app)), &addons); err != nil {
		return nil, err
	}
	return addons, nil
}
