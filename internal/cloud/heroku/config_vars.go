package heroku

import (
	"context"
	"fmt"

	"github.com/heroku/applink-cli/internal/utils/api"
)

const (
	configVarsPathPattern = appPathPattern + "/config-vars"
)

func (c *client) ConfigVars(ctx context.Context, app string) (map[string]string, error) {
	configVars := map[string]string{}
	if err := c.getJSON(ctx, fmt.Sprintf(configVarsPathPattern, api.PathEscape(app)), &configVars); err != nil {
		return nil, err
	}
	return configVars, nil
}
