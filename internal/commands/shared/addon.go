package shared

import (
	"context"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/cloud/addon"
	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/cloud/events"
)

// AppLinkClient resolves the app's AppLink add-on and creates its api client
func AppLinkClient(ctx context.Context, profile *user.Profile, clients cli.Clients, inputs cli.AppInputs) (applink.Client, addon.Attachment, error) {
	attachment, err := addon.Resolve(ctx, clients.Heroku, addon.AppLink(profile.Env), inputs.App, inputs.Addon)
	if err != nil {
		return nil, addon.Attachment{}, err
	}
	return clients.AppLink(attachment), attachment, nil
}

// EventsClient resolves the app's Events add-on and creates its api client
func EventsClient(ctx context.Context, profile *user.Profile, clients cli.Clients, inputs cli.AppInputs) (events.Client, addon.Attachment, error) {
	attachment, err := addon.Resolve(ctx, clients.Heroku, addon.Events(profile.Env), inputs.App, inputs.Addon)
	if err != nil {
		return nil, addon.Attachment{}, err
	}
	return clients.Events(attachment), attachment, nil
}
