package applink

import (
	"testing"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cloud/addon"
	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/utils/test/assert"
	"github.com/heroku/applink-cli/internal/utils/test/mock"
)

const testAddonName = "heroku-applink-vertical-01234"

func newTestClients(t *testing.T, client applink.Client) cli.Clients {
	t.Helper()
	return cli.Clients{
		Heroku: mock.NewHerokuClientWithAddon("heroku-applink", testAddonName),
		AppLink: func(attachment addon.Attachment) applink.Client {
			assert.Equal(t, mock.AddonID, attachment.AddonID)
			assert.Equal(t, mock.AddonToken, attachment.Token)
			return client
		},
	}
}

func newAppInputs() cli.AppInputs {
	return cli.AppInputs{App: mock.AddonAppName}
}
