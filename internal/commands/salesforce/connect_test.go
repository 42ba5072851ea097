package salesforce

import (
	"context"
	"testing"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cloud/addon"
	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/cloud/heroku"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/operation"
	"github.com/heroku/applink-cli/internal/utils/test/assert"
	"github.com/heroku/applink-cli/internal/utils/test/mock"
)

func TestConnectHandler(t *testing.T) {
	newCommand := func() *CommandConnect {
		return &CommandConnect{shared.OrgInputs{AppInputs: newAppInputs(), Name: "my-org"}}
	}

	t.Run("should display connected once the org connects", func(t *testing.T) {
		out, ui := newAutoConfirmUI()

		statuses := []operation.Status{applink.ConnectionStatusConnecting, applink.ConnectionStatusConnected}
		var fetches int
		client := mock.AppLinkClient{
			CreateSalesforceConnectionFn: func(ctx context.Context, req applink.OrgRequest) (applink.Connection, error) {
				assert.Equal(t, applink.OrgRequest{ConnectionName: "my-org"}, req)
				return applink.Connection{Status: applink.ConnectionStatusConnecting, RedirectURI: "https://login.salesforce.com/authorize"}, nil
			},
			ConnectionFn: func(ctx context.Context, name string) (applink.Connection, error) {
				status := statuses[fetches]
				fetches++
				return applink.Connection{Status: status}, nil
			},
		}

		assert.Nil(t, newCommand().Handler(context.Background(), mock.NewProfile(t), ui, newTestClients(t, client)))
		assert.Equal(t, 2, fetches)
		assert.Equal(t, "Connecting my-org... Connected\n", out.String())
	})

	t.Run("should fail with the org error when authentication fails", func(t *testing.T) {
		_, ui := newAutoConfirmUI()

		client := mock.AppLinkClient{
			CreateSalesforceConnectionFn: func(ctx context.Context, req applink.OrgRequest) (applink.Connection, error) {
				return applink.Connection{Status: applink.ConnectionStatusAuthenticating}, nil
			},
			ConnectionFn: func(ctx context.Context, name string) (applink.Connection, error) {
				return applink.Connection{
					Status: applink.ConnectionStatusAuthenticationFailed,
					Error: &operation.Error{
						ID:      "org_connection_failed",
						Message: "There was a problem connecting your org. Try again later.",
					},
				}, nil
			},
		}

		err := newCommand().Handler(context.Background(), mock.NewProfile(t), ui, newTestClients(t, client))
		assert.Equal(t, "org_connection_failed\nThere was a problem connecting your org. Try again later.", err.Error())
	})

	t.Run("should name the add-on to install when it is missing", func(t *testing.T) {
		_, ui := newAutoConfirmUI()

		var configVarsCalled, addonCalled bool
		clients := cli.Clients{
			Heroku: mock.HerokuClient{
				AddonsFn: func(ctx context.Context, app string) ([]heroku.Addon, error) {
					return []heroku.Addon{}, nil
				},
				ConfigVarsFn: func(ctx context.Context, app string) (map[string]string, error) {
					configVarsCalled = true
					return nil, nil
				},
			},
			AppLink: func(attachment addon.Attachment) applink.Client {
				addonCalled = true
				return mock.AppLinkClient{}
			},
		}

		err := newCommand().Handler(context.Background(), mock.NewProfile(t), ui, clients)
		assert.Equal(t,
			"Heroku AppLink add-on isn't present on my-app.\nInstall the add-on using heroku addons:create heroku-applink -a my-app.",
			err.Error(),
		)
		assert.False(t, configVarsCalled, "expected config vars to not be read")
		assert.False(t, addonCalled, "expected the add-on api to not be called")
	})
}

func TestConnectJWTHandler(t *testing.T) {
	t.Run("should send the key and watch the connection", func(t *testing.T) {
		out, ui := newAutoConfirmUI()
		profile := mock.NewProfile(t)
		key := writeTestKey(t, profile.Fs(), "/keys/server.key")

		var capturedReq applink.JWTOrgRequest
		client := mock.AppLinkClient{
			CreateSalesforceJWTConnectionFn: func(ctx context.Context, req applink.JWTOrgRequest) (applink.Connection, error) {
				capturedReq = req
				return applink.Connection{Status: applink.ConnectionStatusConnected}, nil
			},
		}

		cmd := &CommandConnectJWT{shared.JWTOrgInputs{
			AppInputs: newAppInputs(),
			JWTInputs: shared.JWTInputs{ClientID: "3MVG9", JWTKeyFile: "/keys/server.key", Username: "admin@example.com"},
			Name:      "my-org",
		}}
		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, newTestClients(t, client)))
		assert.Equal(t, applink.JWTOrgRequest{
			ConnectionName: "my-org",
			ClientID:       "3MVG9",
			JWTPrivateKey:  key,
			Username:       "admin@example.com",
		}, capturedReq)
		assert.Equal(t, "Connecting my-org... Connected\n", out.String())
	})

	t.Run("should not resolve the add-on when the key file is missing", func(t *testing.T) {
		_, ui := newAutoConfirmUI()

		cmd := &CommandConnectJWT{shared.JWTOrgInputs{
			AppInputs: newAppInputs(),
			JWTInputs: shared.JWTInputs{JWTKeyFile: "/keys/missing.key"},
			Name:      "my-org",
		}}
		err := cmd.Handler(context.Background(), mock.NewProfile(t), ui, cli.Clients{})
		assert.Contains(t, err.Error(), "failed to read the JWT key file")
	})
}

func TestAuthorizationsAddJWTHandler(t *testing.T) {
	out, ui := newAutoConfirmUI()
	profile := mock.NewProfile(t)
	writeTestKey(t, profile.Fs(), "/keys/server.key")

	client := mock.AppLinkClient{
		CreateSalesforceJWTAuthorizationFn: func(ctx context.Context, req applink.JWTAuthorizationRequest) (applink.Authorization, error) {
			assert.Equal(t, "MyAuth", req.DeveloperName)
			assert.Equal(t, "https://test.salesforce.com", req.LoginURL)
			return applink.Authorization{Status: applink.AuthorizationStatusAuthorizing}, nil
		},
		AuthorizationFn: func(ctx context.Context, developerName string) (applink.Authorization, error) {
			return applink.Authorization{Status: applink.AuthorizationStatusAuthorized}, nil
		},
	}

	cmd := &CommandAuthorizationsAddJWT{shared.JWTOrgInputs{
		AppInputs: newAppInputs(),
		JWTInputs: shared.JWTInputs{ClientID: "3MVG9", JWTKeyFile: "/keys/server.key", Username: "admin@example.com"},
		Name:      "MyAuth",
		LoginURL:  "https://test.salesforce.com",
	}}
	assert.Nil(t, cmd.Handler(context.Background(), profile, ui, newTestClients(t, client)))
	assert.Equal(t, "Authorizing MyAuth... Authorized\n", out.String())
}

func TestAuthorizationsAddHandler(t *testing.T) {
	out, ui := newAutoConfirmUI()

	client := mock.AppLinkClient{
		CreateSalesforceAuthorizationFn: func(ctx context.Context, req applink.AuthorizationRequest) (applink.Authorization, error) {
			return applink.Authorization{Status: applink.AuthorizationStatusPending}, nil
		},
		AuthorizationFn: func(ctx context.Context, developerName string) (applink.Authorization, error) {
			assert.Equal(t, "MyAuth", developerName)
			return applink.Authorization{Status: applink.AuthorizationStatusAuthorized}, nil
		},
	}

	cmd := &CommandAuthorizationsAdd{shared.OrgInputs{AppInputs: newAppInputs(), Name: "MyAuth"}}
	assert.Nil(t, cmd.Handler(context.Background(), mock.NewProfile(t), ui, newTestClients(t, client)))
	assert.Equal(t, "Authorizing MyAuth... Authorized\n", out.String())
}
