package datacloud

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cloud/addon"
	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/operation"
	"github.com/heroku/applink-cli/internal/utils/api"
	"github.com/heroku/applink-cli/internal/utils/test/assert"
	"github.com/heroku/applink-cli/internal/utils/test/mock"
)

func newTestClients(t *testing.T, client applink.Client) cli.Clients {
	t.Helper()
	return cli.Clients{
		Heroku: mock.NewHerokuClientWithAddon("heroku-applink", "heroku-applink-vertical-01234"),
		AppLink: func(attachment addon.Attachment) applink.Client {
			return client
		},
	}
}

func TestConnectHandler(t *testing.T) {
	out := new(bytes.Buffer)

	var opened string
	ui := mock.NewUIWithOptions(mock.UIOptions{
		AutoConfirm: true,
		OpenBrowserFn: func(url string) error {
			opened = url
			return nil
		},
	}, out)

	client := mock.AppLinkClient{
		CreateDataCloudConnectionFn: func(ctx context.Context, req applink.OrgRequest) (applink.Connection, error) {
			assert.Equal(t, applink.OrgRequest{ConnectionName: "my-dc-org", LoginURL: "https://test.salesforce.com"}, req)
			return applink.Connection{Status: applink.ConnectionStatusPending, RedirectURI: "https://test.salesforce.com/authorize"}, nil
		},
		ConnectionFn: func(ctx context.Context, name string) (applink.Connection, error) {
			return applink.Connection{Status: applink.ConnectionStatusConnected}, nil
		},
	}

	cmd := &CommandConnect{shared.OrgInputs{
		AppInputs: cli.AppInputs{App: mock.AddonAppName},
		Name:      "my-dc-org",
		LoginURL:  "https://test.salesforce.com",
	}}
	assert.Nil(t, cmd.Handler(context.Background(), mock.NewProfile(t), ui, newTestClients(t, client)))
	assert.Equal(t, "https://test.salesforce.com/authorize", opened)
	assert.Equal(t, "Connecting my-dc-org... Connected\n", out.String())
}

func TestDataActionTargetCreateHandler(t *testing.T) {
	newCommand := func(apiName string) *CommandDataActionTargetCreate {
		return &CommandDataActionTargetCreate{dataActionTargetCreateInputs{
			AppInputs:      cli.AppInputs{App: mock.AddonAppName},
			Label:          "My Target (v2)",
			APIName:        apiName,
			TargetAPIPath:  "/handle-data-action",
			ConnectionName: "my-dc-org",
		}}
	}

	t.Run("should derive the api name from the label and watch until created", func(t *testing.T) {
		out, ui := mock.NewUI()

		var capturedReq applink.DataActionTargetRequest
		statuses := []operation.Status{applink.DataActionTargetStatusCreating, applink.DataActionTargetStatusCreated}
		var fetches int
		client := mock.AppLinkClient{
			CreateDataActionTargetFn: func(ctx context.Context, connectionName string, req applink.DataActionTargetRequest) (applink.DataActionTarget, error) {
				assert.Equal(t, "my-dc-org", connectionName)
				capturedReq = req
				return applink.DataActionTarget{Status: applink.DataActionTargetStatusPending}, nil
			},
			DataActionTargetFn: func(ctx context.Context, connectionName, apiName string) (applink.DataActionTarget, error) {
				assert.Equal(t, "My_Target_v2", apiName)
				status := statuses[fetches]
				fetches++
				return applink.DataActionTarget{APIName: apiName, Status: status}, nil
			},
		}

		assert.Nil(t, newCommand("").Handler(context.Background(), mock.NewProfile(t), ui, newTestClients(t, client)))
		assert.Equal(t, applink.DataActionTargetRequest{
			Label:         "My Target (v2)",
			APIName:       "My_Target_v2",
			TargetAPIPath: "/handle-data-action",
		}, capturedReq)
		assert.Equal(t, 2, fetches)
		assert.Equal(t, "Creating data action target My_Target_v2... Created\n", out.String())
	})

	t.Run("should reject a label without any letters or digits before calling the api", func(t *testing.T) {
		_, ui := mock.NewUI()

		var created bool
		client := mock.AppLinkClient{
			CreateDataActionTargetFn: func(ctx context.Context, connectionName string, req applink.DataActionTargetRequest) (applink.DataActionTarget, error) {
				created = true
				return applink.DataActionTarget{}, nil
			},
		}

		cmd := newCommand("")
		cmd.inputs.Label = "!!!"

		err := cmd.Handler(context.Background(), mock.NewProfile(t), ui, newTestClients(t, client))
		assert.Equal(t, `Can't derive an API name from the label "!!!". Specify one with --api-name.`, err.Error())
		assert.False(t, created, "expected no data action target to be created")
	})

	t.Run("should fail with the creation error", func(t *testing.T) {
		out, ui := mock.NewUI()

		client := mock.AppLinkClient{
			CreateDataActionTargetFn: func(ctx context.Context, connectionName string, req applink.DataActionTargetRequest) (applink.DataActionTarget, error) {
				return applink.DataActionTarget{
					Status: applink.DataActionTargetStatusCreationFailed,
					Error:  &operation.Error{ID: "invalid_target", Message: "The target API path is invalid."},
				}, nil
			},
		}

		err := newCommand("MyTarget").Handler(context.Background(), mock.NewProfile(t), ui, newTestClients(t, client))
		assert.Equal(t, "invalid_target\nThe target API path is invalid.", err.Error())
		assert.Equal(t, "Creating data action target MyTarget... Creation Failed\n", out.String())
	})
}

func TestDataActionTargetInfoHandler(t *testing.T) {
	t.Run("should show the data action target", func(t *testing.T) {
		out, ui := mock.NewUI()

		client := mock.AppLinkClient{
			DataActionTargetFn: func(ctx context.Context, connectionName, apiName string) (applink.DataActionTarget, error) {
				return applink.DataActionTarget{
					ID:             "target-1",
					Label:          "My Target",
					APIName:        apiName,
					Status:         applink.DataActionTargetStatusCreated,
					TargetAPIPath:  "/handle-data-action",
					ConnectionName: connectionName,
				}, nil
			},
		}

		cmd := &CommandDataActionTargetInfo{dataActionTargetInfoInputs{cli.AppInputs{App: mock.AddonAppName}, "My_Target", "my-dc-org"}}
		assert.Nil(t, cmd.Handler(context.Background(), mock.NewProfile(t), ui, newTestClients(t, client)))

		output := out.String()
		for _, line := range []string{
			"Data action target My_Target\n",
			"API Name:        My_Target\n",
			"Status:          Created\n",
			"Target API Path: /handle-data-action\n",
			"Connection Name: my-dc-org\n",
		} {
			assert.Contains(t, output, line)
		}
	})

	t.Run("should explain a missing data action target", func(t *testing.T) {
		_, ui := mock.NewUI()

		client := mock.AppLinkClient{
			DataActionTargetFn: func(ctx context.Context, connectionName, apiName string) (applink.DataActionTarget, error) {
				return applink.DataActionTarget{}, api.ServerError{StatusCode: http.StatusNotFound}
			},
		}

		cmd := &CommandDataActionTargetInfo{dataActionTargetInfoInputs{cli.AppInputs{App: mock.AddonAppName}, "My_Target", "my-dc-org"}}
		err := cmd.Handler(context.Background(), mock.NewProfile(t), ui, newTestClients(t, client))
		assert.Equal(t, "Data action target My_Target doesn't exist on connection my-dc-org.", err.Error())
	})
}

func TestAPINameFromLabel(t *testing.T) {
	for _, tc := range []struct {
		label    string
		expected string
	}{
		{"MyTarget", "MyTarget"},
		{"My Target", "My_Target"},
		{"My Target (v2)", "My_Target_v2"},
		{"  spaced--out  ", "spaced_out"},
	} {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.expected, apiNameFromLabel(tc.label))
		})
	}
}
