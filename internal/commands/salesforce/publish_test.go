package salesforce

import (
	"context"
	"net/http"
	"testing"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/operation"
	"github.com/heroku/applink-cli/internal/utils/api"
	"github.com/heroku/applink-cli/internal/utils/test/assert"
	"github.com/heroku/applink-cli/internal/utils/test/mock"

	"github.com/spf13/afero"
)

const testAPISpec = `openapi: 3.0.0
info:
  title: My API
  version: 1.0.0
paths: {}
`

func TestPublishHandler(t *testing.T) {
	newCommand := func() *CommandPublish {
		return &CommandPublish{publishInputs{
			AppInputs:         newAppInputs(),
			APISpecFile:       "/app/api-spec.yaml",
			ClientName:        "MyAPI",
			ConnectionName:    "my-org",
			ConnectedAppName:  "MyConnectedApp",
			PermissionSetName: "MyPermissionSet",
		}}
	}

	t.Run("should publish the api spec and watch until published", func(t *testing.T) {
		out, ui := newAutoConfirmUI()
		profile := mock.NewProfile(t)
		assert.Nil(t, afero.WriteFile(profile.Fs(), "/app/api-spec.yaml", []byte(testAPISpec), 0644))

		var capturedConnection string
		var capturedReq applink.AppPublishRequest
		statuses := []operation.Status{applink.AppPublishStatusPublishing, applink.AppPublishStatusPublished}
		var fetches int
		client := mock.AppLinkClient{
			CreateAppPublishFn: func(ctx context.Context, connectionName string, req applink.AppPublishRequest) (applink.AppPublish, error) {
				capturedConnection = connectionName
				capturedReq = req
				return applink.AppPublish{ID: "publish-1", Status: applink.AppPublishStatusPending}, nil
			},
			AppPublishFn: func(ctx context.Context, connectionName, id string) (applink.AppPublish, error) {
				assert.Equal(t, "my-org", connectionName)
				assert.Equal(t, "publish-1", id)
				status := statuses[fetches]
				fetches++
				return applink.AppPublish{ID: id, Status: status}, nil
			},
		}

		assert.Nil(t, newCommand().Handler(context.Background(), profile, ui, newTestClients(t, client)))
		assert.Equal(t, "my-org", capturedConnection)
		assert.Equal(t, applink.AppPublishRequest{
			ClientName:                     "MyAPI",
			APISpec:                        applink.APISpec{Format: applink.APISpecFormatYAML, Filename: "api-spec.yaml", Content: testAPISpec},
			AuthorizationConnectedAppName:  "MyConnectedApp",
			AuthorizationPermissionSetName: "MyPermissionSet",
		}, capturedReq)
		assert.Equal(t, 2, fetches)
		assert.Equal(t, "Publishing MyAPI to my-org... Published\n", out.String())
	})

	t.Run("should reject an unsupported api spec before calling the add-on", func(t *testing.T) {
		_, ui := newAutoConfirmUI()

		cmd := newCommand()
		cmd.inputs.APISpecFile = "/app/api-spec.txt"

		err := cmd.Handler(context.Background(), mock.NewProfile(t), ui, cli.Clients{})
		assert.Equal(t, applink.ErrUnsupportedAPISpec{Path: "/app/api-spec.txt"}, err)
	})

	t.Run("should explain a missing connection", func(t *testing.T) {
		_, ui := newAutoConfirmUI()
		profile := mock.NewProfile(t)
		assert.Nil(t, afero.WriteFile(profile.Fs(), "/app/api-spec.yaml", []byte(testAPISpec), 0644))

		client := mock.AppLinkClient{
			CreateAppPublishFn: func(ctx context.Context, connectionName string, req applink.AppPublishRequest) (applink.AppPublish, error) {
				return applink.AppPublish{}, api.ServerError{StatusCode: http.StatusNotFound, ID: api.ErrIDNotFound}
			},
		}

		err := newCommand().Handler(context.Background(), profile, ui, newTestClients(t, client))
		assert.Equal(t, "Connection my-org doesn't exist on app my-app.", err.Error())
	})

	t.Run("should fail with the publish error", func(t *testing.T) {
		out, ui := newAutoConfirmUI()
		profile := mock.NewProfile(t)
		assert.Nil(t, afero.WriteFile(profile.Fs(), "/app/api-spec.yaml", []byte(testAPISpec), 0644))

		client := mock.AppLinkClient{
			CreateAppPublishFn: func(ctx context.Context, connectionName string, req applink.AppPublishRequest) (applink.AppPublish, error) {
				return applink.AppPublish{ID: "publish-1", Status: applink.AppPublishStatusPending}, nil
			},
			AppPublishFn: func(ctx context.Context, connectionName, id string) (applink.AppPublish, error) {
				return applink.AppPublish{
					ID:     id,
					Status: applink.AppPublishStatusPublishFailed,
					Error:  &operation.Error{ID: "invalid_api_spec", Message: "The API spec is invalid."},
				}, nil
			},
		}

		err := newCommand().Handler(context.Background(), profile, ui, newTestClients(t, client))
		assert.Equal(t, "invalid_api_spec\nThe API spec is invalid.", err.Error())
		assert.Equal(t, "Publishing MyAPI to my-org... Publish Failed\n", out.String())
	})
}

func TestImportHandler(t *testing.T) {
	out, ui := newAutoConfirmUI()
	profile := mock.NewProfile(t)
	assert.Nil(t, afero.WriteFile(profile.Fs(), "/app/api-spec.json", []byte(`{"openapi":"3.0.0"}`), 0644))

	client := mock.AppLinkClient{
		CreateAppImportFn: func(ctx context.Context, connectionName string, req applink.AppImportRequest) (applink.AppImport, error) {
			assert.Equal(t, "my-org", connectionName)
			assert.Equal(t, applink.APISpec{Format: applink.APISpecFormatJSON, Filename: "api-spec.json", Content: `{"openapi":"3.0.0"}`}, req.APISpec)
			return applink.AppImport{ID: "import-1", Status: applink.AppImportStatusImporting}, nil
		},
		AppImportFn: func(ctx context.Context, connectionName, id string) (applink.AppImport, error) {
			return applink.AppImport{ID: id, Status: applink.AppImportStatusImported}, nil
		},
	}

	cmd := &CommandImport{importInputs{
		AppInputs:      newAppInputs(),
		APISpecFile:    "/app/api-spec.json",
		ClientName:     "MyAPI",
		ConnectionName: "my-org",
	}}
	assert.Nil(t, cmd.Handler(context.Background(), profile, ui, newTestClients(t, client)))
	assert.Equal(t, "Importing MyAPI into my-org... Imported\n", out.String())
}
