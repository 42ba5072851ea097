package applink

import (
	"context"
	"net/http"

	"github.com/heroku/applink-cli/internal/operation"
)

const (
	appPublishesPathPattern = connectionPathPattern + "/app_publishes"
	appPublishPathPattern   = appPublishesPathPattern + "/%s"
)

// set of known app publish statuses
const (
	AppPublishStatusPending       operation.Status = "pending"
	AppPublishStatusPublishing    operation.Status = "publishing"
	AppPublishStatusPublished     operation.Status = "published"
	AppPublishStatusPublishFailed operation.Status = "publish_failed"
)

var (
	// AppPublishPending are the statuses of an app publish in progress
	AppPublishPending = operation.NewStatusSet(AppPublishStatusPending, AppPublishStatusPublishing)

	// AppPublishSuccess are the statuses of a completed app publish
	AppPublishSuccess = operation.NewStatusSet(AppPublishStatusPublished)
)

// APISpec is an OpenAPI document describing the app's api
type APISpec struct {
	Format   string `json:"format"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// AppPublish is a request to publish the app's api to an org
type AppPublish struct {
	ID             string           `json:"id"`
	Status         operation.Status `json:"status"`
	Error          *operation.Error `json:"error,omitempty"`
	ClientName     string           `json:"client_name"`
	ConnectionName string           `json:"connection_name"`
}

// OperationStatus returns the app publish status
func (ap AppPublish) OperationStatus() operation.Status { return ap.Status }

// OperationError returns the app publish error
func (ap AppPublish) OperationError() *operation.Error { return ap.Error }

// AppPublishRequest is the payload to publish the app's api to an org
type AppPublishRequest struct {
	ClientName                     string  `json:"client_name"`
	APISpec                        APISpec `json:"api_spec"`
	AuthorizationConnectedAppName  string  `json:"authorization_connected_app_name,omitempty"`
	AuthorizationPermissionSetName string  `json:"authorization_permission_set_name,omitempty"`
}

func (c *client) CreateAppPublish(ctx context.Context, connectionName string, req AppPublishRequest) (AppPublish, error) {
	var appPublish AppPublish
	if err := c.sendJSON(ctx, http.MethodPost, c.path(appPublishesPathPattern, connectionName), req, &appPublish); err != nil {
		return AppPublish{}, err
	}
	return appPublish, nil
}

func (c *client) AppPublish(ctx context.Context, connectionName, id string) (AppPublish, error) {
	var appPublish AppPublish
	if err := c.getJSON(ctx, c.path(appPublishPathPattern, connectionName, id), &appPublish); err != nil {
		return AppPublish{}, err
	}
	return appPublish, nil
}
