package events

import (
	"context"
	"time"

	"github.com/heroku/applink-cli/internal/operation"
)

const (
	authorizationsPath           = "/authorizations"
	salesforceAuthorizationsPath = authorizationsPath + "/salesforce"
)

// set of known authorization statuses
const (
	AuthorizationStatusPending     operation.Status = "pending"
	AuthorizationStatusAuthorizing operation.Status = "authorizing"
	AuthorizationStatusAuthorized  operation.Status = "authorized"
	AuthorizationStatusFailed      operation.Status = "failed"
)

var (
	// AuthorizationPending are the statuses of an authorization still being granted
	AuthorizationPending = operation.NewStatusSet(AuthorizationStatusPending, AuthorizationStatusAuthorizing)

	// AuthorizationSuccess are the statuses of a granted authorization
	AuthorizationSuccess = operation.NewStatusSet(AuthorizationStatusAuthorized)
)

// Authorization is an org credential the events add-on publishes and subscribes with
type Authorization struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Platform    string           `json:"platform"`
	Status      operation.Status `json:"status"`
	Error       *operation.Error `json:"error,omitempty"`
	RedirectURI string           `json:"redirect_uri,omitempty"`
	InstanceURL string           `json:"instance_url,omitempty"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
}

// OperationStatus returns the authorization status
func (a Authorization) OperationStatus() operation.Status { return a.Status }

// OperationError returns the authorization error
func (a Authorization) OperationError() *operation.Error { return a.Error }

// AuthorizationRequest is the payload to authorize an org through the browser
type AuthorizationRequest struct {
	Name     string `json:"name"`
	LoginURL string `json:"login_url,omitempty"`
}

func (c *client) Authorizations(ctx context.Context) ([]Authorization, error) {
	var authorizations []Authorization
	if err := c.get(ctx, c.path(authorizationsPath), &authorizations); err != nil {
		return nil, err
	}
	return authorizations, nil
}

func (c *client) Authorization(ctx context.Context, name string) (Authorization, error) {
	var authorization Authorization
	if err := c.get(ctx, c.path(authorizationsPath, name), &authorization); err != nil {
		return Authorization{}, err
	}
	return authorization, nil
}

func (c *client) CreateSalesforceAuthorization(ctx context.Context, req AuthorizationRequest) (Authorization, error) {
	var authorization Authorization
	if err := c.create(ctx, c.path(salesforceAuthorizationsPath), req, &authorization); err != nil {
		return Authorization{}, err
	}
	return authorization, nil
}

func (c *client) DeleteAuthorization(ctx context.Context, name string) error {
	return c.delete(ctx, c.path(authorizationsPath, name))
}
