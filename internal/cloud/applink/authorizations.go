package applink

import (
	"context"
	"net/http"
	"time"

	"github.com/heroku/applink-cli/internal/operation"
)

const (
	authorizationsPath              = "/authorizations"
	authorizationPathPattern        = authorizationsPath + "/%s"
	salesforceAuthorizationsPath    = authorizationsPath + "/salesforce"
	salesforceJWTAuthorizationsPath = salesforceAuthorizationsPath + "/jwt"
	dataCloudJWTAuthorizationsPath  = authorizationsPath + "/datacloud/jwt"
)

// set of known authorization statuses
const (
	AuthorizationStatusPending             operation.Status = "pending"
	AuthorizationStatusAuthorizing         operation.Status = "authorizing"
	AuthorizationStatusAuthorized          operation.Status = "authorized"
	AuthorizationStatusAuthorizationFailed operation.Status = "authorization_failed"
	AuthorizationStatusDisconnected        operation.Status = "disconnected"
)

var (
	// AuthorizationPending are the statuses of an authorization still being granted
	AuthorizationPending = operation.NewStatusSet(AuthorizationStatusPending, AuthorizationStatusAuthorizing)

	// AuthorizationSuccess are the statuses of a granted authorization
	AuthorizationSuccess = operation.NewStatusSet(AuthorizationStatusAuthorized)
)

// Authorization is a stored org credential the app can use at runtime
type Authorization struct {
	ID             string           `json:"id"`
	Status         operation.Status `json:"status"`
	Error          *operation.Error `json:"error,omitempty"`
	RedirectURI    string           `json:"redirect_uri,omitempty"`
	DeveloperName  string           `json:"developer_name"`
	Org            Org              `json:"org"`
	CreatedAt      *time.Time       `json:"created_at,omitempty"`
	CreatedBy      string           `json:"created_by,omitempty"`
	LastModifiedAt *time.Time       `json:"last_modified_at,omitempty"`
	LastModifiedBy string           `json:"last_modified_by,omitempty"`
}

// OperationStatus returns the authorization status
func (a Authorization) OperationStatus() operation.Status { return a.Status }

// OperationError returns the authorization error
func (a Authorization) OperationError() *operation.Error { return a.Error }

// AuthorizationRequest is the payload to authorize an org through the browser
type AuthorizationRequest struct {
	DeveloperName string `json:"developer_name"`
	LoginURL      string `json:"login_url,omitempty"`
}

// JWTAuthorizationRequest is the payload to authorize an org with a connected app JWT bearer flow
type JWTAuthorizationRequest struct {
	DeveloperName string `json:"developer_name"`
	ClientID      string `json:"client_id"`
	JWTPrivateKey string `json:"jwt_private_key"`
	Username      string `json:"username"`
	LoginURL      string `json:"login_url,omitempty"`
}

func (c *client) Authorizations(ctx context.Context) ([]Authorization, error) {
	var authorizations []Authorization
	if err := c.getJSON(ctx, c.path(authorizationsPath), &authorizations); err != nil {
		return nil, err
	}
	return authorizations, nil
}

func (c *client) Authorization(ctx context.Context, developerName string) (Authorization, error) {
	var authorization Authorization
	if err := c.getJSON(ctx, c.path(authorizationPathPattern, developerName), &authorization); err != nil {
		return Authorization{}, err
	}
	return authorization, nil
}

func (c *client) DeleteAuthorization(ctx context.Context, developerName string) (Authorization, error) {
	var authorization Authorization
	if err := c.delete(ctx, c.path(authorizationPathPattern, developerName), &authorization); err != nil {
		return Authorization{}, err
	}
	return authorization, nil
}

func (c *client) CreateSalesforceAuthorization(ctx context.Context, req AuthorizationRequest) (Authorization, error) {
	return c.createAuthorization(ctx, salesforceAuthorizationsPath, req)
}

func (c *client) CreateSalesforceJWTAuthorization(ctx context.Context, req JWTAuthorizationRequest) (Authorization, error) {
	return c.createAuthorization(ctx, salesforceJWTAuthorizationsPath, req)
}

func (c *client) CreateDataCloudJWTAuthorization(ctx context.Context, req JWTAuthorizationRequest) (Authorization, error) {
	return c.createAuthorization(ctx, dataCloudJWTAuthorizationsPath, req)
}

func (c *client) createAuthorization(ctx context.Context, path string, payload interface{}) (Authorization, error) {
	var authorization Authorization
	if err := c.sendJSON(ctx, http.MethodPost, c.path(path), payload, &authorization); err != nil {
		return Authorization{}, err
	}
	return authorization, nil
}
