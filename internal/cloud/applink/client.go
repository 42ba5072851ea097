package applink

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heroku/applink-cli/internal/utils/api"

	"go.uber.org/zap"
)

const (
	addonPathPattern = "/addons/%s"

	headerAppUUID = "X-App-Uuid"
)

// Client is a Heroku AppLink add-on api client
type Client interface {
	Connections(ctx context.Context) ([]Connection, error)
	Connection(ctx context.Context, name string) (Connection, error)
	DeleteConnection(ctx context.Context, name string) (Connection, error)
	CreateSalesforceConnection(ctx context.Context, req OrgRequest) (Connection, error)
	CreateSalesforceJWTConnection(ctx context.Context, req JWTOrgRequest) (Connection, error)
	CreateDataCloudConnection(ctx context.Context, req OrgRequest) (Connection, error)

	Authorizations(ctx context.Context) ([]Authorization, error)
	Authorization(ctx context.Context, developerName string) (Authorization, error)
	DeleteAuthorization(ctx context.Context, developerName string) (Authorization, error)
	CreateSalesforceAuthorization(ctx context.Context, req AuthorizationRequest) (Authorization, error)
	CreateSalesforceJWTAuthorization(ctx context.Context, req JWTAuthorizationRequest) (Authorization, error)
	CreateDataCloudJWTAuthorization(ctx context.Context, req JWTAuthorizationRequest) (Authorization, error)

	CreateAppPublish(ctx context.Context, connectionName string, req AppPublishRequest) (AppPublish, error)
	AppPublish(ctx context.Context, connectionName, id string) (AppPublish, error)
	Publications(ctx context.Context, connectionName string) ([]Publication, error)

	CreateAppImport(ctx context.Context, connectionName string, req AppImportRequest) (AppImport, error)
	AppImport(ctx context.Context, connectionName, id string) (AppImport, error)

	CreateDataActionTarget(ctx context.Context, connectionName string, req DataActionTargetRequest) (DataActionTarget, error)
	DataActionTarget(ctx context.Context, connectionName, apiName string) (DataActionTarget, error)
}

// ClientOptions configure the Heroku AppLink add-on api client
type ClientOptions struct {
	BaseURL   string
	AddonID   string
	AppID     string
	Token     string
	UserAgent string
	Logger    *zap.Logger
}

// NewClient creates a new Heroku AppLink add-on api client
func NewClient(opts ClientOptions) Client {
	header := http.Header{}
	if opts.AppID != "" {
		header.Set(headerAppUUID, opts.AppID)
	}

	return &client{
		api: api.NewClient(api.ClientOptions{
			BaseURL:   opts.BaseURL,
			Token:     opts.Token,
			UserAgent: opts.UserAgent,
			Header:    header,
			Logger:    opts.Logger,
		}),
		addonPath: fmt.Sprintf(addonPathPattern, api.PathEscape(opts.AddonID)),
	}
}

type client struct {
	api       *api.Client
	addonPath string
}

func (c *client) path(format string, args ...interface{}) string {
	escaped := make([]interface{}, len(args))
	for i, arg := range args {
		escaped[i] = api.PathEscape(fmt.Sprint(arg))
	}
	return c.addonPath + fmt.Sprintf(format, escaped...)
}

func (c *client) getJSON(ctx context.Context, path string, v interface{}) error {
	res, err := c.api.Do(ctx, http.MethodGet, path, api.RequestOptions{})
	if err != nil {
		return err
	}
	if err := api.CheckStatus(res, http.StatusOK); err != nil {
		return err
	}
	return api.DecodeJSON(res, v)
}

func (c *client) sendJSON(ctx context.Context, method, path string, payload, v interface{}) error {
	res, err := c.api.DoJSON(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if err := api.CheckStatus(res, http.StatusOK, http.StatusCreated, http.StatusAccepted); err != nil {
		return err
	}
	return api.DecodeJSON(res, v)
}

// delete leaves v untouched when the response has no body
func (c *client) delete(ctx context.Context, path string, v interface{}) error {
	res, err := c.api.Do(ctx, http.MethodDelete, path, api.RequestOptions{})
	if err != nil {
		return err
	}
	if err := api.CheckStatus(res, http.StatusOK, http.StatusAccepted, http.StatusNoContent); err != nil {
		return err
	}
	return api.DecodeOptionalJSON(res, v)
}
