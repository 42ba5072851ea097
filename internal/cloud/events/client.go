package events

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heroku/applink-cli/internal/utils/api"

	"go.uber.org/zap"
)

const (
	addonPathPattern = "/addons/%s"
)

// Client is a Heroku Events add-on api client
type Client interface {
	Authorizations(ctx context.Context) ([]Authorization, error)
	Authorization(ctx context.Context, name string) (Authorization, error)
	CreateSalesforceAuthorization(ctx context.Context, req AuthorizationRequest) (Authorization, error)
	DeleteAuthorization(ctx context.Context, name string) error

	Publications(ctx context.Context) ([]Publication, error)
	Publication(ctx context.Context, name string) (Publication, error)
	CreatePublication(ctx context.Context, req PublicationRequest) (Publication, error)
	DeletePublication(ctx context.Context, name string) error

	Subscriptions(ctx context.Context) ([]Subscription, error)
	Subscription(ctx context.Context, name string) (Subscription, error)
	CreateSubscription(ctx context.Context, req SubscriptionRequest) (Subscription, error)
	DeleteSubscription(ctx context.Context, name string) error
}

// ClientOptions configure the Heroku Events add-on api client
type ClientOptions struct {
	BaseURL   string
	AddonID   string
	Token     string
	UserAgent string
	Logger    *zap.Logger
}

// NewClient creates a new Heroku Events add-on api client
func NewClient(opts ClientOptions) Client {
	return &client{
		api: api.NewClient(api.ClientOptions{
			BaseURL:   opts.BaseURL,
			Token:     opts.Token,
			UserAgent: opts.UserAgent,
			Logger:    opts.Logger,
		}),
		addonPath: fmt.Sprintf(addonPathPattern, api.PathEscape(opts.AddonID)),
	}
}

type client struct {
	api       *api.Client
	addonPath string
}

func (c *client) path(collection string, name ...string) string {
	path := c.addonPath + collection
	for _, segment := range name {
		path += "/" + api.PathEscape(segment)
	}
	return path
}

func (c *client) get(ctx context.Context, path string, v interface{}) error {
	res, err := c.api.Do(ctx, http.MethodGet, path, api.RequestOptions{})
	if err != nil {
		return err
	}
	if err := api.CheckStatus(res, http.StatusOK); err != nil {
		return err
	}
	return api.DecodeJSON(res, v)
}

func (c *client) create(ctx context.Context, path string, payload, v interface{}) error {
	res, err := c.api.DoJSON(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}
	if err := api.CheckStatus(res, http.StatusOK, http.StatusCreated, http.StatusAccepted); err != nil {
		return err
	}
	return api.DecodeJSON(res, v)
}

func (c *client) delete(ctx context.Context, path string) error {
	res, err := c.api.Do(ctx, http.MethodDelete, path, api.RequestOptions{})
	if err != nil {
		return err
	}
	if err := api.CheckStatus(res, http.StatusOK, http.StatusAccepted, http.StatusNoContent); err != nil {
		return err
	}
	res.Body.Close()
	return nil
}
