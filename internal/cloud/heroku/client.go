package heroku

import (
	"context"
	"net/http"

	"github.com/heroku/applink-cli/internal/utils/api"

	"go.uber.org/zap"
)

const (
	acceptHeaderValue = "application/vnd.heroku+json; version=3"
)

// Client is a Heroku Platform API client
type Client interface {
	Addons(ctx context.Context, app string) ([]Addon, error)
	ConfigVars(ctx context.Context, app string) (map[string]string, error)
}

// ClientOptions configure the Heroku Platform API client
type ClientOptions struct {
	BaseURL   string
	Token     string
	UserAgent string
	Logger    *zap.Logger
}

// NewClient creates a new Heroku Platform API client
func NewClient(opts ClientOptions) Client {
	return &client{api.NewClient(api.ClientOptions{
		BaseURL:   opts.BaseURL,
		Token:     opts.Token,
		UserAgent: opts.UserAgent,
		Accept:    acceptHeaderValue,
		Logger:    opts.Logger,
	})}
}

type client struct {
	api *api.Client
}

func (c *client) getJSON(ctx context.Context, path string, v interface{}) error {
	res, err := c.api.Do(ctx, http.MethodGet, path, api.RequestOptions{})
	if err != nil {
		return err
	}
	if err := api.CheckStatus(res, http.StatusOK, http.StatusPartialContent); err != nil {
		return err
	}
	return api.DecodeJSON(res, v)
}
