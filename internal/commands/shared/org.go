package shared

import (
	"context"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"
)

// set of org login flags
const (
	FlagLoginURL = "login-url"
)

// set of list commands named by not found errors
const (
	ListConnectionsCommand    = "applink:connections"
	ListAuthorizationsCommand = "applink:authorizations"
)

// LoginURLFlag is the '--login-url' flag
func LoginURLFlag(value *string) flags.Flag {
	return flags.StringFlag{
		Value: value,
		Meta: flags.Meta{
			Name: FlagLoginURL,
			Usage: flags.Usage{
				Description: "Specify the Salesforce login URL",
				Note:        "defaults to https://login.salesforce.com",
			},
		},
	}
}

// OrgInputs are the inputs of the commands logging in to an org through the browser
type OrgInputs struct {
	cli.AppInputs
	Name     string
	LoginURL string
	Browser  string
}

// Flags returns the org login flags
func (i *OrgInputs) Flags() []flags.Flag {
	return append(i.AppInputs.Flags(),
		LoginURLFlag(&i.LoginURL),
		BrowserFlag(&i.Browser),
	)
}

// JWTOrgInputs are the inputs of the commands logging in to an org with a JWT bearer flow
type JWTOrgInputs struct {
	cli.AppInputs
	JWTInputs
	Name     string
	LoginURL string
}

// Flags returns the JWT org login flags
func (i *JWTOrgInputs) Flags() []flags.Flag {
	fs := append(i.AppInputs.Flags(), i.JWTInputs.Flags()...)
	return append(fs, LoginURLFlag(&i.LoginURL))
}

// ConnectOrg creates a connection, sends the user to its login url and watches it until the org is connected
func ConnectOrg(
	ctx context.Context,
	profile *user.Profile,
	ui terminal.UI,
	client applink.Client,
	inputs OrgInputs,
	create func(ctx context.Context, req applink.OrgRequest) (applink.Connection, error),
) (applink.Connection, error) {
	connection, err := create(ctx, applink.OrgRequest{ConnectionName: inputs.Name, LoginURL: inputs.LoginURL})
	if err != nil {
		return applink.Connection{}, err
	}

	if connection.RedirectURI != "" {
		if err := OpenBrowser(ui, connection.RedirectURI, inputs.Browser); err != nil {
			return connection, err
		}
	}

	return WatchConnection(ctx, profile, ui, client, inputs.Name, connection)
}

// WatchConnection watches the connection until the org is connected
func WatchConnection(
	ctx context.Context,
	profile *user.Profile,
	ui terminal.UI,
	client applink.Client,
	name string,
	connection applink.Connection,
) (applink.Connection, error) {
	return Watch(ctx, profile, ui, "Connecting "+name, connection,
		func(ctx context.Context) (applink.Connection, error) {
			return client.Connection(ctx, name)
		},
		applink.ConnectionPending,
		applink.ConnectionSuccess,
	)
}

// AuthorizeOrg creates an authorization, sends the user to its login url and watches it until the org is authorized
func AuthorizeOrg(
	ctx context.Context,
	profile *user.Profile,
	ui terminal.UI,
	client applink.Client,
	inputs OrgInputs,
) (applink.Authorization, error) {
	authorization, err := client.CreateSalesforceAuthorization(ctx, applink.AuthorizationRequest{DeveloperName: inputs.Name, LoginURL: inputs.LoginURL})
	if err != nil {
		return applink.Authorization{}, err
	}

	if authorization.RedirectURI != "" {
		if err := OpenBrowser(ui, authorization.RedirectURI, inputs.Browser); err != nil {
			return authorization, err
		}
	}

	return WatchAuthorization(ctx, profile, ui, client, inputs.Name, authorization)
}

// WatchAuthorization watches the authorization until the org is authorized
func WatchAuthorization(
	ctx context.Context,
	profile *user.Profile,
	ui terminal.UI,
	client applink.Client,
	developerName string,
	authorization applink.Authorization,
) (applink.Authorization, error) {
	return Watch(ctx, profile, ui, "Authorizing "+developerName, authorization,
		func(ctx context.Context) (applink.Authorization, error) {
			return client.Authorization(ctx, developerName)
		},
		applink.AuthorizationPending,
		applink.AuthorizationSuccess,
	)
}
