package salesforce

import (
	"context"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"

	"github.com/MakeNowJust/heredoc"
)

// CommandMetaAuthorizationsAddJWT is the command meta for the `salesforce:authorizations:add:jwt` command
var CommandMetaAuthorizationsAddJWT = cli.CommandMeta{
	Use:         "jwt <developer_name>",
	Display:     "salesforce:authorizations:add:jwt",
	Description: "Store the credentials of a Salesforce user using the JWT bearer flow of a connected app",
	Example: heredoc.Doc(`
		$ heroku-applink salesforce:authorizations:add:jwt MyAuth -a my-app \
		    --client-id 3MVG9... --jwt-key-file server.key --username admin@example.com`),
}

// CommandAuthorizationsAddJWT is the `salesforce:authorizations:add:jwt` command
type CommandAuthorizationsAddJWT struct {
	inputs shared.JWTOrgInputs
}

// Flags is the command flags
func (cmd *CommandAuthorizationsAddJWT) Flags() []flags.Flag {
	return cmd.inputs.Flags()
}

// Args is the command args
func (cmd *CommandAuthorizationsAddJWT) Args(args []string) error {
	return shared.RequiredArg(args, "developer_name", &cmd.inputs.Name)
}

// Inputs is the command inputs
func (cmd *CommandAuthorizationsAddJWT) Inputs() cli.InputResolver {
	return &cmd.inputs.AppInputs
}

// Handler is the command handler
func (cmd *CommandAuthorizationsAddJWT) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	key, err := shared.ReadJWTKey(profile.Fs(), cmd.inputs.JWTKeyFile)
	if err != nil {
		return err
	}

	client, _, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	authorization, err := client.CreateSalesforceJWTAuthorization(ctx, applink.JWTAuthorizationRequest{
		DeveloperName: cmd.inputs.Name,
		ClientID:      cmd.inputs.ClientID,
		JWTPrivateKey: key,
		Username:      cmd.inputs.Username,
		LoginURL:      cmd.inputs.LoginURL,
	})
	if err != nil {
		return err
	}

	_, err = shared.WatchAuthorization(ctx, profile, ui, client, cmd.inputs.Name, authorization)
	return err
}
