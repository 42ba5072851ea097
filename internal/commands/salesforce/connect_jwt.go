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

// CommandMetaConnectJWT is the command meta for the `salesforce:connect:jwt` command
var CommandMetaConnectJWT = cli.CommandMeta{
	Use:         "jwt <connection_name>",
	Display:     "salesforce:connect:jwt",
	Description: "Connect a Salesforce org using the JWT bearer flow of a connected app",
	Example: heredoc.Doc(`
		$ heroku-applink salesforce:connect:jwt my-org -a my-app \
		    --client-id 3MVG9... --jwt-key-file server.key --username admin@example.com`),
}

// CommandConnectJWT is the `salesforce:connect:jwt` command
type CommandConnectJWT struct {
	inputs shared.JWTOrgInputs
}

// Flags is the command flags
func (cmd *CommandConnectJWT) Flags() []flags.Flag {
	return cmd.inputs.Flags()
}

// Args is the command args
func (cmd *CommandConnectJWT) Args(args []string) error {
	return shared.RequiredArg(args, "connection_name", &cmd.inputs.Name)
}

// Inputs is the command inputs
func (cmd *CommandConnectJWT) Inputs() cli.InputResolver {
	return &cmd.inputs.AppInputs
}

// Handler is the command handler
func (cmd *CommandConnectJWT) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	key, err := shared.ReadJWTKey(profile.Fs(), cmd.inputs.JWTKeyFile)
	if err != nil {
		return err
	}

	client, _, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	connection, err := client.CreateSalesforceJWTConnection(ctx, applink.JWTOrgRequest{
		ConnectionName: cmd.inputs.Name,
		ClientID:       cmd.inputs.ClientID,
		JWTPrivateKey:  key,
		Username:       cmd.inputs.Username,
		LoginURL:       cmd.inputs.LoginURL,
	})
	if err != nil {
		return err
	}

	_, err = shared.WatchConnection(ctx, profile, ui, client, cmd.inputs.Name, connection)
	return err
}
