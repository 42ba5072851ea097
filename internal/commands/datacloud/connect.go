package datacloud

import (
	"context"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"

	"github.com/MakeNowJust/heredoc"
)

// CommandMetaConnect is the command meta for the `datacloud:connect` command
var CommandMetaConnect = cli.CommandMeta{
	Use:         "connect <connection_name>",
	Display:     "datacloud:connect",
	Description: "Connect a Data Cloud org to your Heroku app",
	HelpText: heredoc.Doc(`
		Opens the Salesforce login page in your browser. Once you log in
		and allow access, the command waits until the Data Cloud org is connected.`),
	Example: heredoc.Doc(`
		$ heroku-applink datacloud:connect my-dc-org -a my-app`),
}

// CommandConnect is the `datacloud:connect` command
type CommandConnect struct {
	inputs shared.OrgInputs
}

// Flags is the command flags
func (cmd *CommandConnect) Flags() []flags.Flag {
	return cmd.inputs.Flags()
}

// Args is the command args
func (cmd *CommandConnect) Args(args []string) error {
	return shared.RequiredArg(args, "connection_name", &cmd.inputs.Name)
}

// Inputs is the command inputs
func (cmd *CommandConnect) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandConnect) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, _, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	_, err = shared.ConnectOrg(ctx, profile, ui, client, cmd.inputs, client.CreateDataCloudConnection)
	return err
}
