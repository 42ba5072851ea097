package applink

import (
	"context"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/operation"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"

	"github.com/MakeNowJust/heredoc"
)

// CommandMetaConnectionsDelete is the command meta for the `applink:connections:delete` command
var CommandMetaConnectionsDelete = cli.CommandMeta{
	Use:         "delete <connection_name>",
	Aliases:     []string{"destroy"},
	Display:     "applink:connections:delete",
	Description: "Delete a Heroku AppLink connection",
	HelpText:    "Disconnects the org from the app. Pass the connection name to --confirm to skip the confirmation prompt.",
	Example: heredoc.Doc(`
		$ heroku-applink applink:connections:delete my-org -a my-app
		$ heroku-applink applink:connections:delete my-org -a my-app --confirm my-org`),
}

// CommandConnectionsDelete is the `applink:connections:delete` command
type CommandConnectionsDelete struct {
	inputs connectionDeleteInputs
}

type connectionDeleteInputs struct {
	connectionInputs
	Confirm string
}

// Flags is the command flags
func (cmd *CommandConnectionsDelete) Flags() []flags.Flag {
	return append(cmd.inputs.AppInputs.Flags(), cli.ConfirmFlag(&cmd.inputs.Confirm))
}

// Args is the command args
func (cmd *CommandConnectionsDelete) Args(args []string) error {
	return shared.RequiredArg(args, "connection_name", &cmd.inputs.ConnectionName)
}

// Inputs is the command inputs
func (cmd *CommandConnectionsDelete) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandConnectionsDelete) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, attachment, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	if err := shared.ConfirmDestructive(ui, "disconnect", cmd.inputs.ConnectionName, cmd.inputs.Confirm); err != nil {
		return err
	}

	action := ui.StartAction("Disconnecting " + cmd.inputs.ConnectionName)

	connection, err := client.DeleteConnection(ctx, cmd.inputs.ConnectionName)
	if err != nil {
		action.Stop("!")
		return shared.NotFound(err, "Connection", cmd.inputs.ConnectionName, attachment.App, CommandMetaConnections.Display)
	}

	action.Stop(deletedStatus(connection.Status))
	return nil
}

func deletedStatus(status operation.Status) string {
	if status == "" {
		return "done"
	}
	return operation.Humanize(status)
}
