package applink

import (
	"context"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"

	"github.com/MakeNowJust/heredoc"
)

// CommandMetaConnectionsInfo is the command meta for the `applink:connections:info` command
var CommandMetaConnectionsInfo = cli.CommandMeta{
	Use:         "info <connection_name>",
	Display:     "applink:connections:info",
	Description: "Show info for a Heroku AppLink connection",
	Example: heredoc.Doc(`
		$ heroku-applink applink:connections:info my-org -a my-app`),
}

// CommandConnectionsInfo is the `applink:connections:info` command
type CommandConnectionsInfo struct {
	inputs connectionInputs
}

type connectionInputs struct {
	cli.AppInputs
	ConnectionName string
}

// Flags is the command flags
func (cmd *CommandConnectionsInfo) Flags() []flags.Flag {
	return cmd.inputs.AppInputs.Flags()
}

// Args is the command args
func (cmd *CommandConnectionsInfo) Args(args []string) error {
	return shared.RequiredArg(args, "connection_name", &cmd.inputs.ConnectionName)
}

// Inputs is the command inputs
func (cmd *CommandConnectionsInfo) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandConnectionsInfo) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, attachment, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	connection, err := client.Connection(ctx, cmd.inputs.ConnectionName)
	if err != nil {
		return shared.NotFound(err, "Connection", cmd.inputs.ConnectionName, attachment.App, CommandMetaConnections.Display)
	}

	ui.Print(terminal.NewObjectLog(
		"Heroku AppLink connection "+connection.Name(),
		connectionFields(attachment.AddonName, connection),
	))
	return nil
}
