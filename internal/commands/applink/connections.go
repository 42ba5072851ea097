package applink

import (
	"context"
	"fmt"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/operation"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"

	"github.com/MakeNowJust/heredoc"
)

// CommandMetaConnections is the command meta for the `applink:connections` command
var CommandMetaConnections = cli.CommandMeta{
	Use:         "connections",
	Display:     "applink:connections",
	Description: "List Heroku AppLink connections",
	HelpText:    "Lists the Salesforce and Data Cloud org connections of the app's Heroku AppLink add-on.",
	Example: heredoc.Doc(`
		$ heroku-applink applink:connections -a my-app`),
}

// CommandConnections is the `applink:connections` command
type CommandConnections struct {
	inputs cli.AppInputs
}

// Flags is the command flags
func (cmd *CommandConnections) Flags() []flags.Flag {
	return cmd.inputs.Flags()
}

// Inputs is the command inputs
func (cmd *CommandConnections) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandConnections) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, attachment, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs)
	if err != nil {
		return err
	}

	connections, err := client.Connections(ctx)
	if err != nil {
		return err
	}

	if len(connections) == 0 {
		ui.Print(terminal.NewTextLog("No Heroku AppLink connections for app %s.", attachment.App))
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(connections))
	for _, connection := range connections {
		rows = append(rows, map[string]interface{}{
			headerAddon:          attachment.AddonName,
			headerType:           OrgType(connection.Type),
			headerConnectionName: connection.Name(),
			headerStatus:         operation.Humanize(connection.Status),
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Heroku AppLink connections for app %s", attachment.App),
		[]string{headerAddon, headerType, headerConnectionName, headerStatus},
		rows...,
	))
	return nil
}
