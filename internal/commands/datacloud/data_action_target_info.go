package datacloud

import (
	"context"
	"fmt"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/api"
	"github.com/heroku/applink-cli/internal/utils/flags"

	"github.com/MakeNowJust/heredoc"
)

// CommandMetaDataActionTargetInfo is the command meta for the `datacloud:data-action-target:info` command
var CommandMetaDataActionTargetInfo = cli.CommandMeta{
	Use:         "info <api_name>",
	Display:     "datacloud:data-action-target:info",
	Description: "Show info for a Data Cloud data action target",
	Example: heredoc.Doc(`
		$ heroku-applink datacloud:data-action-target:info My_Target -a my-app --connection-name my-dc-org`),
}

// CommandDataActionTargetInfo is the `datacloud:data-action-target:info` command
type CommandDataActionTargetInfo struct {
	inputs dataActionTargetInfoInputs
}

type dataActionTargetInfoInputs struct {
	cli.AppInputs
	APIName        string
	ConnectionName string
}

// Flags is the command flags
func (cmd *CommandDataActionTargetInfo) Flags() []flags.Flag {
	return append(cmd.inputs.AppInputs.Flags(),
		cli.ConnectionNameFlag(&cmd.inputs.ConnectionName, "Specify the name of the Data Cloud org connection"),
	)
}

// Args is the command args
func (cmd *CommandDataActionTargetInfo) Args(args []string) error {
	return shared.RequiredArg(args, "api_name", &cmd.inputs.APIName)
}

// Inputs is the command inputs
func (cmd *CommandDataActionTargetInfo) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandDataActionTargetInfo) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, attachment, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	target, err := client.DataActionTarget(ctx, cmd.inputs.ConnectionName, cmd.inputs.APIName)
	if err != nil {
		if api.IsNotFound(err) {
			return cli.NewWrapped(
				fmt.Sprintf("Data action target %s doesn't exist on connection %s.", cmd.inputs.APIName, cmd.inputs.ConnectionName),
				err,
			).WithSuggestions(fmt.Sprintf("%s %s -a %s", cli.Name, shared.ListConnectionsCommand, attachment.App))
		}
		return err
	}

	ui.Print(terminal.NewObjectLog("Data action target "+target.APIName, dataActionTargetFields(target)))
	return nil
}
