package datacloud

import (
	"context"
	"fmt"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"

	"github.com/MakeNowJust/heredoc"
)

// CommandMetaDataActionTargetCreate is the command meta for the `datacloud:data-action-target:create` command
var CommandMetaDataActionTargetCreate = cli.CommandMeta{
	Use:         "create <label>",
	Display:     "datacloud:data-action-target:create",
	Description: "Create a Data Cloud data action target that sends data actions to your app",
	HelpText:    "The API name defaults to the label with every character other than letters, digits and underscores replaced.",
	Example: heredoc.Doc(`
		$ heroku-applink datacloud:data-action-target:create "My Target" -a my-app \
		    --target-api-path /handle-data-action --connection-name my-dc-org`),
}

// CommandDataActionTargetCreate is the `datacloud:data-action-target:create` command
type CommandDataActionTargetCreate struct {
	inputs dataActionTargetCreateInputs
}

type dataActionTargetCreateInputs struct {
	cli.AppInputs
	Label          string
	APIName        string
	TargetAPIPath  string
	ConnectionName string
}

// Flags is the command flags
func (cmd *CommandDataActionTargetCreate) Flags() []flags.Flag {
	return append(cmd.inputs.AppInputs.Flags(),
		flags.StringFlag{
			Value: &cmd.inputs.APIName,
			Meta: flags.Meta{
				Name: FlagAPIName,
				Usage: flags.Usage{
					Description: "Specify the API name of the data action target",
				},
			},
		},
		flags.StringFlag{
			Value: &cmd.inputs.TargetAPIPath,
			Meta: flags.Meta{
				Name: FlagTargetAPIPath,
				Usage: flags.Usage{
					Description: "Specify the path of the app endpoint receiving the data actions",
				},
				Required: true,
			},
		},
		cli.ConnectionNameFlag(&cmd.inputs.ConnectionName, "Specify the name of the Data Cloud org connection"),
	)
}

// Args is the command args
func (cmd *CommandDataActionTargetCreate) Args(args []string) error {
	return shared.RequiredArg(args, "label", &cmd.inputs.Label)
}

// Inputs is the command inputs
func (cmd *CommandDataActionTargetCreate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandDataActionTargetCreate) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	apiName := cmd.inputs.APIName
	if apiName == "" {
		apiName = apiNameFromLabel(cmd.inputs.Label)
	}
	if apiName == "" {
		return cli.New(fmt.Sprintf("Can't derive an API name from the label %q. Specify one with --%s.", cmd.inputs.Label, FlagAPIName))
	}

	client, attachment, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}
	connectionName := cmd.inputs.ConnectionName

	target, err := client.CreateDataActionTarget(ctx, connectionName, applink.DataActionTargetRequest{
		Label:         cmd.inputs.Label,
		APIName:       apiName,
		TargetAPIPath: cmd.inputs.TargetAPIPath,
	})
	if err != nil {
		return shared.NotFound(err, "Connection", connectionName, attachment.App, shared.ListConnectionsCommand)
	}

	_, err = shared.Watch(ctx, profile, ui, "Creating data action target "+apiName, target,
		func(ctx context.Context) (applink.DataActionTarget, error) {
			return client.DataActionTarget(ctx, connectionName, apiName)
		},
		applink.DataActionTargetPending,
		applink.DataActionTargetSuccess,
	)
	return err
}
