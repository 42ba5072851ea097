package salesforce

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

// CommandMetaPublish is the command meta for the `salesforce:publish` command
var CommandMetaPublish = cli.CommandMeta{
	Use:         "publish <api_spec_file>",
	Display:     "salesforce:publish",
	Description: "Publish your app's API to a connected Salesforce org",
	HelpText: heredoc.Doc(`
		Publishes the OpenAPI document of your app as an external service
		of the org. The org must already be connected with salesforce:connect.`),
	Example: heredoc.Doc(`
		$ heroku-applink salesforce:publish api-spec.yaml -a my-app --client-name MyAPI --connection-name my-org`),
}

// CommandPublish is the `salesforce:publish` command
type CommandPublish struct {
	inputs publishInputs
}

type publishInputs struct {
	cli.AppInputs
	APISpecFile       string
	ClientName        string
	ConnectionName    string
	ConnectedAppName  string
	PermissionSetName string
}

// Flags is the command flags
func (cmd *CommandPublish) Flags() []flags.Flag {
	return append(cmd.inputs.AppInputs.Flags(),
		clientNameFlag(&cmd.inputs.ClientName),
		cli.ConnectionNameFlag(&cmd.inputs.ConnectionName, "Specify the name of the Salesforce org connection to publish to"),
		flags.StringFlag{
			Value: &cmd.inputs.ConnectedAppName,
			Meta: flags.Meta{
				Name: FlagAuthorizationConnectedAppName,
				Usage: flags.Usage{
					Description: "Specify the name of the connected app created in the org for the API",
				},
			},
		},
		flags.StringFlag{
			Value: &cmd.inputs.PermissionSetName,
			Meta: flags.Meta{
				Name: FlagAuthorizationPermissionSet,
				Usage: flags.Usage{
					Description: "Specify the name of the permission set created in the org for the API",
				},
			},
		},
	)
}

// Args is the command args
func (cmd *CommandPublish) Args(args []string) error {
	return shared.RequiredArg(args, "api_spec_file", &cmd.inputs.APISpecFile)
}

// Inputs is the command inputs
func (cmd *CommandPublish) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandPublish) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	spec, err := applink.ReadAPISpec(profile.Fs(), cmd.inputs.APISpecFile)
	if err != nil {
		return err
	}

	client, attachment, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	connectionName := cmd.inputs.ConnectionName

	publish, err := client.CreateAppPublish(ctx, connectionName, applink.AppPublishRequest{
		ClientName:                     cmd.inputs.ClientName,
		APISpec:                        spec,
		AuthorizationConnectedAppName:  cmd.inputs.ConnectedAppName,
		AuthorizationPermissionSetName: cmd.inputs.PermissionSetName,
	})
	if err != nil {
		return shared.NotFound(err, "Connection", connectionName, attachment.App, shared.ListConnectionsCommand)
	}

	_, err = shared.Watch(ctx, profile, ui,
		fmt.Sprintf("Publishing %s to %s", cmd.inputs.ClientName, connectionName),
		publish,
		func(ctx context.Context) (applink.AppPublish, error) {
			return client.AppPublish(ctx, connectionName, publish.ID)
		},
		applink.AppPublishPending,
		applink.AppPublishSuccess,
	)
	return err
}
