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

// CommandMetaImport is the command meta for the `salesforce:import` command
var CommandMetaImport = cli.CommandMeta{
	Use:         "import <api_spec_file>",
	Display:     "salesforce:import",
	Description: "Import your app's API into a connected Salesforce org",
	Example: heredoc.Doc(`
		$ heroku-applink salesforce:import api-spec.json -a my-app --client-name MyAPI --connection-name my-org`),
}

// CommandImport is the `salesforce:import` command
type CommandImport struct {
	inputs importInputs
}

type importInputs struct {
	cli.AppInputs
	APISpecFile    string
	ClientName     string
	ConnectionName string
}

// Flags is the command flags
func (cmd *CommandImport) Flags() []flags.Flag {
	return append(cmd.inputs.AppInputs.Flags(),
		clientNameFlag(&cmd.inputs.ClientName),
		cli.ConnectionNameFlag(&cmd.inputs.ConnectionName, "Specify the name of the Salesforce org connection to import into"),
	)
}

// Args is the command args
func (cmd *CommandImport) Args(args []string) error {
	return shared.RequiredArg(args, "api_spec_file", &cmd.inputs.APISpecFile)
}

// Inputs is the command inputs
func (cmd *CommandImport) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandImport) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	spec, err := applink.ReadAPISpec(profile.Fs(), cmd.inputs.APISpecFile)
	if err != nil {
		return err
	}

	client, attachment, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	connectionName := cmd.inputs.ConnectionName

	appImport, err := client.CreateAppImport(ctx, connectionName, applink.AppImportRequest{
		ClientName: cmd.inputs.ClientName,
		APISpec:    spec,
	})
	if err != nil {
		return shared.NotFound(err, "Connection", connectionName, attachment.App, shared.ListConnectionsCommand)
	}

	_, err = shared.Watch(ctx, profile, ui,
		fmt.Sprintf("Importing %s into %s", cmd.inputs.ClientName, connectionName),
		appImport,
		func(ctx context.Context) (applink.AppImport, error) {
			return client.AppImport(ctx, connectionName, appImport.ID)
		},
		applink.AppImportPending,
		applink.AppImportSuccess,
	)
	return err
}
