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

// CommandMetaAuthorizationsDelete is the command meta for the `applink:authorizations:delete` command
var CommandMetaAuthorizationsDelete = cli.CommandMeta{
	Use:         "delete <developer_name>",
	Aliases:     []string{"destroy"},
	Display:     "applink:authorizations:delete",
	Description: "Delete a Heroku AppLink authorization",
	HelpText:    "Removes the stored org credentials. Pass the developer name to --confirm to skip the confirmation prompt.",
	Example: heredoc.Doc(`
		$ heroku-applink applink:authorizations:delete MyAuth -a my-app
		$ heroku-applink applink:authorizations:delete MyAuth -a my-app --confirm MyAuth`),
}

// CommandAuthorizationsDelete is the `applink:authorizations:delete` command
type CommandAuthorizationsDelete struct {
	inputs authorizationDeleteInputs
}

type authorizationDeleteInputs struct {
	authorizationInputs
	Confirm string
}

// Flags is the command flags
func (cmd *CommandAuthorizationsDelete) Flags() []flags.Flag {
	return append(cmd.inputs.AppInputs.Flags(), cli.ConfirmFlag(&cmd.inputs.Confirm))
}

// Args is the command args
func (cmd *CommandAuthorizationsDelete) Args(args []string) error {
	return shared.RequiredArg(args, "developer_name", &cmd.inputs.DeveloperName)
}

// Inputs is the command inputs
func (cmd *CommandAuthorizationsDelete) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandAuthorizationsDelete) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, attachment, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	if err := shared.ConfirmDestructive(ui, "remove the authorization", cmd.inputs.DeveloperName, cmd.inputs.Confirm); err != nil {
		return err
	}

	action := ui.StartAction("Removing authorization " + cmd.inputs.DeveloperName)

	authorization, err := client.DeleteAuthorization(ctx, cmd.inputs.DeveloperName)
	if err != nil {
		action.Stop("!")
		return shared.NotFound(err, "Authorization", cmd.inputs.DeveloperName, attachment.App, CommandMetaAuthorizations.Display)
	}

	action.Stop(deletedStatus(authorization.Status))
	return nil
}
