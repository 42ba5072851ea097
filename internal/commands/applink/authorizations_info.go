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

// CommandMetaAuthorizationsInfo is the command meta for the `applink:authorizations:info` command
var CommandMetaAuthorizationsInfo = cli.CommandMeta{
	Use:         "info <developer_name>",
	Display:     "applink:authorizations:info",
	Description: "Show info for a Heroku AppLink authorization",
	Example: heredoc.Doc(`
		$ heroku-applink applink:authorizations:info MyAuth -a my-app`),
}

// CommandAuthorizationsInfo is the `applink:authorizations:info` command
type CommandAuthorizationsInfo struct {
	inputs authorizationInputs
}

type authorizationInputs struct {
	cli.AppInputs
	DeveloperName string
}

// Flags is the command flags
func (cmd *CommandAuthorizationsInfo) Flags() []flags.Flag {
	return cmd.inputs.AppInputs.Flags()
}

// Args is the command args
func (cmd *CommandAuthorizationsInfo) Args(args []string) error {
	return shared.RequiredArg(args, "developer_name", &cmd.inputs.DeveloperName)
}

// Inputs is the command inputs
func (cmd *CommandAuthorizationsInfo) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandAuthorizationsInfo) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, attachment, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	authorization, err := client.Authorization(ctx, cmd.inputs.DeveloperName)
	if err != nil {
		return shared.NotFound(err, "Authorization", cmd.inputs.DeveloperName, attachment.App, CommandMetaAuthorizations.Display)
	}

	ui.Print(terminal.NewObjectLog(
		"Heroku AppLink authorization "+authorization.DeveloperName,
		authorizationFields(attachment.AddonName, authorization),
	))
	return nil
}
