package salesforce

import (
	"context"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"

	"github.com/MakeNowJust/heredoc"
)

// CommandMetaAuthorizationsAdd is the command meta for the `salesforce:authorizations:add` command
var CommandMetaAuthorizationsAdd = cli.CommandMeta{
	Use:         "add <developer_name>",
	Display:     "salesforce:authorizations:add",
	Description: "Store the credentials of a Salesforce user for your app to use at runtime",
	HelpText: heredoc.Doc(`
		Opens the Salesforce login page in your browser. The credentials of the
		user you log in as are stored under the developer name.`),
	Example: heredoc.Doc(`
		$ heroku-applink salesforce:authorizations:add MyAuth -a my-app`),
}

// CommandAuthorizationsAdd is the `salesforce:authorizations:add` command
type CommandAuthorizationsAdd struct {
	inputs shared.OrgInputs
}

// Flags is the command flags
func (cmd *CommandAuthorizationsAdd) Flags() []flags.Flag {
	return cmd.inputs.Flags()
}

// Args is the command args
func (cmd *CommandAuthorizationsAdd) Args(args []string) error {
	return shared.RequiredArg(args, "developer_name", &cmd.inputs.Name)
}

// Inputs is the command inputs
func (cmd *CommandAuthorizationsAdd) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandAuthorizationsAdd) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, _, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	_, err = shared.AuthorizeOrg(ctx, profile, ui, client, cmd.inputs)
	return err
}
