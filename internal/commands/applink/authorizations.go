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

// CommandMetaAuthorizations is the command meta for the `applink:authorizations` command
var CommandMetaAuthorizations = cli.CommandMeta{
	Use:         "authorizations",
	Display:     "applink:authorizations",
	Description: "List Heroku AppLink authorized users",
	HelpText:    "Lists the org authorizations the app's Heroku AppLink add-on can use at runtime.",
	Example: heredoc.Doc(`
		$ heroku-applink applink:authorizations -a my-app`),
}

// CommandAuthorizations is the `applink:authorizations` command
type CommandAuthorizations struct {
	inputs cli.AppInputs
}

// Flags is the command flags
func (cmd *CommandAuthorizations) Flags() []flags.Flag {
	return cmd.inputs.Flags()
}

// Inputs is the command inputs
func (cmd *CommandAuthorizations) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandAuthorizations) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, attachment, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs)
	if err != nil {
		return err
	}

	authorizations, err := client.Authorizations(ctx)
	if err != nil {
		return err
	}

	if len(authorizations) == 0 {
		ui.Print(terminal.NewTextLog("No Heroku AppLink authorizations for app %s.", attachment.App))
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(authorizations))
	for _, authorization := range authorizations {
		rows = append(rows, map[string]interface{}{
			headerAddon:         attachment.AddonName,
			headerType:          OrgType(authorization.Org.Type),
			headerDeveloperName: authorization.DeveloperName,
			headerStatus:        operation.Humanize(authorization.Status),
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Heroku AppLink authorizations for app %s", attachment.App),
		[]string{headerAddon, headerType, headerDeveloperName, headerStatus},
		rows...,
	))
	return nil
}
