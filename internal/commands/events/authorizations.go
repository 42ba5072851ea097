package events

import (
	"context"
	"fmt"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/cloud/events"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/operation"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"

	"github.com/MakeNowJust/heredoc"
)

// CommandMetaAuthorizations is the command meta for the `events:authorizations` command
var CommandMetaAuthorizations = cli.CommandMeta{
	Use:         "authorizations",
	Display:     "events:authorizations",
	Description: "List the org authorizations of your Heroku Events add-on",
	Example: heredoc.Doc(`
		$ heroku-applink events:authorizations -a my-app`),
}

// CommandAuthorizations is the `events:authorizations` command
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
	client, attachment, err := shared.EventsClient(ctx, profile, clients, cmd.inputs)
	if err != nil {
		return err
	}

	authorizations, err := client.Authorizations(ctx)
	if err != nil {
		return err
	}

	if len(authorizations) == 0 {
		ui.Print(terminal.NewTextLog("No Heroku Events authorizations for app %s.", attachment.App))
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(authorizations))
	for _, authorization := range authorizations {
		rows = append(rows, map[string]interface{}{
			headerName:        authorization.Name,
			headerPlatform:    authorization.Platform,
			headerStatus:      operation.Humanize(authorization.Status),
			headerCreatedDate: shared.FormatTime(authorization.CreatedAt),
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Heroku Events authorizations for app %s", attachment.App),
		[]string{headerName, headerPlatform, headerStatus, headerCreatedDate},
		rows...,
	))
	return nil
}

// CommandMetaAuthorizationsAdd is the command meta for the `events:authorizations:add` command
var CommandMetaAuthorizationsAdd = cli.CommandMeta{
	Use:         "add <name>",
	Display:     "events:authorizations:add",
	Description: "Authorize your Heroku Events add-on to access a Salesforce org",
	HelpText:    "Opens the Salesforce login page in your browser and waits until the org is authorized.",
	Example: heredoc.Doc(`
		$ heroku-applink events:authorizations:add my-org -a my-app`),
}

// CommandAuthorizationsAdd is the `events:authorizations:add` command
type CommandAuthorizationsAdd struct {
	inputs shared.OrgInputs
}

// Flags is the command flags
func (cmd *CommandAuthorizationsAdd) Flags() []flags.Flag {
	return cmd.inputs.Flags()
}

// Args is the command args
func (cmd *CommandAuthorizationsAdd) Args(args []string) error {
	return shared.RequiredArg(args, "name", &cmd.inputs.Name)
}

// Inputs is the command inputs
func (cmd *CommandAuthorizationsAdd) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandAuthorizationsAdd) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, _, err := shared.EventsClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	name := cmd.inputs.Name

	authorization, err := client.CreateSalesforceAuthorization(ctx, events.AuthorizationRequest{Name: name, LoginURL: cmd.inputs.LoginURL})
	if err != nil {
		return err
	}

	if authorization.RedirectURI != "" {
		if err := shared.OpenBrowser(ui, authorization.RedirectURI, cmd.inputs.Browser); err != nil {
			return err
		}
	}

	_, err = shared.Watch(ctx, profile, ui, "Authorizing "+name, authorization,
		func(ctx context.Context) (events.Authorization, error) {
			return client.Authorization(ctx, name)
		},
		events.AuthorizationPending,
		events.AuthorizationSuccess,
	)
	return err
}

// CommandMetaAuthorizationsDelete is the command meta for the `events:authorizations:delete` command
var CommandMetaAuthorizationsDelete = cli.CommandMeta{
	Use:         "delete <name>",
	Aliases:     []string{"destroy"},
	Display:     "events:authorizations:delete",
	Description: "Delete an org authorization of your Heroku Events add-on",
	Example: heredoc.Doc(`
		$ heroku-applink events:authorizations:delete my-org -a my-app --confirm my-org`),
}

// CommandAuthorizationsDelete is the `events:authorizations:delete` command
type CommandAuthorizationsDelete struct {
	inputs deleteInputs
}

// Flags is the command flags
func (cmd *CommandAuthorizationsDelete) Flags() []flags.Flag {
	return cmd.inputs.Flags()
}

// Args is the command args
func (cmd *CommandAuthorizationsDelete) Args(args []string) error {
	return shared.RequiredArg(args, "name", &cmd.inputs.Name)
}

// Inputs is the command inputs
func (cmd *CommandAuthorizationsDelete) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandAuthorizationsDelete) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, attachment, err := shared.EventsClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}
	return deleteResource(ctx, ui, cmd.inputs, "authorization", attachment.App, CommandMetaAuthorizations.Display, client.DeleteAuthorization)
}
