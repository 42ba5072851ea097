package events

import (
	"context"
	"fmt"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/cloud/events"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"

	"github.com/MakeNowJust/heredoc"
)

// CommandMetaPublications is the command meta for the `events:publications` command
var CommandMetaPublications = cli.CommandMeta{
	Use:         "publications",
	Display:     "events:publications",
	Description: "List the event publications of your Heroku Events add-on",
	Example: heredoc.Doc(`
		$ heroku-applink events:publications -a my-app`),
}

// CommandPublications is the `events:publications` command
type CommandPublications struct {
	inputs cli.AppInputs
}

// Flags is the command flags
func (cmd *CommandPublications) Flags() []flags.Flag {
	return cmd.inputs.Flags()
}

// Inputs is the command inputs
func (cmd *CommandPublications) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandPublications) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, attachment, err := shared.EventsClient(ctx, profile, clients, cmd.inputs)
	if err != nil {
		return err
	}

	publications, err := client.Publications(ctx)
	if err != nil {
		return err
	}

	if len(publications) == 0 {
		ui.Print(terminal.NewTextLog("No Heroku Events publications for app %s.", attachment.App))
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(publications))
	for _, publication := range publications {
		rows = append(rows, map[string]interface{}{
			headerName:           publication.Name,
			headerEvent:          publication.Event,
			headerConnectionName: publication.ConnectionName,
			headerCreatedDate:    shared.FormatTime(publication.CreatedAt),
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Heroku Events publications for app %s", attachment.App),
		[]string{headerName, headerEvent, headerConnectionName, headerCreatedDate},
		rows...,
	))
	return nil
}

// CommandMetaPublicationsCreate is the command meta for the `events:publications:create` command
var CommandMetaPublicationsCreate = cli.CommandMeta{
	Use:         "create <name>",
	Display:     "events:publications:create",
	Description: "Publish the events of your app to a Salesforce org",
	Example: heredoc.Doc(`
		$ heroku-applink events:publications:create order-events -a my-app \
		    --event /event/OrderCreated__e --connection-name my-org`),
}

// CommandPublicationsCreate is the `events:publications:create` command
type CommandPublicationsCreate struct {
	inputs publicationCreateInputs
}

type publicationCreateInputs struct {
	nameInputs
	Event          string
	ConnectionName string
}

// Flags is the command flags
func (cmd *CommandPublicationsCreate) Flags() []flags.Flag {
	return append(cmd.inputs.AppInputs.Flags(),
		eventFlag(&cmd.inputs.Event, "Specify the platform event channel to publish to"),
		cli.ConnectionNameFlag(&cmd.inputs.ConnectionName, "Specify the name of the authorization to publish with"),
	)
}

// Args is the command args
func (cmd *CommandPublicationsCreate) Args(args []string) error {
	return shared.RequiredArg(args, "name", &cmd.inputs.Name)
}

// Inputs is the command inputs
func (cmd *CommandPublicationsCreate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandPublicationsCreate) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, _, err := shared.EventsClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	action := ui.StartAction("Creating publication " + cmd.inputs.Name)

	if _, err := client.CreatePublication(ctx, events.PublicationRequest{
		Name:           cmd.inputs.Name,
		Event:          cmd.inputs.Event,
		ConnectionName: cmd.inputs.ConnectionName,
	}); err != nil {
		action.Stop("!")
		return err
	}

	action.Stop("done")
	return nil
}

// CommandMetaPublicationsDelete is the command meta for the `events:publications:delete` command
var CommandMetaPublicationsDelete = cli.CommandMeta{
	Use:         "delete <name>",
	Aliases:     []string{"destroy"},
	Display:     "events:publications:delete",
	Description: "Delete an event publication of your Heroku Events add-on",
	Example: heredoc.Doc(`
		$ heroku-applink events:publications:delete order-events -a my-app --confirm order-events`),
}

// CommandPublicationsDelete is the `events:publications:delete` command
type CommandPublicationsDelete struct {
	inputs deleteInputs
}

// Flags is the command flags
func (cmd *CommandPublicationsDelete) Flags() []flags.Flag {
	return cmd.inputs.Flags()
}

// Args is the command args
func (cmd *CommandPublicationsDelete) Args(args []string) error {
	return shared.RequiredArg(args, "name", &cmd.inputs.Name)
}

// Inputs is the command inputs
func (cmd *CommandPublicationsDelete) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandPublicationsDelete) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, attachment, err := shared.EventsClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}
	return deleteResource(ctx, ui, cmd.inputs, "publication", attachment.App, CommandMetaPublications.Display, client.DeletePublication)
}
