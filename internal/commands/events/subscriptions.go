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

// CommandMetaSubscriptions is the command meta for the `events:subscriptions` command
var CommandMetaSubscriptions = cli.CommandMeta{
	Use:         "subscriptions",
	Display:     "events:subscriptions",
	Description: "List the event subscriptions of your Heroku Events add-on",
	Example: heredoc.Doc(`
		$ heroku-applink events:subscriptions -a my-app`),
}

// CommandSubscriptions is the `events:subscriptions` command
type CommandSubscriptions struct {
	inputs cli.AppInputs
}

// Flags is the command flags
func (cmd *CommandSubscriptions) Flags() []flags.Flag {
	return cmd.inputs.Flags()
}

// Inputs is the command inputs
func (cmd *CommandSubscriptions) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandSubscriptions) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, attachment, err := shared.EventsClient(ctx, profile, clients, cmd.inputs)
	if err != nil {
		return err
	}

	subscriptions, err := client.Subscriptions(ctx)
	if err != nil {
		return err
	}

	if len(subscriptions) == 0 {
		ui.Print(terminal.NewTextLog("No Heroku Events subscriptions for app %s.", attachment.App))
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		rows = append(rows, map[string]interface{}{
			headerName:           subscription.Name,
			headerEvent:          subscription.Event,
			headerConnectionName: subscription.ConnectionName,
			headerTargetURL:      subscription.TargetURL,
			headerCreatedDate:    shared.FormatTime(subscription.CreatedAt),
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Heroku Events subscriptions for app %s", attachment.App),
		[]string{headerName, headerEvent, headerConnectionName, headerTargetURL, headerCreatedDate},
		rows...,
	))
	return nil
}

// CommandMetaSubscriptionsCreate is the command meta for the `events:subscriptions:create` command
var CommandMetaSubscriptionsCreate = cli.CommandMeta{
	Use:         "create <name>",
	Display:     "events:subscriptions:create",
	Description: "Deliver the events of a Salesforce org to your app",
	Example: heredoc.Doc(`
		$ heroku-applink events:subscriptions:create order-events -a my-app \
		    --event /event/OrderCreated__e --connection-name my-org --target-url https://my-app.herokuapp.com/events`),
}

// CommandSubscriptionsCreate is the `events:subscriptions:create` command
type CommandSubscriptionsCreate struct {
	inputs subscriptionCreateInputs
}

type subscriptionCreateInputs struct {
	nameInputs
	Event          string
	ConnectionName string
	TargetURL      string
}

// Flags is the command flags
func (cmd *CommandSubscriptionsCreate) Flags() []flags.Flag {
	return append(cmd.inputs.AppInputs.Flags(),
		eventFlag(&cmd.inputs.Event, "Specify the platform event channel to subscribe to"),
		cli.ConnectionNameFlag(&cmd.inputs.ConnectionName, "Specify the name of the authorization to subscribe with"),
		flags.StringFlag{
			Value: &cmd.inputs.TargetURL,
			Meta: flags.Meta{
				Name: FlagTargetURL,
				Usage: flags.Usage{
					Description: "Specify the URL the events are delivered to",
				},
				Required: true,
			},
		},
	)
}

// Args is the command args
func (cmd *CommandSubscriptionsCreate) Args(args []string) error {
	return shared.RequiredArg(args, "name", &cmd.inputs.Name)
}

// Inputs is the command inputs
func (cmd *CommandSubscriptionsCreate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandSubscriptionsCreate) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, _, err := shared.EventsClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	action := ui.StartAction("Creating subscription " + cmd.inputs.Name)

	if _, err := client.CreateSubscription(ctx, events.SubscriptionRequest{
		Name:           cmd.inputs.Name,
		Event:          cmd.inputs.Event,
		ConnectionName: cmd.inputs.ConnectionName,
		TargetURL:      cmd.inputs.TargetURL,
	}); err != nil {
		action.Stop("!")
		return err
	}

	action.Stop("done")
	return nil
}

// CommandMetaSubscriptionsDelete is the command meta for the `events:subscriptions:delete` command
var CommandMetaSubscriptionsDelete = cli.CommandMeta{
	Use:         "delete <name>",
	Aliases:     []string{"destroy"},
	Display:     "events:subscriptions:delete",
	Description: "Delete an event subscription of your Heroku Events add-on",
	Example: heredoc.Doc(`
		$ heroku-applink events:subscriptions:delete order-events -a my-app --confirm order-events`),
}

// CommandSubscriptionsDelete is the `events:subscriptions:delete` command
type CommandSubscriptionsDelete struct {
	inputs deleteInputs
}

// Flags is the command flags
func (cmd *CommandSubscriptionsDelete) Flags() []flags.Flag {
	return cmd.inputs.Flags()
}

// Args is the command args
func (cmd *CommandSubscriptionsDelete) Args(args []string) error {
	return shared.RequiredArg(args, "name", &cmd.inputs.Name)
}

// Inputs is the command inputs
func (cmd *CommandSubscriptionsDelete) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandSubscriptionsDelete) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, attachment, err := shared.EventsClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}
	return deleteResource(ctx, ui, cmd.inputs, "subscription", attachment.App, CommandMetaSubscriptions.Display, client.DeleteSubscription)
}
