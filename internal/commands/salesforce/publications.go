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

// CommandMetaPublications is the command meta for the `salesforce:publications` command
var CommandMetaPublications = cli.CommandMeta{
	Use:         "publications [connection_name]",
	Display:     "salesforce:publications",
	Description: "List the APIs your app published to its Salesforce orgs",
	HelpText:    "Lists the publications of every connected Salesforce org unless a connection name is provided.",
	Example: heredoc.Doc(`
		$ heroku-applink salesforce:publications -a my-app
		$ heroku-applink salesforce:publications my-org -a my-app`),
}

const (
	headerConnectionName      = "Connection Name"
	headerClientName          = "Client Name"
	headerExternalServiceName = "External Service Name"
	headerOrgID               = "Org ID"
	headerCreatedDate         = "Created Date"
)

// CommandPublications is the `salesforce:publications` command
type CommandPublications struct {
	inputs publicationsInputs
}

type publicationsInputs struct {
	cli.AppInputs
	ConnectionName string
}

// Flags is the command flags
func (cmd *CommandPublications) Flags() []flags.Flag {
	return cmd.inputs.AppInputs.Flags()
}

// Args is the command args
func (cmd *CommandPublications) Args(args []string) error {
	return shared.OptionalArg(args, &cmd.inputs.ConnectionName)
}

// Inputs is the command inputs
func (cmd *CommandPublications) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandPublications) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	client, attachment, err := shared.AppLinkClient(ctx, profile, clients, cmd.inputs.AppInputs)
	if err != nil {
		return err
	}

	connectionNames := []string{cmd.inputs.ConnectionName}
	if cmd.inputs.ConnectionName == "" {
		connectionNames, err = connectedOrgs(ctx, client)
		if err != nil {
			return err
		}
	}

	var publications []applink.Publication
	for _, connectionName := range connectionNames {
		p, err := client.Publications(ctx, connectionName)
		if err != nil {
			return shared.NotFound(err, "Connection", connectionName, attachment.App, shared.ListConnectionsCommand)
		}
		publications = append(publications, p...)
	}

	if len(publications) == 0 {
		ui.Print(terminal.NewTextLog("No Salesforce publications for app %s.", attachment.App))
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(publications))
	for _, publication := range publications {
		rows = append(rows, map[string]interface{}{
			headerConnectionName:      publication.ConnectionName,
			headerClientName:          publication.ClientName,
			headerExternalServiceName: publication.ExternalServiceName,
			headerOrgID:               publication.OrgID,
			headerCreatedDate:         shared.FormatTime(publication.CreatedAt),
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Salesforce %s for app %s", terminal.Plural("publication", len(publications)), attachment.App),
		[]string{headerConnectionName, headerClientName, headerExternalServiceName, headerOrgID, headerCreatedDate},
		rows...,
	))
	return nil
}

// connectedOrgs returns the names of the connected Salesforce orgs
func connectedOrgs(ctx context.Context, client applink.Client) ([]string, error) {
	connections, err := client.Connections(ctx)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, connection := range connections {
		if connection.Type != applink.ConnectionTypeSalesforce {
			continue
		}
		if !applink.ConnectionSuccess.Contains(connection.Status) {
			continue
		}
		names = append(names, connection.Name())
	}
	return names, nil
}
