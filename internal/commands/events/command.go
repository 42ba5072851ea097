package events

import (
	"github.com/heroku/applink-cli/internal/cli"
)

// Command is the `events` command
var Command = cli.CommandDefinition{
	CommandMeta: cli.CommandMeta{
		Use:         "events",
		Description: "Manage the org authorizations, publications and subscriptions of your Heroku Events add-on",
	},
	SubCommands: []cli.CommandDefinition{
		{
			CommandMeta: CommandMetaAuthorizations,
			Command:     &CommandAuthorizations{},
			SubCommands: []cli.CommandDefinition{
				{CommandMeta: CommandMetaAuthorizationsAdd, Command: &CommandAuthorizationsAdd{}},
				{CommandMeta: CommandMetaAuthorizationsDelete, Command: &CommandAuthorizationsDelete{}},
			},
		},
		{
			CommandMeta: CommandMetaPublications,
			Command:     &CommandPublications{},
			SubCommands: []cli.CommandDefinition{
				{CommandMeta: CommandMetaPublicationsCreate, Command: &CommandPublicationsCreate{}},
				{CommandMeta: CommandMetaPublicationsDelete, Command: &CommandPublicationsDelete{}},
			},
		},
		{
			CommandMeta: CommandMetaSubscriptions,
			Command:     &CommandSubscriptions{},
			SubCommands: []cli.CommandDefinition{
				{CommandMeta: CommandMetaSubscriptionsCreate, Command: &CommandSubscriptionsCreate{}},
				{CommandMeta: CommandMetaSubscriptionsDelete, Command: &CommandSubscriptionsDelete{}},
			},
		},
	},
}
