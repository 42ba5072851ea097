package applink

import (
	"github.com/heroku/applink-cli/internal/cli"
)

// Command is the `applink` command
var Command = cli.CommandDefinition{
	CommandMeta: cli.CommandMeta{
		Use:         "applink",
		Description: "Manage the connections and authorizations of your Heroku AppLink add-on",
	},
	SubCommands: []cli.CommandDefinition{
		{
			CommandMeta: CommandMetaConnections,
			Command:     &CommandConnections{},
			SubCommands: []cli.CommandDefinition{
				{CommandMeta: CommandMetaConnectionsInfo, Command: &CommandConnectionsInfo{}},
				{CommandMeta: CommandMetaConnectionsDelete, Command: &CommandConnectionsDelete{}},
			},
		},
		{
			CommandMeta: CommandMetaAuthorizations,
			Command:     &CommandAuthorizations{},
			SubCommands: []cli.CommandDefinition{
				{CommandMeta: CommandMetaAuthorizationsInfo, Command: &CommandAuthorizationsInfo{}},
				{CommandMeta: CommandMetaAuthorizationsDelete, Command: &CommandAuthorizationsDelete{}},
			},
		},
	},
}
