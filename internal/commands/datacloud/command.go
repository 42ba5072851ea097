package datacloud

import (
	"github.com/heroku/applink-cli/internal/cli"
)

// Command is the `datacloud` command
var Command = cli.CommandDefinition{
	CommandMeta: cli.CommandMeta{
		Use:         "datacloud",
		Description: "Connect Data Cloud orgs and manage their data action targets",
	},
	SubCommands: []cli.CommandDefinition{
		{CommandMeta: CommandMetaConnect, Command: &CommandConnect{}},
		{
			CommandMeta: cli.CommandMeta{
				Use:         "authorizations",
				Description: "Manage the Data Cloud org authorizations of your app",
			},
			SubCommands: []cli.CommandDefinition{
				{
					CommandMeta: cli.CommandMeta{
						Use:         "add",
						Description: "Store the credentials of a Data Cloud user for your app to use at runtime",
					},
					SubCommands: []cli.CommandDefinition{
						{CommandMeta: CommandMetaAuthorizationsAddJWT, Command: &CommandAuthorizationsAddJWT{}},
					},
				},
			},
		},
		{
			CommandMeta: cli.CommandMeta{
				Use:         "data-action-target",
				Description: "Manage the Data Cloud data action targets of your app",
			},
			SubCommands: []cli.CommandDefinition{
				{CommandMeta: CommandMetaDataActionTargetCreate, Command: &CommandDataActionTargetCreate{}},
				{CommandMeta: CommandMetaDataActionTargetInfo, Command: &CommandDataActionTargetInfo{}},
			},
		},
	},
}
