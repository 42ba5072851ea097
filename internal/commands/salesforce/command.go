package salesforce

import (
	"github.com/heroku/applink-cli/internal/cli"
)

// Command is the `salesforce` command
var Command = cli.CommandDefinition{
	CommandMeta: cli.CommandMeta{
		Use:         "salesforce",
		Description: "Connect Salesforce orgs and publish your app's APIs to them",
	},
	SubCommands: []cli.CommandDefinition{
		{
			CommandMeta: CommandMetaConnect,
			Command:     &CommandConnect{},
			SubCommands: []cli.CommandDefinition{
				{CommandMeta: CommandMetaConnectJWT, Command: &CommandConnectJWT{}},
			},
		},
		{
			CommandMeta: cli.CommandMeta{
				Use:         "authorizations",
				Description: "Manage the Salesforce org authorizations of your app",
			},
			SubCommands: []cli.CommandDefinition{
				{
					CommandMeta: CommandMetaAuthorizationsAdd,
					Command:     &CommandAuthorizationsAdd{},
					SubCommands: []cli.CommandDefinition{
						{CommandMeta: CommandMetaAuthorizationsAddJWT, Command: &CommandAuthorizationsAddJWT{}},
					},
				},
			},
		},
		{CommandMeta: CommandMetaPublish, Command: &CommandPublish{}},
		{CommandMeta: CommandMetaPublications, Command: &CommandPublications{}},
		{CommandMeta: CommandMetaImport, Command: &CommandImport{}},
	},
}
