package commands

import (
	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/commands/applink"
	"github.com/heroku/applink-cli/internal/commands/datacloud"
	"github.com/heroku/applink-cli/internal/commands/events"
	"github.com/heroku/applink-cli/internal/commands/salesforce"
)

// set of commands
var (
	AppLink    = applink.Command
	Salesforce = salesforce.Command
	DataCloud  = datacloud.Command
	Events     = events.Command
)

// All returns every top-level command in the order they are displayed
func All() []cli.CommandDefinition {
	return []cli.CommandDefinition{AppLink, Salesforce, DataCloud, Events}
}
