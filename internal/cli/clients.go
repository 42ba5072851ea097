package cli

import (
	"github.com/heroku/applink-cli/internal/cloud/addon"
	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/cloud/events"
	"github.com/heroku/applink-cli/internal/cloud/heroku"
)

// Clients are the CLI clients
type Clients struct {
	Heroku heroku.Client

	// AppLink creates an AppLink add-on client for the resolved add-on
	AppLink func(attachment addon.Attachment) applink.Client

	// Events creates an Events add-on client for the resolved add-on
	Events func(attachment addon.Attachment) events.Client
}
