package addon

import (
	"github.com/heroku/applink-cli/internal/cli/user"
)

// set of default add-on service slugs
const (
	DefaultAppLinkService = "heroku-applink"
	DefaultEventsService  = "heroku-events"
)

// set of add-on documentation links
const (
	AppLinkDocsURL = "https://devcenter.heroku.com/articles/heroku-applink"
	EventsDocsURL  = "https://devcenter.heroku.com/articles/heroku-events"
)

// Kind is a kind of add-on the CLI manages resources of
type Kind struct {
	// Label is the add-on display name
	Label string

	// Service is the add-on service slug
	Service string

	// DocsURL links to the add-on documentation
	DocsURL string
}

// AppLink returns the Heroku AppLink add-on kind
// The service slug can be overridden for the Integration add-on or staging environments
func AppLink(env user.Env) Kind {
	return Kind{
		Label:   "Heroku AppLink",
		Service: firstNonEmpty(env.AppLinkAddon, env.IntegrationAddon, DefaultAppLinkService),
		DocsURL: AppLinkDocsURL,
	}
}

// Events returns the Heroku Events add-on kind
func Events(env user.Env) Kind {
	return Kind{
		Label:   "Heroku Events",
		Service: firstNonEmpty(env.EventsAddon, DefaultEventsService),
		DocsURL: EventsDocsURL,
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
