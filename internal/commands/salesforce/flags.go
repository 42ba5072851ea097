package salesforce

import (
	"github.com/heroku/applink-cli/internal/utils/flags"
)

// set of salesforce flags
const (
	FlagClientName                    = "client-name"
	FlagAuthorizationConnectedAppName = "authorization-connected-app-name"
	FlagAuthorizationPermissionSet    = "authorization-permission-set-name"
)

func clientNameFlag(value *string) flags.Flag {
	return flags.StringFlag{
		Value: value,
		Meta: flags.Meta{
			Name: FlagClientName,
			Usage: flags.Usage{
				Description: "Specify the name given to the API client in the org",
			},
			Required: true,
		},
	}
}
