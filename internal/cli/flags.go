package cli

import (
	"github.com/heroku/applink-cli/internal/utils/flags"
)

// set of supported app flags
const (
	FlagApp            = "app"
	FlagAppShort       = "a"
	FlagRemote         = "remote"
	FlagRemoteShort    = "r"
	FlagAddon          = "addon"
	FlagConfirm        = "confirm"
	FlagConnectionName = "connection-name"
)

// AppFlag is the '--app' flag
func AppFlag(value *string) flags.Flag {
	return flags.StringFlag{
		Value: value,
		Meta: flags.Meta{
			Name:      FlagApp,
			Shorthand: FlagAppShort,
			Usage: flags.Usage{
				Description: "Specify the Heroku app to run the command against",
				Note:        "defaults to $HEROKU_APP or the app of the heroku git remote",
			},
		},
	}
}

// RemoteFlag is the '--remote' flag
func RemoteFlag(value *string) flags.Flag {
	return flags.StringFlag{
		Value: value,
		Meta: flags.Meta{
			Name:      FlagRemote,
			Shorthand: FlagRemoteShort,
			Usage: flags.Usage{
				Description: "Specify the git remote of the Heroku app to use",
			},
		},
	}
}

// AddonFlag is the '--addon' flag
func AddonFlag(value *string) flags.Flag {
	return flags.StringFlag{
		Value: value,
		Meta: flags.Meta{
			Name: FlagAddon,
			Usage: flags.Usage{
				Description: "Specify the name or ID of the add-on, required when the app has more than one",
			},
		},
	}
}

// ConfirmFlag is the '--confirm' flag
func ConfirmFlag(value *string) flags.Flag {
	return flags.StringFlag{
		Value: value,
		Meta: flags.Meta{
			Name: FlagConfirm,
			Usage: flags.Usage{
				Description: "Confirm the destructive action by passing the name of the resource",
			},
		},
	}
}

// ConnectionNameFlag is the '--connection-name' flag
func ConnectionNameFlag(value *string, description string) flags.Flag {
	return flags.StringFlag{
		Value: value,
		Meta: flags.Meta{
			Name: FlagConnectionName,
			Usage: flags.Usage{
				Description: description,
			},
			Required: true,
		},
	}
}
