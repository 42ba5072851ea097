package events

import (
	"context"
	"fmt"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/api"
	"github.com/heroku/applink-cli/internal/utils/flags"
)

// set of events flags
const (
	FlagEvent     = "event"
	FlagTargetURL = "target-url"
)

const (
	headerName           = "Name"
	headerPlatform       = "Platform"
	headerStatus         = "Status"
	headerEvent          = "Event"
	headerConnectionName = "Connection Name"
	headerTargetURL      = "Target URL"
	headerCreatedDate    = "Created Date"
)

func eventFlag(value *string, description string) flags.Flag {
	return flags.StringFlag{
		Value: value,
		Meta: flags.Meta{
			Name:     FlagEvent,
			Usage:    flags.Usage{Description: description},
			Required: true,
		},
	}
}

type nameInputs struct {
	cli.AppInputs
	Name string
}

type deleteInputs struct {
	nameInputs
	Confirm string
}

func (i *deleteInputs) Flags() []flags.Flag {
	return append(i.AppInputs.Flags(), cli.ConfirmFlag(&i.Confirm))
}

// deleteResource confirms and deletes the named events resource
func deleteResource(
	ctx context.Context,
	ui terminal.UI,
	inputs deleteInputs,
	resource, app, listCommand string,
	del func(ctx context.Context, name string) error,
) error {
	if err := shared.ConfirmDestructive(ui, "delete the "+resource, inputs.Name, inputs.Confirm); err != nil {
		return err
	}

	action := ui.StartAction(fmt.Sprintf("Deleting %s %s", resource, inputs.Name))
	if err := del(ctx, inputs.Name); err != nil {
		action.Stop("!")
		if api.IsNotFound(err) {
			return cli.NewWrapped(fmt.Sprintf("The %s %s doesn't exist on app %s.", resource, inputs.Name, app), err).
				WithSuggestions(fmt.Sprintf("%s %s -a %s", cli.Name, listCommand, app))
		}
		return err
	}
	action.Stop("done")
	return nil
}
