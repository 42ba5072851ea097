package shared

import (
	"fmt"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/terminal"
)

// ConfirmDestructive asks the user to confirm a destructive action against the named resource
// A --confirm value must match the name exactly
func ConfirmDestructive(ui terminal.UI, action, name, confirm string) error {
	if confirm != "" {
		if confirm != name {
			return cli.New(fmt.Sprintf("Confirmation %s did not match %s. Aborted.", confirm, name))
		}
		return nil
	}

	proceed, err := ui.Confirm("This will %s %s. Are you sure you want to proceed?", action, name)
	if err != nil {
		return err
	}
	if !proceed {
		return cli.New("Aborted.")
	}
	return nil
}
