package shared

import (
	"fmt"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/utils/api"
)

// NotFound translates a record not found error into a message naming the missing resource
// along with the command listing the existing ones, any other error is returned as-is
func NotFound(err error, resource, name, app, listCommand string) error {
	if !api.IsNotFound(err) {
		return err
	}
	return cli.NewWrapped(fmt.Sprintf("%s %s doesn't exist on app %s.", resource, name, app), err).
		WithSuggestions(fmt.Sprintf("%s %s -a %s", cli.Name, listCommand, app))
}
