package shared

import (
	"context"
	"errors"

	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/operation"
	"github.com/heroku/applink-cli/internal/terminal"
)

const (
	actionResultFailed = "!"
)

// Watch polls the resource behind a terminal action until its status settles
// The action shows every fetched status and ends with the final humanized status
func Watch[T operation.Resource](
	ctx context.Context,
	profile *user.Profile,
	ui terminal.UI,
	message string,
	initial T,
	fetch func(ctx context.Context) (T, error),
	pending, success operation.StatusSet,
) (T, error) {
	action := ui.StartAction(message)

	current, err := operation.Watch(ctx, initial, fetch, operation.Options{
		Pending:  pending,
		Success:  success,
		Interval: profile.Env.PollInterval,
		Timeout:  profile.Env.PollTimeout,
		Progress: func(status operation.Status) {
			action.Status(operation.Humanize(status))
		},
	})

	var failedErr operation.FailedError
	if err != nil && !errors.As(err, &failedErr) {
		action.Stop(actionResultFailed)
		return current, err
	}

	action.Stop(operation.Humanize(current.OperationStatus()))
	return current, err
}
