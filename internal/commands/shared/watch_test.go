package shared

import (
	"context"
	"errors"
	"testing"

	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/operation"
	"github.com/heroku/applink-cli/internal/utils/test/assert"
	"github.com/heroku/applink-cli/internal/utils/test/mock"
)

func TestWatch(t *testing.T) {
	t.Run("should show the final status of a connected connection", func(t *testing.T) {
		out, ui := mock.NewUI()

		statuses := []operation.Status{applink.ConnectionStatusConnecting, applink.ConnectionStatusConnected}
		var calls int
		fetch := func(ctx context.Context) (applink.Connection, error) {
			status := statuses[calls]
			calls++
			return applink.Connection{ID: "conn-1", Status: status}, nil
		}

		connection, err := Watch(context.Background(), mock.NewProfile(t), ui, "Connecting my-org",
			applink.Connection{ID: "conn-1", Status: applink.ConnectionStatusConnecting},
			fetch,
			applink.ConnectionPending,
			applink.ConnectionSuccess,
		)
		assert.Nil(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, applink.ConnectionStatusConnected, connection.Status)
		assert.Equal(t, "Connecting my-org... Connected\n", out.String())
	})

	t.Run("should show the failure status and return the failed error", func(t *testing.T) {
		out, ui := mock.NewUI()

		detail := &operation.Error{ID: "org_connection_failed", Message: "There was a problem connecting your org. Try again later."}
		fetch := func(ctx context.Context) (applink.Connection, error) {
			return applink.Connection{Status: applink.ConnectionStatusAuthenticationFailed, Error: detail}, nil
		}

		_, err := Watch(context.Background(), mock.NewProfile(t), ui, "Connecting my-org",
			applink.Connection{Status: applink.ConnectionStatusAuthenticating},
			fetch,
			applink.ConnectionPending,
			applink.ConnectionSuccess,
		)
		assert.Equal(t, operation.FailedError{Status: applink.ConnectionStatusAuthenticationFailed, Detail: detail}, err)
		assert.Equal(t, "org_connection_failed\nThere was a problem connecting your org. Try again later.", err.Error())
		assert.Equal(t, "Connecting my-org... Authentication Failed\n", out.String())
	})

	t.Run("should mark the action as failed when the fetch fails", func(t *testing.T) {
		out, ui := mock.NewUI()

		fetch := func(ctx context.Context) (applink.Connection, error) {
			return applink.Connection{}, errors.New("something bad happened")
		}

		_, err := Watch(context.Background(), mock.NewProfile(t), ui, "Connecting my-org",
			applink.Connection{Status: applink.ConnectionStatusPending},
			fetch,
			applink.ConnectionPending,
			applink.ConnectionSuccess,
		)
		assert.Equal(t, errors.New("something bad happened"), err)
		assert.Equal(t, "Connecting my-org... !\n", out.String())
	})
}
