package shared

import (
	"bytes"
	"errors"
	"testing"

	"github.com/heroku/applink-cli/internal/utils/test/assert"
	"github.com/heroku/applink-cli/internal/utils/test/mock"
)

const testLoginURL = "https://login.salesforce.com/services/oauth2/authorize?client_id=abc"

func TestOpenBrowser(t *testing.T) {
	t.Run("should open the browser without prompting when auto confirm is set", func(t *testing.T) {
		var opened string
		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{
			AutoConfirm:   true,
			OpenBrowserFn: func(url string) error { opened = url; return nil },
		}, out)

		assert.Nil(t, OpenBrowser(ui, testLoginURL, ""))
		assert.Equal(t, testLoginURL, opened)
		assert.Equal(t, "", out.String())
	})

	t.Run("should start the provided browser command", func(t *testing.T) {
		var started []string
		origStartBrowser := startBrowser
		startBrowser = func(browser, url string) error {
			started = []string{browser, url}
			return nil
		}
		defer func() { startBrowser = origStartBrowser }()

		ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, new(bytes.Buffer))

		assert.Nil(t, OpenBrowser(ui, testLoginURL, "firefox"))
		assert.Equal(t, []string{"firefox", testLoginURL}, started)
	})

	t.Run("should warn with the url when the browser fails to open", func(t *testing.T) {
		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{
			AutoConfirm:   true,
			OpenBrowserFn: func(url string) error { return errors.New("no browser found") },
		}, out)

		assert.Nil(t, OpenBrowser(ui, testLoginURL, ""))
		assert.Contains(t, out.String(), "Failed to open the browser: no browser found")
		assert.Contains(t, out.String(), testLoginURL)
	})

	t.Run("should print the url when the user declines to open the browser", func(t *testing.T) {
		var opened bool
		out := new(bytes.Buffer)
		console, _, ui, consoleErr := mock.NewVT10XConsoleWithOptions(mock.UIOptions{
			OpenBrowserFn: func(url string) error { opened = true; return nil },
		}, out)
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan (struct{}))
		go func() {
			defer close(doneCh)
			console.ExpectString("Open the login URL in your browser?")
			console.SendLine("n")
			console.ExpectEOF()
		}()

		assert.Nil(t, OpenBrowser(ui, testLoginURL, ""))

		console.Tty().Close() // flush the writers
		<-doneCh              // wait for procedure to complete

		assert.False(t, opened, "expected the browser to stay closed")
		assert.Contains(t, out.String(), "Open the following URL in your browser to log in:")
		assert.Contains(t, out.String(), testLoginURL)
	})
}
