package shared

import (
	"os/exec"

	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"
)

// set of browser flags
const (
	FlagBrowser = "browser"
)

// BrowserFlag is the '--browser' flag
func BrowserFlag(value *string) flags.Flag {
	return flags.StringFlag{
		Value: value,
		Meta: flags.Meta{
			Name: FlagBrowser,
			Usage: flags.Usage{
				Description: "Specify the browser command to open the login URL with",
				Note:        "defaults to the system browser",
			},
		},
	}
}

// startBrowser launches the browser command with the url
var startBrowser = func(browser, url string) error {
	return exec.Command(browser, url).Start()
}

// OpenBrowser opens the url so the user can log in to their org
//
// The user is asked before the browser opens unless prompts are auto-confirmed.
// Declining prints the url instead. Failing to open the browser is only a warning.
func OpenBrowser(ui terminal.UI, url, browser string) error {
	open, err := ui.Confirm("Open the login URL in your browser?")
	if err != nil {
		return err
	}

	if !open {
		ui.Print(terminal.NewListLog("Open the following URL in your browser to log in:", url))
		return nil
	}

	if browser != "" {
		err = startBrowser(browser, url)
	} else {
		err = ui.OpenBrowser(url)
	}
	if err != nil {
		ui.Print(terminal.NewWarningLog("Failed to open the browser: %s\nOpen the following URL in your browser to log in:\n%s%s", err, terminal.Indent, url))
	}
	return nil
}
