package terminal

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/heroku/applink-cli/internal/utils/test/assert"

	"github.com/fatih/color"
	"github.com/iancoleman/orderedmap"
)

var staticTime = time.Date(1989, 6, 22, 1, 23, 45, 0, time.UTC)

type identifiedError struct {
	id      string
	message string
}

func (err identifiedError) Error() string   { return err.message }
func (err identifiedError) ErrorID() string { return err.id }

func TestLogPrint(t *testing.T) {
	color.NoColor = true

	fields := orderedmap.New()
	fields.Set("Connection Name", "my-org")
	fields.Set("Status", "Connected")
	fields.Set("Add-On", "heroku-applink-vertical-01234")

	for _, tc := range []struct {
		description  string
		log          Log
		expectedText string
		expectedJSON string
	}{
		{
			description:  "text log",
			log:          NewTextLog("connected %s", "my-org"),
			expectedText: "connected my-org",
			expectedJSON: `{"time":"1989-06-22T01:23:45Z","level":"info","message":"connected my-org"}`,
		},
		{
			description:  "text log with a literal percent",
			log:          NewTextLog("%s", "100%"),
			expectedText: "100%",
			expectedJSON: `{"time":"1989-06-22T01:23:45Z","level":"info","message":"100%"}`,
		},
		{
			description:  "error log",
			log:          NewErrorLog(errors.New("org_connection_failed\nThere was a problem connecting your org.")),
			expectedText: "org_connection_failed\nThere was a problem connecting your org.",
			expectedJSON: `{"time":"1989-06-22T01:23:45Z","level":"error","err":"org_connection_failed\nThere was a problem connecting your org."}`,
		},
		{
			description:  "warning log",
			log:          NewWarningLog("failed to open %s", "the browser"),
			expectedText: " ›   Warning: failed to open the browser",
			expectedJSON: `{"time":"1989-06-22T01:23:45Z","level":"warn","message":"failed to open the browser"}`,
		},
		{
			description:  "list log",
			log:          NewListLog("Connections", "my-org", "my-other-org"),
			expectedText: "Connections\n  my-org\n  my-other-org",
			expectedJSON: `{"time":"1989-06-22T01:23:45Z","level":"info","message":"Connections","data":["my-org","my-other-org"]}`,
		},
		{
			description:  "object log",
			log:          NewObjectLog("=== my-org", fields),
			expectedText: "=== my-org\nConnection Name: my-org\nStatus:          Connected\nAdd-On:          heroku-applink-vertical-01234",
			expectedJSON: `{"time":"1989-06-22T01:23:45Z","level":"info","message":"=== my-org","data":{"Connection Name":"my-org","Status":"Connected","Add-On":"heroku-applink-vertical-01234"}}`,
		},
		{
			description:  "follow up log",
			log:          NewFollowupLog(MsgSuggestedCommands, "heroku addons:create heroku-applink -a my-app"),
			expectedText: "Try running instead:\n  heroku addons:create heroku-applink -a my-app",
			expectedJSON: `{"time":"1989-06-22T01:23:45Z","level":"info","message":"Try running instead","data":["heroku addons:create heroku-applink -a my-app"]}`,
		},
		{
			description:  "error log with the api error id",
			log:          NewErrorLog(fmt.Errorf("failed to connect: %w", identifiedError{"org_connection_failed", "There was a problem connecting your org."})),
			expectedText: "failed to connect: There was a problem connecting your org.",
			expectedJSON: `{"time":"1989-06-22T01:23:45Z","level":"error","id":"org_connection_failed","err":"failed to connect: There was a problem connecting your org."}`,
		},
	} {
		t.Run("should print a "+tc.description, func(t *testing.T) {
			tc.log.Time = staticTime

			text, err := tc.log.Print(OutputFormatText)
			assert.Nil(t, err)
			assert.Equal(t, tc.expectedText, text)

			jsonOut, err := tc.log.Print(OutputFormatJSON)
			assert.Nil(t, err)
			assert.Equal(t, tc.expectedJSON, jsonOut)
		})
	}

	t.Run("should fail with an unknown output format", func(t *testing.T) {
		_, err := NewTextLog("hi").Print("yaml")
		assert.Equal(t, errors.New("unsupported output format type: yaml"), err)
	})
}
