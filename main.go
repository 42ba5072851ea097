// heroku-applink is a tool for connecting Heroku apps to Salesforce orgs
// through the Heroku AppLink, Integration and Events add-ons.
package main

import (
	"github.com/heroku/applink-cli/cmd"
)

func main() {
	cmd.Run()
}
