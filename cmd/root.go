package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/commands"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Version: cli.Version,
		Use:     cli.Name,
		Short:   "CLI tool to manage your Heroku AppLink, Integration and Events add-ons",
		Long: heredoc.Docf(`
			Connect Salesforce and Data Cloud orgs to your Heroku apps and publish your apps' APIs to them.

			Commands are run as namespace:command, e.g. "%[1]s salesforce:connect".
			Use "%[1]s [command] --help" for information on a specific command.`,
			cli.Name,
		),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	factory, err := cli.NewCommandFactory()
	if err != nil {
		log.Fatal(err)
	}

	cobra.OnInitialize(factory.Setup)

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	for _, command := range commands.All() {
		cmd.AddCommand(factory.Build(command))
	}

	cmd.SetVersionTemplate(fmt.Sprintf("%s\n", cli.UserAgent()))

	os.Exit(factory.Run(cmd, os.Args[1:]))
}
