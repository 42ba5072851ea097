package cli

import (
	"context"

	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"
)

// Command is an executable CLI command
// This interface maps 1:1 to Cobra's Command.RunE phase
//
// Optionally, a Command may implement any of the other interfaces found below.
// The order of operations is:
//  1. CommandFlags.Flags: use this hook to register flags to parse
//  2. CommandArgs.Args: use this hook to capture the positional arguments
//  3. CommandInputs.Inputs: use this hook to resolve any inputs not provided
//  4. Command.Handler: this is the command hook
//
// At any point should an error occur, command execution will terminate
// and the ensuing steps will not be run
type Command interface {
	Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients Clients) error
}

// CommandFlags provides access for commands to register local flags
type CommandFlags interface {
	Flags() []flags.Flag
}

// CommandArgs provides access for commands to capture their positional arguments
type CommandArgs interface {
	Args(args []string) error
}

// CommandInputs provides access for commands to resolve their inputs
type CommandInputs interface {
	Inputs() InputResolver
}

// InputResolver is an input resolver
type InputResolver interface {
	Resolve(profile *user.Profile, ui terminal.UI) error
}

// CommandMeta is the command metadata
type CommandMeta struct {
	// Use defines how the command is used
	// This value maps 1:1 to Cobra's `Use` property
	Use string

	// Display controls how the command is described in output
	// If left blank, the command's Use value will be used instead
	Display string

	// Description is the short command description shown in the 'help' output
	// This value maps 1:1 to Cobra's `Short` property
	Description string

	// HelpText is the long message shown in the 'help <this-command>' output
	// The Description is prepended to the HelpText
	HelpText string

	// Example shows how the command is invoked
	// This value maps 1:1 to Cobra's `Example` property
	Example string

	// Aliases is the list of supported aliases for the command
	// This value maps 1:1 to Cobra's `Aliases` property
	Aliases []string

	// Hidden hides the command from the 'help' output
	Hidden bool
}

// CommandDefinition is a command's definition that the CommandFactory
// can build a *cobra.Command from
type CommandDefinition struct {
	CommandMeta

	// Command is the command's implementation
	// If present, this value is used to specify the cobra.Command execution phases
	Command Command

	// SubCommands are the command's sub commands
	// This array is iteratively added to this Cobra command via (cobra.Command).AddCommand
	SubCommands []CommandDefinition
}
