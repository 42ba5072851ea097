package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/heroku/applink-cli/internal/auth"
	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/cloud/addon"
	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/cloud/events"
	"github.com/heroku/applink-cli/internal/cloud/heroku"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile   *user.Profile
	ui        terminal.UI
	uiConfig  terminal.UIConfig
	inReader  io.Reader
	outWriter io.Writer
	errWriter io.Writer
	logger    *zap.Logger
	setupErr  error
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() (*CommandFactory, error) {
	profile, err := user.NewDefaultProfile()
	if err != nil {
		return nil, err
	}

	return &CommandFactory{
		profile: profile,
		logger:  zap.NewNop(),
	}, nil
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	help := command.Description
	if command.HelpText != "" {
		help += "\n\n" + command.HelpText
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    help,
		Example: command.Example,
		Aliases: command.Aliases,
		Hidden:  command.Hidden,
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command == nil {
		return &cmd
	}

	if command, ok := command.Command.(CommandFlags); ok {
		fs := cmd.Flags()
		fs.SortFlags = false // ensures command flags are added unsorted
		for _, flag := range command.Flags() {
			flag.Register(fs)
		}
	}

	if command, ok := command.Command.(CommandArgs); ok {
		cmd.Args = func(c *cobra.Command, a []string) error {
			return command.Args(a)
		}
	} else {
		cmd.Args = cobra.NoArgs
	}

	cmd.PersistentPreRunE = func(c *cobra.Command, a []string) error {
		factory.ensureUI()
		c.SetIn(factory.inReader)
		c.SetOut(factory.outWriter)
		c.SetErr(factory.errWriter)

		if factory.setupErr != nil {
			return usageless{factory.setupErr}
		}

		if err := factory.profile.ResolveFlags(); err != nil {
			return usageless{err}
		}

		factory.logger = NewLogger(factory.profile.Flags.Debug, factory.errWriter)
		factory.logger.Debug("running command",
			zap.String("command", display),
			zap.String("profile", factory.profile.Name),
			zap.String("heroku_api_url", factory.profile.Flags.HerokuAPIURL),
		)
		return nil
	}

	if command, ok := command.Command.(CommandInputs); ok {
		cmd.PreRunE = func(c *cobra.Command, a []string) error {
			if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
				return usageless{err}
			}
			return nil
		}
	}

	cmd.RunE = func(c *cobra.Command, a []string) error {
		clients, err := factory.clients()
		if err != nil {
			return usageless{err}
		}

		if err := command.Command.Handler(c.Context(), factory.profile, factory.ui, clients); err != nil {
			fields := []zap.Field{zap.String("command", display), zap.Error(err)}
			var cliErr Err
			if errors.As(err, &cliErr) {
				fields = append(fields, zap.String("trace", cliErr.Trace()))
			}
			factory.logger.Debug("command failed", fields...)
			return usageless{err}
		}
		return nil
	}

	return &cmd
}

// Run executes the command and returns the process exit code
func (factory *CommandFactory) Run(cmd *cobra.Command, args []string) int {
	defer func() { _ = factory.logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.SetArgs(ExpandArgs(args, boolFlags(cmd.PersistentFlags())))

	if executed, err := cmd.ExecuteContextC(ctx); err != nil {
		factory.ensureUI()
		factory.handleUsage(executed, err)

		logs := []terminal.Log{terminal.NewErrorLog(err)}

		var suggester CommandSuggester
		if errors.As(err, &suggester) && len(suggester.SuggestedCommands()) > 0 {
			logs = append(logs, terminal.NewFollowupLog(terminal.MsgSuggestedCommands, suggester.SuggestedCommands()...))
		}

		var referrer LinkReferrer
		if errors.As(err, &referrer) && len(referrer.ReferenceLinks()) > 0 {
			logs = append(logs, terminal.NewFollowupLog(terminal.MsgReferenceLinks, referrer.ReferenceLinks()...))
		}

		factory.ui.Print(logs...)
		return 1
	}
	return 0
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, user.FlagProfile, user.DefaultProfile, user.FlagProfileUsage)
	fs.BoolVar(&factory.profile.Flags.Debug, user.FlagDebug, false, user.FlagDebugUsage)

	// ui flags
	fs.VarP(&factory.uiConfig.OutputFormat, terminal.FlagOutputFormat, terminal.FlagOutputFormatShort, terminal.FlagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, terminal.FlagAutoConfirm, terminal.FlagAutoConfirmShort, false, terminal.FlagAutoConfirmUsage)

	// hidden flags
	fs.StringVar(&factory.profile.Flags.HerokuAPIURL, user.FlagHerokuAPIURL, "", user.FlagHerokuAPIURLUsage)
	flags.MarkHidden(fs, user.FlagHerokuAPIURL)
}

// Setup initializes the command factory
// The profile is re-created once the global flags are parsed so the selected profile name is honored
func (factory *CommandFactory) Setup() {
	profile, err := user.NewProfile(factory.profile.Name)
	if err != nil {
		factory.setupErr = err
		return
	}
	profile.Flags = factory.profile.Flags

	if err := profile.Load(); err != nil {
		factory.setupErr = err
		return
	}
	factory.profile = profile
}

func (factory *CommandFactory) clients() (Clients, error) {
	creds, err := auth.Resolve(factory.profile.Env, factory.profile.Flags.HerokuAPIURL)
	if err != nil {
		return Clients{}, err
	}
	factory.logger.Debug("resolved credentials",
		zap.String("source", creds.Source),
		zap.String("token", creds.RedactedToken()),
	)

	userAgent := UserAgent()

	return Clients{
		Heroku: heroku.NewClient(heroku.ClientOptions{
			BaseURL:   factory.profile.Flags.HerokuAPIURL,
			Token:     creds.Token,
			UserAgent: userAgent,
			Logger:    factory.logger.Named("heroku"),
		}),
		AppLink: func(attachment addon.Attachment) applink.Client {
			return applink.NewClient(applink.ClientOptions{
				BaseURL:   attachment.BaseURL,
				AddonID:   attachment.AddonID,
				AppID:     attachment.AppID,
				Token:     addonToken(attachment, creds),
				UserAgent: userAgent,
				Logger:    factory.logger.Named("applink"),
			})
		},
		Events: func(attachment addon.Attachment) events.Client {
			return events.NewClient(events.ClientOptions{
				BaseURL:   attachment.BaseURL,
				AddonID:   attachment.AddonID,
				Token:     addonToken(attachment, creds),
				UserAgent: userAgent,
				Logger:    factory.logger.Named("events"),
			})
		},
	}, nil
}

func addonToken(attachment addon.Attachment, creds user.Credentials) string {
	if attachment.Token != "" {
		return attachment.Token
	}
	return creds.Token
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		factory.errWriter = os.Stderr
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}

func (factory *CommandFactory) handleUsage(cmd *cobra.Command, err error) {
	var disableUsage DisableUsage
	if errors.As(err, &disableUsage) {
		return
	}

	fmt.Fprintln(factory.errWriter, cmd.UsageString())
}

// ExpandArgs expands the colon-separated command, as Heroku CLI plugins are invoked,
// into its cobra sub-command path, e.g. "salesforce:connect" becomes "salesforce connect"
//
// Flags ahead of the command are skipped along with their values. A flag without an
// inline value takes the next arg unless isBool reports it as a boolean flag
func ExpandArgs(args []string, isBool func(name string) bool) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args
		}
		if strings.HasPrefix(arg, "-") {
			if !strings.Contains(arg, "=") && (isBool == nil || !isBool(strings.TrimLeft(arg, "-"))) {
				i++
			}
			continue
		}
		if !strings.Contains(arg, ":") {
			return args
		}

		expanded := make([]string, 0, len(args)+2)
		expanded = append(expanded, args[:i]...)
		expanded = append(expanded, strings.Split(arg, ":")...)
		return append(expanded, args[i+1:]...)
	}
	return args
}

// boolFlags reports whether the named flag of fs, or a help or version flag, is a boolean flag
func boolFlags(fs *pflag.FlagSet) func(name string) bool {
	return func(name string) bool {
		switch name {
		case "h", "help", "version":
			return true
		}
		f := fs.Lookup(name)
		if f == nil && len(name) == 1 {
			f = fs.ShorthandLookup(name)
		}
		return f != nil && f.NoOptDefVal != ""
	}
}
