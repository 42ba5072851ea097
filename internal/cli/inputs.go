package cli

import (
	"errors"

	"github.com/heroku/applink-cli/internal/cli/user"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/flags"
)

// AppInputs are the app and add-on inputs shared by every add-on command
type AppInputs struct {
	App    string
	Remote string
	Addon  string
}

// Flags returns the app input flags
func (i *AppInputs) Flags() []flags.Flag {
	return []flags.Flag{
		AppFlag(&i.App),
		RemoteFlag(&i.Remote),
		AddonFlag(&i.Addon),
	}
}

// Resolve resolves the app from the flags, the environment or the git remotes
func (i *AppInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.App != "" {
		return nil
	}

	if i.Remote == "" && profile.Env.App != "" {
		i.App = profile.Env.App
		return nil
	}

	app, err := appFromGitRemote(i.Remote)
	if err != nil {
		if errors.Is(err, errMultipleHerokuRemotes) {
			return NewWrapped("multiple Heroku apps found in git remotes, specify one with --app or --remote", err)
		}
		if i.Remote != "" {
			return NewPrivileged("failed to resolve app", err)
		}
		return New("missing required flag --app").WithSuggestions(Name + " <command> --app my-app")
	}

	i.App = app
	return nil
}
