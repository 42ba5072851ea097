package user

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	// ProfileType is the file type for profiles
	ProfileType = "yaml"

	// DefaultHerokuAPIURL is the default Heroku Platform API url
	DefaultHerokuAPIURL = "https://api.heroku.com"
)

// set of supported CLI user profile flags
const (
	FlagProfile      = "profile"
	FlagProfileUsage = `Specify your profile (Default value: "default")`

	FlagHerokuAPIURL      = "heroku-api-url"
	FlagHerokuAPIURLUsage = "Specify the base Heroku Platform API URL"

	FlagDebug      = "debug"
	FlagDebugUsage = "Log the api requests made by the CLI to stderr"
)

// set of supported CLI profile keys
const (
	keyHerokuAPIURL = "heroku_api_url"
)

// Profile is the CLI profile
type Profile struct {
	Flags
	Env
	Name string

	dir string
	fs  afero.Fs
	v   *viper.Viper
}

// Flags are the CLI profile flags
type Flags struct {
	HerokuAPIURL string
	Debug        bool
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile stored in the CLI home directory
func NewProfile(name string) (*Profile, error) {
	dir, err := HomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %w", err)
	}
	return NewProfileWithFs(name, dir, afero.NewOsFs()), nil
}

// NewProfileWithFs creates a new CLI profile stored in dir of the provided filesystem
func NewProfileWithFs(name, dir string, fs afero.Fs) *Profile {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(name)
	v.SetConfigType(ProfileType)
	v.SetConfigPermissions(0600)
	v.AddConfigPath(dir)

	return &Profile{Name: name, dir: dir, fs: fs, v: v}
}

// Load loads the CLI profile along with the environment configuration
func (p *Profile) Load() error {
	if err := p.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to load CLI profile: %w", err)
		}
	}

	env, err := LoadEnv()
	if err != nil {
		return err
	}
	p.Env = env
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, err := afero.DirExists(p.fs, p.dir)
	if err != nil {
		return fmt.Errorf("failed to save CLI profile: %w", err)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %w", err)
		}
	}

	if err := p.v.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %w", err)
	}
	return nil
}

// ResolveFlags resolves the user profile flags
// A flag value overrides the environment, which overrides the stored profile value
// Flag values are persisted to the profile
func (p *Profile) ResolveFlags() error {
	p.Flags.Debug = p.Flags.Debug || p.Env.Debug

	if p.Flags.HerokuAPIURL != "" {
		p.SetHerokuAPIURL(p.Flags.HerokuAPIURL)
		return p.Save()
	}

	switch {
	case p.Env.APIURL != "":
		p.Flags.HerokuAPIURL = p.Env.APIURL
	case p.HerokuAPIURL() != "":
		p.Flags.HerokuAPIURL = p.HerokuAPIURL()
	default:
		p.Flags.HerokuAPIURL = DefaultHerokuAPIURL
	}
	return nil
}

// Dir returns the CLI profile directory
func (p Profile) Dir() string {
	return p.dir
}

// Path returns the CLI profile filepath
func (p Profile) Path() string {
	return filepath.Join(p.dir, p.Name+"."+ProfileType)
}

// HerokuAPIURL gets the stored Heroku Platform API url
func (p Profile) HerokuAPIURL() string {
	return p.v.GetString(keyHerokuAPIURL)
}

// SetHerokuAPIURL sets the stored Heroku Platform API url
func (p Profile) SetHerokuAPIURL(herokuAPIURL string) {
	p.v.Set(keyHerokuAPIURL, herokuAPIURL)
}

// Fs returns the filesystem the CLI profile and user provided files are read from
func (p Profile) Fs() afero.Fs {
	return p.fs
}
