package shared

import (
	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/utils/flags"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/afero"
)

// set of JWT flags
const (
	FlagClientID   = "client-id"
	FlagJWTKeyFile = "jwt-key-file"
	FlagUsername   = "username"
)

// JWTInputs are the connected app inputs of the JWT bearer flow
type JWTInputs struct {
	ClientID   string
	JWTKeyFile string
	Username   string
}

// Flags returns the JWT input flags
func (i *JWTInputs) Flags() []flags.Flag {
	return []flags.Flag{
		flags.StringFlag{
			Value: &i.ClientID,
			Meta: flags.Meta{
				Name:     FlagClientID,
				Usage:    flags.Usage{Description: "Specify the consumer key of the connected app"},
				Required: true,
			},
		},
		flags.StringFlag{
			Value: &i.JWTKeyFile,
			Meta: flags.Meta{
				Name:     FlagJWTKeyFile,
				Usage:    flags.Usage{Description: "Specify the path to the RSA private key file of the connected app certificate"},
				Required: true,
			},
		},
		flags.StringFlag{
			Value: &i.Username,
			Meta: flags.Meta{
				Name:     FlagUsername,
				Usage:    flags.Usage{Description: "Specify the username of the org user to connect as"},
				Required: true,
			},
		},
	}
}

// ReadJWTKey reads the JWT private key file and checks it holds a PEM encoded RSA private key
func ReadJWTKey(fs afero.Fs, path string) (string, error) {
	key, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", cli.NewPrivileged("failed to read the JWT key file", err)
	}

	if _, err := jwt.ParseRSAPrivateKeyFromPEM(key); err != nil {
		return "", cli.NewPrivileged(path+" is not a valid RSA private key", err)
	}
	return string(key), nil
}
