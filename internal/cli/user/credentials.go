package user

import (
	"strings"
)

// set of known credentials sources
const (
	CredentialsSourceEnv   = "HEROKU_API_KEY"
	CredentialsSourceNetrc = "netrc"
)

// Credentials are the user's Heroku credentials
type Credentials struct {
	Login  string
	Token  string
	Source string
}

// RedactedToken returns the user's token with sensitive information redacted
// Only the last dash-separated part of the token stays visible
func (creds Credentials) RedactedToken() string {
	parts := strings.Split(creds.Token, "-")
	if len(parts) == 1 {
		return redact(parts[0])
	}

	lastIdx := len(parts) - 1

	out := make([]string, len(parts))
	for i := 0; i < lastIdx; i++ {
		out[i] = redact(parts[i])
	}
	out[lastIdx] = parts[lastIdx]

	return strings.Join(out, "-")
}

func redact(s string) string {
	return strings.Repeat("*", len(s))
}
