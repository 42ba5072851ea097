package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const (
	gitURLSuffix = ".git"

	gitHost     = "heroku.com"
	httpGitHost = "git." + gitHost
)

var (
	sshGitURLPrefix  = "git@" + gitHost + ":"
	httpGitURLPrefix = "https://" + httpGitHost + "/"

	errMultipleHerokuRemotes = errors.New("multiple apps found in git remotes")
	errNoHerokuRemotes       = errors.New("no apps found in git remotes")
)

// runGit runs git with the provided arguments and returns its standard output
var runGit = func(args ...string) ([]byte, error) {
	return exec.Command("git", args...).Output()
}

func appFromGitURL(remote string) string {
	if !strings.HasSuffix(remote, gitURLSuffix) {
		return ""
	}

	for _, prefix := range []string{sshGitURLPrefix, httpGitURLPrefix} {
		if strings.HasPrefix(remote, prefix) {
			return remote[len(prefix) : len(remote)-len(gitURLSuffix)]
		}
	}
	return ""
}

// parseGitRemotes maps each heroku push remote to its app name
func parseGitRemotes(out []byte) (map[string]string, error) {
	s := bufio.NewScanner(bytes.NewReader(out))

	remotes := map[string]string{}
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) != 3 || fields[2] != "(push)" {
			continue
		}

		if app := appFromGitURL(fields[1]); app != "" {
			remotes[fields[0]] = app
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return remotes, nil
}

// appFromGitRemote finds the app of the named git remote
// With no remote named, the app of the only heroku remote is used
func appFromGitRemote(remote string) (string, error) {
	if remote != "" {
		out, err := runGit("config", "remote."+remote+".url")
		if err != nil {
			return "", fmt.Errorf("could not find git remote %s", remote)
		}

		app := appFromGitURL(strings.TrimSpace(string(out)))
		if app == "" {
			return "", fmt.Errorf("could not find app name in %s git remote", remote)
		}
		return app, nil
	}

	out, err := runGit("remote", "-v")
	if err != nil {
		return "", errNoHerokuRemotes
	}

	remotes, err := parseGitRemotes(out)
	if err != nil {
		return "", err
	}

	if len(remotes) > 1 {
		return "", errMultipleHerokuRemotes
	}
	for _, app := range remotes {
		return app, nil
	}
	return "", errNoHerokuRemotes
}
