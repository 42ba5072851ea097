package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/heroku/applink-cli/internal/utils/test/assert"
)

func mockGit(t *testing.T, outputs map[string]string) {
	t.Helper()
	orig := runGit
	runGit = func(args ...string) ([]byte, error) {
		out, ok := outputs[strings.Join(args, " ")]
		if !ok {
			return nil, errors.New("exit status 1")
		}
		return []byte(out), nil
	}
	t.Cleanup(func() { runGit = orig })
}

func TestAppFromGitURL(t *testing.T) {
	for _, tc := range []struct {
		url      string
		expected string
	}{
		{"git@heroku.com:my-app.git", "my-app"},
		{"https://git.heroku.com/my-app.git", "my-app"},
		{"https://github.com/heroku/my-app.git", ""},
		{"https://git.heroku.com/my-app", ""},
	} {
		t.Run("should parse "+tc.url, func(t *testing.T) {
			assert.Equal(t, tc.expected, appFromGitURL(tc.url))
		})
	}
}

func TestParseGitRemotes(t *testing.T) {
	remotes, err := parseGitRemotes([]byte(`heroku	https://git.heroku.com/my-app.git (fetch)
heroku	https://git.heroku.com/my-app.git (push)
staging	git@heroku.com:my-app-staging.git (push)
origin	git@github.com:heroku/my-app.git (push)
`))
	assert.Nil(t, err)
	assert.Equal(t, map[string]string{"heroku": "my-app", "staging": "my-app-staging"}, remotes)
}

func TestAppFromGitRemote(t *testing.T) {
	t.Run("should resolve the app of the named remote", func(t *testing.T) {
		mockGit(t, map[string]string{"config remote.staging.url": "https://git.heroku.com/my-app-staging.git\n"})

		app, err := appFromGitRemote("staging")
		assert.Nil(t, err)
		assert.Equal(t, "my-app-staging", app)
	})

	t.Run("should fail for an unknown remote", func(t *testing.T) {
		mockGit(t, nil)

		_, err := appFromGitRemote("staging")
		assert.Equal(t, errors.New("could not find git remote staging"), err)
	})

	t.Run("should fail for a remote that is not a heroku app", func(t *testing.T) {
		mockGit(t, map[string]string{"config remote.origin.url": "git@github.com:heroku/my-app.git"})

		_, err := appFromGitRemote("origin")
		assert.Equal(t, errors.New("could not find app name in origin git remote"), err)
	})

	t.Run("should resolve the only heroku remote", func(t *testing.T) {
		mockGit(t, map[string]string{"remote -v": "heroku\thttps://git.heroku.com/my-app.git (push)\n"})

		app, err := appFromGitRemote("")
		assert.Nil(t, err)
		assert.Equal(t, "my-app", app)
	})

	t.Run("should fail with multiple heroku remotes", func(t *testing.T) {
		mockGit(t, map[string]string{"remote -v": "heroku\thttps://git.heroku.com/my-app.git (push)\nstaging\thttps://git.heroku.com/my-app-staging.git (push)\n"})

		_, err := appFromGitRemote("")
		assert.ErrorIs(t, err, errMultipleHerokuRemotes)
	})

	t.Run("should fail outside of a git repository", func(t *testing.T) {
		mockGit(t, nil)

		_, err := appFromGitRemote("")
		assert.ErrorIs(t, err, errNoHerokuRemotes)
	})
}
