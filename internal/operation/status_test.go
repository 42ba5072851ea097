package operation

import (
	"sync"
	"testing"

	"github.com/heroku/applink-cli/internal/utils/test/assert"
)

func TestHumanize(t *testing.T) {
	for _, tc := range []struct {
		status   Status
		expected string
	}{
		{"pending", "Pending"},
		{"authenticating", "Authenticating"},
		{"authenticated", "Authenticated"},
		{"connecting", "Connecting"},
		{"connected", "Connected"},
		{"authentication_failed", "Authentication Failed"},
		{"connection_failed", "Connection Failed"},
		{"disconnected", "Disconnected"},
		{"failed", "Failed"},
		{"authorizing", "Authorizing"},
		{"authorized", "Authorized"},
		{"authorization_failed", "Authorization Failed"},
		{"publishing", "Publishing"},
		{"published", "Published"},
		{"publish_failed", "Publish Failed"},
		{"importing", "Importing"},
		{"imported", "Imported"},
		{"import_failed", "Import Failed"},
		{"creating", "Creating"},
		{"created", "Created"},
		{"creation_failed", "Creation Failed"},
		{"some-other status", "Some Other Status"},
		{"", ""},
	} {
		t.Run("should humanize "+string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.expected, Humanize(tc.status))
			assert.Equal(t, Humanize(tc.status), Humanize(tc.status))
		})
	}
}

func TestHumanizeConcurrently(t *testing.T) {
	results := make([]string, 8)

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Humanize("authorization_failed")
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, "Authorization Failed", result)
	}
}

func TestStatusSet(t *testing.T) {
	set := NewStatusSet("pending", "connecting")

	assert.True(t, set.Contains("pending"), "expected set to contain pending")
	assert.True(t, set.Contains("connecting"), "expected set to contain connecting")
	assert.False(t, set.Contains("connected"), "expected set to not contain connected")

	var empty StatusSet
	assert.False(t, empty.Contains("pending"), "expected the empty set to contain nothing")
}
