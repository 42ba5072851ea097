package heroku

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heroku/applink-cli/internal/utils/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientOptions{BaseURL: server.URL, Token: "s3cr3t", UserAgent: "heroku-applink/test"})
}

func TestClientAddons(t *testing.T) {
	t.Run("should list the app add-ons", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/apps/my-app/addons", r.URL.Path)
			assert.Equal(t, acceptHeaderValue, r.Header.Get(api.HeaderAccept))
			assert.Equal(t, "Bearer s3cr3t", r.Header.Get(api.HeaderAuthorization))
			w.Write([]byte(`[{
				"id": "01234567-89ab-cdef-0123-456789abcdef",
				"name": "heroku-applink-vertical-01234",
				"state": "provisioned",
				"config_vars": ["HEROKU_APPLINK_API_URL", "HEROKU_APPLINK_TOKEN"],
				"addon_service": {"id": "service-id", "name": "heroku-applink"},
				"plan": {"id": "plan-id", "name": "heroku-applink:test"},
				"app": {"id": "app-id", "name": "my-app"}
			}]`))
		})

		addons, err := client.Addons(context.Background(), "my-app")
		require.NoError(t, err)
		assert.Equal(t, []Addon{{
			ID:           "01234567-89ab-cdef-0123-456789abcdef",
			Name:         "heroku-applink-vertical-01234",
			State:        AddonStateProvisioned,
			ConfigVars:   []string{"HEROKU_APPLINK_API_URL", "HEROKU_APPLINK_TOKEN"},
			AddonService: AddonService{"service-id", "heroku-applink"},
			Plan:         AddonPlan{"plan-id", "heroku-applink:test"},
			App:          App{"app-id", "my-app"},
		}}, addons)
	})

	t.Run("should return the server error for a missing app", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"id":"not_found","message":"Couldn't find that app."}`))
		})

		_, err := client.Addons(context.Background(), "my-app")
		assert.Equal(t, api.ServerError{StatusCode: http.StatusNotFound, ID: "not_found", Message: "Couldn't find that app."}, err)
	})
}

func TestClientConfigVars(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apps/my-app/config-vars", r.URL.Path)
		w.Write([]byte(`{"HEROKU_APPLINK_API_URL":"https://applink.example.com/addons/addon-id","HEROKU_APPLINK_TOKEN":"addon-token"}`))
	})

	configVars, err := client.ConfigVars(context.Background(), "my-app")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"HEROKU_APPLINK_API_URL": "https://applink.example.com/addons/addon-id",
		"HEROKU_APPLINK_TOKEN":   "addon-token",
	}, configVars)
}
