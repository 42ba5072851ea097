package addon

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/heroku/applink-cli/internal/cloud/heroku"
)

const (
	apiURLSuffix = "_API_URL"
	tokenSuffix  = "_TOKEN"

	addonsPathSegment = "addons"
)

// Attachment is a resolved add-on along with the details needed to call its api
type Attachment struct {
	App       string
	AppID     string
	AddonName string
	AddonID   string

	// BaseURL is the add-on api scheme and host
	BaseURL string

	// Token is the add-on bearer token, empty when the add-on
	// expects the user's Heroku token instead
	Token string
}

// Resolve finds the add-on of the provided kind attached to the app
// along with its api url and token
//
// The app config vars are only read once a single provisioned add-on is found
func Resolve(ctx context.Context, client heroku.Client, kind Kind, app, addonName string) (Attachment, error) {
	addons, err := client.Addons(ctx, app)
	if err != nil {
		return Attachment{}, err
	}

	var matches []heroku.Addon
	for _, a := range addons {
		if a.AddonService.Name != kind.Service {
			continue
		}
		if addonName != "" && a.Name != addonName && a.ID != addonName {
			continue
		}
		matches = append(matches, a)
	}

	switch len(matches) {
	case 0:
		return Attachment{}, ErrAddonMissing{kind, app}
	case 1:
	default:
		names := make([]string, len(matches))
		for i, match := range matches {
			names[i] = match.Name
		}
		return Attachment{}, ErrAddonAmbiguous{kind, app, names}
	}

	a := matches[0]
	if a.State != heroku.AddonStateProvisioned {
		return Attachment{}, ErrAddonNotProvisioned{kind, app, a.Name, a.State}
	}

	apiURLVar := findAPIURLVar(a.ConfigVars)
	if apiURLVar == "" {
		return Attachment{}, ErrAddonMisconfigured{kind, a.Name, "no api url config var is set"}
	}

	configVars, err := client.ConfigVars(ctx, app)
	if err != nil {
		return Attachment{}, err
	}

	apiURL, ok := configVars[apiURLVar]
	if !ok || apiURL == "" {
		return Attachment{}, ErrAddonMisconfigured{kind, a.Name, fmt.Sprintf("%s is not set on %s", apiURLVar, app)}
	}

	baseURL, addonID, err := parseAPIURL(apiURL)
	if err != nil {
		return Attachment{}, ErrAddonMisconfigured{kind, a.Name, fmt.Sprintf("%s is invalid", apiURLVar)}
	}
	if addonID == "" {
		addonID = a.ID
	}

	return Attachment{
		App:       app,
		AppID:     a.App.ID,
		AddonName: a.Name,
		AddonID:   addonID,
		BaseURL:   baseURL,
		Token:     configVars[strings.TrimSuffix(apiURLVar, apiURLSuffix)+tokenSuffix],
	}, nil
}

func findAPIURLVar(configVars []string) string {
	for _, name := range configVars {
		if strings.HasSuffix(name, apiURLSuffix) {
			return name
		}
	}
	return ""
}

// parseAPIURL splits an add-on api url into its base url and embedded add-on id
// e.g. https://applink.example.com/addons/abc123 becomes https://applink.example.com and abc123
func parseAPIURL(apiURL string) (string, string, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("missing scheme or host in %s", apiURL)
	}

	baseURL := u.Scheme + "://" + u.Host

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i < len(segments)-1; i++ {
		if segments[i] == addonsPathSegment {
			return baseURL, segments[i+1], nil
		}
	}
	return baseURL, "", nil
}
