package datacloud

import (
	"regexp"
	"strings"

	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/operation"

	"github.com/iancoleman/orderedmap"
)

// set of data action target flags
const (
	FlagAPIName       = "api-name"
	FlagTargetAPIPath = "target-api-path"
)

var (
	invalidAPINameChars = regexp.MustCompile(`[^A-Za-z0-9_]+`)
	repeatedUnderscores = regexp.MustCompile(`_+`)
)

// apiNameFromLabel derives an api name from the label
// e.g. "My Target (v2)" becomes "My_Target_v2"
func apiNameFromLabel(label string) string {
	name := invalidAPINameChars.ReplaceAllString(label, "_")
	name = repeatedUnderscores.ReplaceAllString(name, "_")
	return strings.Trim(name, "_")
}

func dataActionTargetFields(target applink.DataActionTarget) *orderedmap.OrderedMap {
	fields := orderedmap.New()
	fields.Set("ID", target.ID)
	fields.Set("Label", target.Label)
	fields.Set("API Name", target.APIName)
	fields.Set("Type", target.Type)
	fields.Set("Status", operation.Humanize(target.Status))
	if target.Error != nil {
		fields.Set("Error", target.Error.Message)
	}
	fields.Set("Target API Path", target.TargetAPIPath)
	fields.Set("Target Endpoint", target.TargetEndpoint)
	fields.Set("Connection Name", target.ConnectionName)
	fields.Set("Created Date", shared.FormatTime(target.CreatedAt))
	fields.Set("Created By", target.CreatedBy)
	return fields
}
