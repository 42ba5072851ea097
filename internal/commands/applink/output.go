package applink

import (
	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/commands/shared"
	"github.com/heroku/applink-cli/internal/operation"

	"github.com/iancoleman/orderedmap"
)

const (
	headerAddon          = "Add-On"
	headerType           = "Type"
	headerConnectionName = "Connection Name"
	headerDeveloperName  = "Developer Name"
	headerStatus         = "Status"
)

var orgTypes = map[string]string{
	applink.ConnectionTypeSalesforce: "Salesforce Org",
	applink.ConnectionTypeDataCloud:  "Data Cloud Org",
}

// OrgType returns the display name of an org type
func OrgType(orgType string) string {
	if display, ok := orgTypes[orgType]; ok {
		return display
	}
	return orgType
}

func orgFields(fields *orderedmap.OrderedMap, org applink.Org) {
	fields.Set("Org ID", org.ID)
	fields.Set("Instance URL", org.InstanceURL)
	fields.Set("Username", org.Username)
	fields.Set("API Version", org.APIVersion)
}

func errorField(fields *orderedmap.OrderedMap, err *operation.Error) {
	if err == nil {
		return
	}
	fields.Set("Error", err.Message)
}

func connectionFields(attachment string, connection applink.Connection) *orderedmap.OrderedMap {
	fields := orderedmap.New()
	fields.Set("ID", connection.ID)
	fields.Set(headerAddon, attachment)
	fields.Set(headerConnectionName, connection.Name())
	fields.Set(headerType, OrgType(connection.Type))
	fields.Set(headerStatus, operation.Humanize(connection.Status))
	errorField(fields, connection.Error)
	orgFields(fields, connection.Org)
	fields.Set("Created Date", shared.FormatTime(connection.CreatedAt))
	fields.Set("Created By", connection.CreatedBy)
	fields.Set("Last Modified", shared.FormatTime(connection.LastModifiedAt))
	fields.Set("Last Modified By", connection.LastModifiedBy)
	return fields
}

func authorizationFields(attachment string, authorization applink.Authorization) *orderedmap.OrderedMap {
	fields := orderedmap.New()
	fields.Set("ID", authorization.ID)
	fields.Set(headerAddon, attachment)
	fields.Set(headerDeveloperName, authorization.DeveloperName)
	fields.Set(headerType, OrgType(authorization.Org.Type))
	fields.Set(headerStatus, operation.Humanize(authorization.Status))
	errorField(fields, authorization.Error)
	orgFields(fields, authorization.Org)
	fields.Set("Created Date", shared.FormatTime(authorization.CreatedAt))
	fields.Set("Created By", authorization.CreatedBy)
	fields.Set("Last Modified", shared.FormatTime(authorization.LastModifiedAt))
	fields.Set("Last Modified By", authorization.LastModifiedBy)
	return fields
}
