package applink

import (
	"context"
	"time"
)

const (
	publicationsPathPattern = connectionPathPattern + "/publications"
)

// Publication is an app api published to an org
type Publication struct {
	AppUUID             string     `json:"app_uuid"`
	ConnectionName      string     `json:"connection_name"`
	ExternalServiceName string     `json:"external_service_name"`
	ClientName          string     `json:"client_name"`
	OrgID               string     `json:"org_id"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
}

func (c *client) Publications(ctx context.Context, connectionName string) ([]Publication, error) {
	var publications []Publication
	if err := c.getJSON(ctx, c.path(publicationsPathPattern, connectionName), &publications); err != nil {
		return nil, err
	}
	return publications, nil
}
