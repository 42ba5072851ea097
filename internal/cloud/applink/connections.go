package applink

import (
	"context"
	"net/http"
	"time"

	"github.com/heroku/applink-cli/internal/operation"
)

const (
	connectionsPath              = "/connections"
	connectionPathPattern        = connectionsPath + "/%s"
	salesforceConnectionsPath    = connectionsPath + "/salesforce"
	salesforceJWTConnectionsPath = salesforceConnectionsPath + "/jwt"
	dataCloudConnectionsPath     = connectionsPath + "/datacloud"
)

// set of known connection statuses
const (
	ConnectionStatusPending              operation.Status = "pending"
	ConnectionStatusAuthenticating       operation.Status = "authenticating"
	ConnectionStatusAuthenticated        operation.Status = "authenticated"
	ConnectionStatusConnecting           operation.Status = "connecting"
	ConnectionStatusConnected            operation.Status = "connected"
	ConnectionStatusAuthenticationFailed operation.Status = "authentication_failed"
	ConnectionStatusConnectionFailed     operation.Status = "connection_failed"
	ConnectionStatusDisconnected         operation.Status = "disconnected"
	ConnectionStatusFailed               operation.Status = "failed"
)

// set of known connection types
const (
	ConnectionTypeSalesforce = "SalesforceOrg"
	ConnectionTypeDataCloud  = "DataCloudOrg"
)

var (
	// ConnectionPending are the statuses of a connection still being established
	ConnectionPending = operation.NewStatusSet(
		ConnectionStatusPending,
		ConnectionStatusAuthenticating,
		ConnectionStatusAuthenticated,
		ConnectionStatusConnecting,
	)

	// ConnectionSuccess are the statuses of an established connection
	ConnectionSuccess = operation.NewStatusSet(ConnectionStatusConnected)
)

// Org is a Salesforce or Data Cloud org
type Org struct {
	ID             string `json:"id,omitempty"`
	ConnectionName string `json:"connection_name"`
	InstanceURL    string `json:"instance_url,omitempty"`
	Type           string `json:"type,omitempty"`
	Username       string `json:"username,omitempty"`
	APIVersion     string `json:"api_version,omitempty"`
}

// Connection is a link between the app and a Salesforce or Data Cloud org
type Connection struct {
	ID             string           `json:"id"`
	Type           string           `json:"type"`
	Status         operation.Status `json:"status"`
	Error          *operation.Error `json:"error,omitempty"`
	RedirectURI    string           `json:"redirect_uri,omitempty"`
	Org            Org              `json:"org"`
	CreatedAt      *time.Time       `json:"created_at,omitempty"`
	CreatedBy      string           `json:"created_by,omitempty"`
	LastModifiedAt *time.Time       `json:"last_modified_at,omitempty"`
	LastModifiedBy string           `json:"last_modified_by,omitempty"`
}

// OperationStatus returns the connection status
func (c Connection) OperationStatus() operation.Status { return c.Status }

// OperationError returns the connection error
func (c Connection) OperationError() *operation.Error { return c.Error }

// Name returns the connection name
func (c Connection) Name() string { return c.Org.ConnectionName }

// OrgRequest is the payload to connect an org through the browser
type OrgRequest struct {
	ConnectionName string `json:"connection_name"`
	LoginURL       string `json:"login_url,omitempty"`
}

// JWTOrgRequest is the payload to connect an org with a connected app JWT bearer flow
type JWTOrgRequest struct {
	ConnectionName string `json:"connection_name"`
	ClientID       string `json:"client_id"`
	JWTPrivateKey  string `json:"jwt_private_key"`
	Username       string `json:"username"`
	LoginURL       string `json:"login_url,omitempty"`
}

func (c *client) Connections(ctx context.Context) ([]Connection, error) {
	var connections []Connection
	if err := c.getJSON(ctx, c.path(connectionsPath), &connections); err != nil {
		return nil, err
	}
	return connections, nil
}

func (c *client) Connection(ctx context.Context, name string) (Connection, error) {
	var connection Connection
	if err := c.getJSON(ctx, c.path(connectionPathPattern, name), &connection); err != nil {
		return Connection{}, err
	}
	return connection, nil
}

func (c *client) DeleteConnection(ctx context.Context, name string) (Connection, error) {
	var connection Connection
	if err := c.delete(ctx, c.path(connectionPathPattern, name), &connection); err != nil {
		return Connection{}, err
	}
	return connection, nil
}

func (c *client) CreateSalesforceConnection(ctx context.Context, req OrgRequest) (Connection, error) {
	return c.createConnection(ctx, salesforceConnectionsPath, req)
}

func (c *client) CreateSalesforceJWTConnection(ctx context.Context, req JWTOrgRequest) (Connection, error) {
	return c.createConnection(ctx, salesforceJWTConnectionsPath, req)
}

func (c *client) CreateDataCloudConnection(ctx context.Context, req OrgRequest) (Connection, error) {
	return c.createConnection(ctx, dataCloudConnectionsPath, req)
}

func (c *client) createConnection(ctx context.Context, path string, payload interface{}) (Connection, error) {
	var connection Connection
	if err := c.sendJSON(ctx, http.MethodPost, c.path(path), payload, &connection); err != nil {
		return Connection{}, err
	}
	return connection, nil
}
