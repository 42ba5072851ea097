package applink

import (
	"context"
	"net/http"

	"github.com/heroku/applink-cli/internal/operation"
)

const (
	appImportsPathPattern = connectionPathPattern + "/app_imports"
	appImportPathPattern  = appImportsPathPattern + "/%s"
)

// set of known app import statuses
const (
	AppImportStatusPending      operation.Status = "pending"
	AppImportStatusImporting    operation.Status = "importing"
	AppImportStatusImported     operation.Status = "imported"
	AppImportStatusImportFailed operation.Status = "import_failed"
)

var (
	// AppImportPending are the statuses of an app import in progress
	AppImportPending = operation.NewStatusSet(AppImportStatusPending, AppImportStatusImporting)

	// AppImportSuccess are the statuses of a completed app import
	AppImportSuccess = operation.NewStatusSet(AppImportStatusImported)
)

// AppImport is a request to import the app's api into an org
type AppImport struct {
	ID             string           `json:"id"`
	Status         operation.Status `json:"status"`
	Error          *operation.Error `json:"error,omitempty"`
	ClientName     string           `json:"client_name"`
	ConnectionName string           `json:"connection_name"`
}

// OperationStatus returns the app import status
func (ai AppImport) OperationStatus() operation.Status { return ai.Status }

// OperationError returns the app import error
func (ai AppImport) OperationError() *operation.Error { return ai.Error }

// AppImportRequest is the payload to import the app's api into an org
type AppImportRequest struct {
	ClientName string  `json:"client_name"`
	APISpec    APISpec `json:"api_spec"`
}

func (c *client) CreateAppImport(ctx context.Context, connectionName string, req AppImportRequest) (AppImport, error) {
	var appImport AppImport
	if err := c.sendJSON(ctx, http.MethodPost, c.path(appImportsPathPattern, connectionName), req, &appImport); err != nil {
		return AppImport{}, err
	}
	return appImport, nil
}

func (c *client) AppImport(ctx context.Context, connectionName, id string) (AppImport, error) {
	var appImport AppImport
	if err := c.getJSON(ctx, c.path(appImportPathPattern, connectionName, id), &appImport); err != nil {
		return AppImport{}, err
	}
	return appImport, nil
}
