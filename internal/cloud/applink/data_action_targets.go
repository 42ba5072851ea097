package applink

import (
	"context"
	"net/http"
	"time"

	"github.com/heroku/applink-cli/internal/operation"
)

const (
	dataActionTargetsPathPattern = connectionPathPattern + "/data_action_targets"
	dataActionTargetPathPattern  = dataActionTargetsPathPattern + "/%s"
)

// set of known data action target statuses
const (
	DataActionTargetStatusPending        operation.Status = "pending"
	DataActionTargetStatusCreating       operation.Status = "creating"
	DataActionTargetStatusCreated        operation.Status = "created"
	DataActionTargetStatusCreationFailed operation.Status = "creation_failed"
)

var (
	// DataActionTargetPending are the statuses of a data action target being created
	DataActionTargetPending = operation.NewStatusSet(DataActionTargetStatusPending, DataActionTargetStatusCreating)

	// DataActionTargetSuccess are the statuses of a created data action target
	DataActionTargetSuccess = operation.NewStatusSet(DataActionTargetStatusCreated)
)

// DataActionTarget is a Data Cloud target that sends data actions to the app
type DataActionTarget struct {
	ID             string           `json:"id"`
	Label          string           `json:"label"`
	APIName        string           `json:"api_name"`
	TargetAPIPath  string           `json:"target_api_path"`
	TargetEndpoint string           `json:"target_endpoint,omitempty"`
	Type           string           `json:"type,omitempty"`
	Status         operation.Status `json:"status"`
	Error          *operation.Error `json:"error,omitempty"`
	ConnectionName string           `json:"connection_name"`
	CreatedAt      *time.Time       `json:"created_at,omitempty"`
	CreatedBy      string           `json:"created_by,omitempty"`
}

// OperationStatus returns the data action target status
func (dat DataActionTarget) OperationStatus() operation.Status { return dat.Status }

// OperationError returns the data action target error
func (dat DataActionTarget) OperationError() *operation.Error { return dat.Error }

// DataActionTargetRequest is the payload to create a data action target
type DataActionTargetRequest struct {
	Label         string `json:"label"`
	APIName       string `json:"api_name"`
	TargetAPIPath string `json:"target_api_path"`
}

func (c *client) CreateDataActionTarget(ctx context.Context, connectionName string, req DataActionTargetRequest) (DataActionTarget, error) {
	var target DataActionTarget
	if err := c.sendJSON(ctx, http.MethodPost, c.path(dataActionTargetsPathPattern, connectionName), req, &target); err != nil {
		return DataActionTarget{}, err
	}
	return target, nil
}

func (c *client) DataActionTarget(ctx context.Context, connectionName, apiName string) (DataActionTarget, error) {
	var target DataActionTarget
	if err := c.getJSON(ctx, c.path(dataActionTargetPathPattern, connectionName, apiName), &target); err != nil {
		return DataActionTarget{}, err
	}
	return target, nil
}
