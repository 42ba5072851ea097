package mock

import (
	"context"

	"github.com/heroku/applink-cli/internal/cloud/applink"
)

// AppLinkClient is a mocked Heroku AppLink add-on api client
type AppLinkClient struct {
	applink.Client
	ConnectionsFn                      func(ctx context.Context) ([]applink.Connection, error)
	ConnectionFn                       func(ctx context.Context, name string) (applink.Connection, error)
	DeleteConnectionFn                 func(ctx context.Context, name string) (applink.Connection, error)
	CreateSalesforceConnectionFn       func(ctx context.Context, req applink.OrgRequest) (applink.Connection, error)
	CreateSalesforceJWTConnectionFn    func(ctx context.Context, req applink.JWTOrgRequest) (applink.Connection, error)
	CreateDataCloudConnectionFn        func(ctx context.Context, req applink.OrgRequest) (applink.Connection, error)
	AuthorizationsFn                   func(ctx context.Context) ([]applink.Authorization, error)
	AuthorizationFn                    func(ctx context.Context, developerName string) (applink.Authorization, error)
	DeleteAuthorizationFn              func(ctx context.Context, developerName string) (applink.Authorization, error)
	CreateSalesforceAuthorizationFn    func(ctx context.Context, req applink.AuthorizationRequest) (applink.Authorization, error)
	CreateSalesforceJWTAuthorizationFn func(ctx context.Context, req applink.JWTAuthorizationRequest) (applink.Authorization, error)
	CreateDataCloudJWTAuthorizationFn  func(ctx context.Context, req applink.JWTAuthorizationRequest) (applink.Authorization, error)
	CreateAppPublishFn                 func(ctx context.Context, connectionName string, req applink.AppPublishRequest) (applink.AppPublish, error)
	AppPublishFn                       func(ctx context.Context, connectionName, id string) (applink.AppPublish, error)
	PublicationsFn                     func(ctx context.Context, connectionName string) ([]applink.Publication, error)
	CreateAppImportFn                  func(ctx context.Context, connectionName string, req applink.AppImportRequest) (applink.AppImport, error)
	AppImportFn                        func(ctx context.Context, connectionName, id string) (applink.AppImport, error)
	CreateDataActionTargetFn           func(ctx context.Context, connectionName string, req applink.DataActionTargetRequest) (applink.DataActionTarget, error)
	DataActionTargetFn                 func(ctx context.Context, connectionName, apiName string) (applink.DataActionTarget, error)
}

// Connections calls the mocked Connections implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) Connections(ctx context.Context) ([]applink.Connection, error) {
	if alc.ConnectionsFn != nil {
		return alc.ConnectionsFn(ctx)
	}
	return alc.Client.Connections(ctx)
}

// Connection calls the mocked Connection implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) Connection(ctx context.Context, name string) (applink.Connection, error) {
	if alc.ConnectionFn != nil {
		return alc.ConnectionFn(ctx, name)
	}
	return alc.Client.Connection(ctx, name)
}

// DeleteConnection calls the mocked DeleteConnection implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) DeleteConnection(ctx context.Context, name string) (applink.Connection, error) {
	if alc.DeleteConnectionFn != nil {
		return alc.DeleteConnectionFn(ctx, name)
	}
	return alc.Client.DeleteConnection(ctx, name)
}

// CreateSalesforceConnection calls the mocked CreateSalesforceConnection implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) CreateSalesforceConnection(ctx context.Context, req applink.OrgRequest) (applink.Connection, error) {
	if alc.CreateSalesforceConnectionFn != nil {
		return alc.CreateSalesforceConnectionFn(ctx, req)
	}
	return alc.Client.CreateSalesforceConnection(ctx, req)
}

// CreateSalesforceJWTConnection calls the mocked CreateSalesforceJWTConnection implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) CreateSalesforceJWTConnection(ctx context.Context, req applink.JWTOrgRequest) (applink.Connection, error) {
	if alc.CreateSalesforceJWTConnectionFn != nil {
		return alc.CreateSalesforceJWTConnectionFn(ctx, req)
	}
	return alc.Client.CreateSalesforceJWTConnection(ctx, req)
}

// CreateDataCloudConnection calls the mocked CreateDataCloudConnection implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) CreateDataCloudConnection(ctx context.Context, req applink.OrgRequest) (applink.Connection, error) {
	if alc.CreateDataCloudConnectionFn != nil {
		return alc.CreateDataCloudConnectionFn(ctx, req)
	}
	return alc.Client.CreateDataCloudConnection(ctx, req)
}

// Authorizations calls the mocked Authorizations implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) Authorizations(ctx context.Context) ([]applink.Authorization, error) {
	if alc.AuthorizationsFn != nil {
		return alc.AuthorizationsFn(ctx)
	}
	return alc.Client.Authorizations(ctx)
}

// Authorization calls the mocked Authorization implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) Authorization(ctx context.Context, developerName string) (applink.Authorization, error) {
	if alc.AuthorizationFn != nil {
		return alc.AuthorizationFn(ctx, developerName)
	}
	return alc.Client.Authorization(ctx, developerName)
}

// DeleteAuthorization calls the mocked DeleteAuthorization implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) DeleteAuthorization(ctx context.Context, developerName string) (applink.Authorization, error) {
	if alc.DeleteAuthorizationFn != nil {
		return alc.DeleteAuthorizationFn(ctx, developerName)
	}
	return alc.Client.DeleteAuthorization(ctx, developerName)
}

// CreateSalesforceAuthorization calls the mocked CreateSalesforceAuthorization implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) CreateSalesforceAuthorization(ctx context.Context, req applink.AuthorizationRequest) (applink.Authorization, error) {
	if alc.CreateSalesforceAuthorizationFn != nil {
		return alc.CreateSalesforceAuthorizationFn(ctx, req)
	}
	return alc.Client.CreateSalesforceAuthorization(ctx, req)
}

// CreateSalesforceJWTAuthorization calls the mocked CreateSalesforceJWTAuthorization implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) CreateSalesforceJWTAuthorization(ctx context.Context, req applink.JWTAuthorizationRequest) (applink.Authorization, error) {
	if alc.CreateSalesforceJWTAuthorizationFn != nil {
		return alc.CreateSalesforceJWTAuthorizationFn(ctx, req)
	}
	return alc.Client.CreateSalesforceJWTAuthorization(ctx, req)
}

// CreateDataCloudJWTAuthorization calls the mocked CreateDataCloudJWTAuthorization implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) CreateDataCloudJWTAuthorization(ctx context.Context, req applink.JWTAuthorizationRequest) (applink.Authorization, error) {
	if alc.CreateDataCloudJWTAuthorizationFn != nil {
		return alc.CreateDataCloudJWTAuthorizationFn(ctx, req)
	}
	return alc.Client.CreateDataCloudJWTAuthorization(ctx, req)
}

// CreateAppPublish calls the mocked CreateAppPublish implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) CreateAppPublish(ctx context.Context, connectionName string, req applink.AppPublishRequest) (applink.AppPublish, error) {
	if alc.CreateAppPublishFn != nil {
		return alc.CreateAppPublishFn(ctx, connectionName, req)
	}
	return alc.Client.CreateAppPublish(ctx, connectionName, req)
}

// AppPublish calls the mocked AppPublish implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) AppPublish(ctx context.Context, connectionName, id string) (applink.AppPublish, error) {
	if alc.AppPublishFn != nil {
		return alc.AppPublishFn(ctx, connectionName, id)
	}
	return alc.Client.AppPublish(ctx, connectionName, id)
}

// Publications calls the mocked Publications implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) Publications(ctx context.Context, connectionName string) ([]applink.Publication, error) {
	if alc.PublicationsFn != nil {
		return alc.PublicationsFn(ctx, connectionName)
	}
	return alc.Client.Publications(ctx, connectionName)
}

// CreateAppImport calls the mocked CreateAppImport implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) CreateAppImport(ctx context.Context, connectionName string, req applink.AppImportRequest) (applink.AppImport, error) {
	if alc.CreateAppImportFn != nil {
		return alc.CreateAppImportFn(ctx, connectionName, req)
	}
	return alc.Client.CreateAppImport(ctx, connectionName, req)
}

// AppImport calls the mocked AppImport implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) AppImport(ctx context.Context, connectionName, id string) (applink.AppImport, error) {
	if alc.AppImportFn != nil {
		return alc.AppImportFn(ctx, connectionName, id)
	}
	return alc.Client.AppImport(ctx, connectionName, id)
}

// CreateDataActionTarget calls the mocked CreateDataActionTarget implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) CreateDataActionTarget(ctx context.Context, connectionName string, req applink.DataActionTargetRequest) (applink.DataActionTarget, error) {
	if alc.CreateDataActionTargetFn != nil {
		return alc.CreateDataActionTargetFn(ctx, connectionName, req)
	}
	return alc.Client.CreateDataActionTarget(ctx, connectionName, req)
}

// DataActionTarget calls the mocked DataActionTarget implementation if provided,
// otherwise the call falls back to the underlying applink.Client implementation.
// NOTE: this may panic if the underlying applink.Client is left undefined
func (alc AppLinkClient) DataActionTarget(ctx context.Context, connectionName, apiName string) (applink.DataActionTarget, error) {
	if alc.DataActionTargetFn != nil {
		return alc.DataActionTargetFn(ctx, connectionName, apiName)
	}
	return alc.Client.DataActionTarget(ctx, connectionName, apiName)
}
