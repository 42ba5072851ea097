package mock

import (
	"context"

	"github.com/heroku/applink-cli/internal/cloud/events"
)

// EventsClient is a mocked Heroku Events add-on api client
type EventsClient struct {
	events.Client
	AuthorizationsFn                func(ctx context.Context) ([]events.Authorization, error)
	AuthorizationFn                 func(ctx context.Context, name string) (events.Authorization, error)
	CreateSalesforceAuthorizationFn func(ctx context.Context, req events.AuthorizationRequest) (events.Authorization, error)
	DeleteAuthorizationFn           func(ctx context.Context, name string) error
	PublicationsFn                  func(ctx context.Context) ([]events.Publication, error)
	PublicationFn                   func(ctx context.Context, name string) (events.Publication, error)
	CreatePublicationFn             func(ctx context.Context, req events.PublicationRequest) (events.Publication, error)
	DeletePublicationFn             func(ctx context.Context, name string) error
	SubscriptionsFn                 func(ctx context.Context) ([]events.Subscription, error)
	SubscriptionFn                  func(ctx context.Context, name string) (events.Subscription, error)
	CreateSubscriptionFn            func(ctx context.Context, req events.SubscriptionRequest) (events.Subscription, error)
	DeleteSubscriptionFn            func(ctx context.Context, name string) error
}

// Authorizations calls the mocked Authorizations implementation if provided,
// otherwise the call falls back to the underlying events.Client implementation.
// NOTE: this may panic if the underlying events.Client is left undefined
func (ec EventsClient) Authorizations(ctx context.Context) ([]events.Authorization, error) {
	if ec.AuthorizationsFn != nil {
		return ec.AuthorizationsFn(ctx)
	}
	return ec.Client.Authorizations(ctx)
}

// Authorization calls the mocked Authorization implementation if provided,
// otherwise the call falls back to the underlying events.Client implementation.
// NOTE: this may panic if the underlying events.Client is left undefined
func (ec EventsClient) Authorization(ctx context.Context, name string) (events.Authorization, error) {
	if ec.AuthorizationFn != nil {
		return ec.AuthorizationFn(ctx, name)
	}
	return ec.Client.Authorization(ctx, name)
}

// CreateSalesforceAuthorization calls the mocked CreateSalesforceAuthorization implementation if provided,
// otherwise the call falls back to the underlying events.Client implementation.
// NOTE: this may panic if the underlying events.Client is left undefined
func (ec EventsClient) CreateSalesforceAuthorization(ctx context.Context, req events.AuthorizationRequest) (events.Authorization, error) {
	if ec.CreateSalesforceAuthorizationFn != nil {
		return ec.CreateSalesforceAuthorizationFn(ctx, req)
	}
	return ec.Client.CreateSalesforceAuthorization(ctx, req)
}

// DeleteAuthorization calls the mocked DeleteAuthorization implementation if provided,
// otherwise the call falls back to the underlying events.Client implementation.
// NOTE: this may panic if the underlying events.Client is left undefined
func (ec EventsClient) DeleteAuthorization(ctx context.Context, name string) error {
	if ec.DeleteAuthorizationFn != nil {
		return ec.DeleteAuthorizationFn(ctx, name)
	}
	return ec.Client.DeleteAuthorization(ctx, name)
}

// Publications calls the mocked Publications implementation if provided,
// otherwise the call falls back to the underlying events.Client implementation.
// NOTE: this may panic if the underlying events.Client is left undefined
func (ec EventsClient) Publications(ctx context.Context) ([]events.Publication, error) {
	if ec.PublicationsFn != nil {
		return ec.PublicationsFn(ctx)
	}
	return ec.Client.Publications(ctx)
}

// Publication calls the mocked Publication implementation if provided,
// otherwise the call falls back to the underlying events.Client implementation.
// NOTE: this may panic if the underlying events.Client is left undefined
func (ec EventsClient) Publication(ctx context.Context, name string) (events.Publication, error) {
	if ec.PublicationFn != nil {
		return ec.PublicationFn(ctx, name)
	}
	return ec.Client.Publication(ctx, name)
}

// CreatePublication calls the mocked CreatePublication implementation if provided,
// otherwise the call falls back to the underlying events.Client implementation.
// NOTE: this may panic if the underlying events.Client is left undefined
func (ec EventsClient) CreatePublication(ctx context.Context, req events.PublicationRequest) (events.Publication, error) {
	if ec.CreatePublicationFn != nil {
		return ec.CreatePublicationFn(ctx, req)
	}
	return ec.Client.CreatePublication(ctx, req)
}

// DeletePublication calls the mocked DeletePublication implementation if provided,
// otherwise the call falls back to the underlying events.Client implementation.
// NOTE: this may panic if the underlying events.Client is left undefined
func (ec EventsClient) DeletePublication(ctx context.Context, name string) error {
	if ec.DeletePublicationFn != nil {
		return ec.DeletePublicationFn(ctx, name)
	}
	return ec.Client.DeletePublication(ctx, name)
}

// Subscriptions calls the mocked Subscriptions implementation if provided,
// otherwise the call falls back to the underlying events.Client implementation.
// NOTE: this may panic if the underlying events.Client is left undefined
func (ec EventsClient) Subscriptions(ctx context.Context) ([]events.Subscription, error) {
	if ec.SubscriptionsFn != nil {
		return ec.SubscriptionsFn(ctx)
	}
	return ec.Client.Subscriptions(ctx)
}

// Subscription calls the mocked Subscription implementation if provided,
// otherwise the call falls back to the underlying events.Client implementation.
// NOTE: this may panic if the underlying events.Client is left undefined
func (ec EventsClient) Subscription(ctx context.Context, name string) (events.Subscription, error) {
	if ec.SubscriptionFn != nil {
		return ec.SubscriptionFn(ctx, name)
	}
	return ec.Client.Subscription(ctx, name)
}

// CreateSubscription calls the mocked CreateSubscription implementation if provided,
// otherwise the call falls back to the underlying events.Client implementation.
// NOTE: this may panic if the underlying events.Client is left undefined
func (ec EventsClient) CreateSubscription(ctx context.Context, req events.SubscriptionRequest) (events.Subscription, error) {
	if ec.CreateSubscriptionFn != nil {
		return ec.CreateSubscriptionFn(ctx, req)
	}
	return ec.Client.CreateSubscription(ctx, req)
}

// DeleteSubscription calls the mocked DeleteSubscription implementation if provided,
// otherwise the call falls back to the underlying events.Client implementation.
// NOTE: this may panic if the underlying events.Client is left undefined
func (ec EventsClient) DeleteSubscription(ctx context.Context, name string) error {
	if ec.DeleteSubscriptionFn != nil {
		return ec.DeleteSubscriptionFn(ctx, name)
	}
	return ec.Client.DeleteSubscription(ctx, name)
}
