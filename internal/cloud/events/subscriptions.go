package events

import (
	"context"
	"time"
)

const (
	subscriptionsPath = "/subscriptions"
)

// Subscription delivers org events to a target url
type Subscription struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Event          string     `json:"event"`
	ConnectionName string     `json:"connection_name"`
	TargetURL      string     `json:"target_url"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// SubscriptionRequest is the payload to create a subscription
type SubscriptionRequest struct {
	Name           string `json:"name"`
	Event          string `json:"event"`
	ConnectionName string `json:"connection_name"`
	TargetURL      string `json:"target_url"`
}

func (c *client) Subscriptions(ctx context.Context) ([]Subscription, error) {
	var subscriptions []Subscription
	if err := c.get(ctx, c.path(subscriptionsPath), &subscriptions); err != nil {
		return nil, err
	}
	return subscriptions, nil
}

func (c *client) Subscription(ctx context.Context, name string) (Subscription, error) {
	var subscription Subscription
	if err := c.get(ctx, c.path(subscriptionsPath, name), &subscription); err != nil {
		return Subscription{}, err
	}
	return subscription, nil
}

func (c *client) CreateSubscription(ctx context.Context, req SubscriptionRequest) (Subscription, error) {
	var subscription Subscription
	if err := c.create(ctx, c.path(subscriptionsPath), req, &subscription); err != nil {
		return Subscription{}, err
	}
	return subscription, nil
}

func (c *client) DeleteSubscription(ctx context.Context, name string) error {
	return c.delete(ctx, c.path(subscriptionsPath, name))
}
