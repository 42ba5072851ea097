package events

import (
	"context"
	"time"
)

const (
	publicationsPath = "/publications"
)

// Publication forwards events of the app to an authorized org
type Publication struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Event          string     `json:"event"`
	ConnectionName string     `json:"connection_name"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// PublicationRequest is the payload to create a publication
type PublicationRequest struct {
	Name           string `json:"name"`
	Event          string `json:"event"`
	ConnectionName string `json:"connection_name"`
}

func (c *client) Publications(ctx context.Context) ([]Publication, error) {
	var publications []Publication
	if err := c.get(ctx, c.path(publicationsPath), &publications); err != nil {
		return nil, err
	}
	return publications, nil
}

func (c *client) Publication(ctx context.Context, name string) (Publication, error) {
	var publication Publication
	if err := c.get(ctx, c.path(publicationsPath, name), &publication); err != nil {
		return Publication{}, err
	}
	return publication, nil
}

func (c *client) CreatePublication(ctx context.Context, req PublicationRequest) (Publication, error) {
	var publication Publication
	if err := c.create(ctx, c.path(publicationsPath), req, &publication); err != nil {
		return Publication{}, err
	}
	return publication, nil
}

func (c *client) DeletePublication(ctx context.Context, name string) error {
	return c.delete(ctx, c.path(publicationsPath, name))
}
