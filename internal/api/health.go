package api

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// CheckHealth pings the backend.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	health := &Health{}
	if err := c.do(ctx, http.MethodGet, "/health", nil, health); err != nil {
		return nil, errors.Wrap(err, "checking health")
	}
	return health, nil
}
