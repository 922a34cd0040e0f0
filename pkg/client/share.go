package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lumapix/lumapix/internal/http/handler/api"
	"github.com/lumapix/lumapix/internal/http/handler/shared"
	"github.com/pkg/errors"
)

// CreateShares creates one share grant per content item and returns the
// resulting links.
func (c *Client) CreateShares(ctx context.Context, req api.CreateSharesRequest) (*api.CreateSharesResponse, error) {
	var res api.CreateSharesResponse
	if err := c.jsonRequest(ctx, http.MethodPost, "/api/v1/share", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

// ListShares lists the authenticated user's share grants.
func (c *Client) ListShares(ctx context.Context, page, limit int) (*api.ListSharesResponse, error) {
	var res api.ListSharesResponse

	endpoint := fmt.Sprintf("/api/v1/share?page=%d&limit=%d", page, limit)

	if err := c.jsonRequest(ctx, http.MethodGet, endpoint, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

// DeleteShare revokes a share grant by its id.
func (c *Client) DeleteShare(ctx context.Context, shareID string) error {
	endpoint := fmt.Sprintf("/api/v1/share/%s", shareID)

	if err := c.request(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// ResolveShare resolves a share token into its content payload. This is
// the public endpoint backing share links; it works without credentials
// for public grants.
func (c *Client) ResolveShare(ctx context.Context, token string) (*shared.ResolveShareResponse, error) {
	var res shared.ResolveShareResponse

	endpoint := fmt.Sprintf("/share/%s", token)

	if err := c.jsonRequest(ctx, http.MethodGet, endpoint, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}
