package client

import (
	"context"
	"net/http"

	"github.com/lumapix/lumapix/internal/http/handler/api"
	"github.com/pkg/errors"
)

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, username, email, password string) (*api.RegisterResponse, error) {
	req := api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}

	var res api.RegisterResponse
	if err := c.jsonRequest(ctx, http.MethodPost, "/api/v1/register", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}
