package client

import (
	"net/http"
	"net/url"
)

// Client is a small SDK for the Lumapix HTTP API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	username   string
	password   string
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		username:   opts.Username,
		password:   opts.Password,
	}
}
