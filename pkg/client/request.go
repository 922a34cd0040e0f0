package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

func (c *Client) request(ctx context.Context, method string, path string, body io.Reader, result io.Writer) error {
	endpoint, err := url.Parse(path)
	if err != nil {
		return errors.WithStack(err)
	}

	endpoint.Scheme = c.baseURL.Scheme
	endpoint.Host = c.baseURL.Host
	endpoint.Path = c.baseURL.JoinPath(endpoint.Path).Path

	slog.DebugContext(ctx, "new client request", slog.String("method", method), slog.String("path", endpoint.Path), slog.String("host", endpoint.Host))

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("unexpected response code %d (%s)", res.StatusCode, res.Status)
	}

	if result != nil {
		if _, err := io.Copy(result, res.Body); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func (c *Client) jsonRequest(ctx context.Context, method string, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}

		reqBody = bytes.NewReader(data)
	}

	var buff bytes.Buffer

	if err := c.request(ctx, method, path, reqBody, &buff); err != nil {
		return errors.WithStack(err)
	}

	if result != nil {
		if err := json.Unmarshal(buff.Bytes(), result); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
