package client

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RetryTransport retries requests rejected with 429, honoring the
// Retry-After header when the server sends one.
type RetryTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
}

func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	var res *http.Response
	var err error

	for attempt := 0; attempt <= t.MaxRetries; attempt++ {
		res, err = transport.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if res.StatusCode != http.StatusTooManyRequests {
			return res, nil
		}

		// The last 429 is handed back to the caller with its body intact.
		if attempt == t.MaxRetries {
			break
		}

		io.Copy(io.Discard, res.Body)
		res.Body.Close()

		wait := t.waitTime(res)

		slog.WarnContext(req.Context(), "rate limited, retrying", slog.Duration("wait", wait), slog.Int("attempt", attempt+1))

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(wait):
		}

		if req.GetBody != nil {
			newBody, err := req.GetBody()
			if err != nil {
				return nil, errors.Wrap(err, "could not rewind request body")
			}
			req.Body = newBody
		} else if req.Body != nil {
			return nil, errors.New("cannot retry request with one-time reader body")
		}
	}

	return res, nil
}

func (t *RetryTransport) waitTime(res *http.Response) time.Duration {
	retryAfter := res.Header.Get("Retry-After")
	if retryAfter == "" {
		return t.DefaultWait
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if date, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(date)
	}

	return t.DefaultWait
}
