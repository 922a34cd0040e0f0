package setup

import (
	"context"

	"github.com/lumapix/lumapix/internal/config"
	"github.com/lumapix/lumapix/internal/http"
	"github.com/lumapix/lumapix/internal/http/handler/metrics"
	"github.com/lumapix/lumapix/internal/http/handler/shared"
	"github.com/lumapix/lumapix/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	apiHandler, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	shareAccess, err := getShareAccessFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure share access from config")
	}

	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create store from config")
	}

	authnMiddleware := authn.Middleware(store)

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithAllowedOrigins(conf.HTTP.CORS.AllowedOrigins...),
		http.WithMount("/api/v1/", authnMiddleware(apiHandler)),
		http.WithMount("/share/", authnMiddleware(shared.NewHandler(shareAccess))),
		http.WithMount("/metrics/", metrics.NewHandler()),
	}

	server := http.NewServer(options...)

	return server, nil
}
