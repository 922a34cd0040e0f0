package setup

import (
	"context"

	"github.com/lumapix/lumapix/internal/config"
	"github.com/lumapix/lumapix/internal/http/handler/api"
	"github.com/pkg/errors"
)

var getAPIHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	shareManager, err := getShareManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create share manager from config")
	}

	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create store from config")
	}

	return api.NewHandler(shareManager, store, store, store), nil
})
