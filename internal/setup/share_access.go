package setup

import (
	"context"

	"github.com/lumapix/lumapix/internal/config"
	"github.com/lumapix/lumapix/internal/core/service"
	"github.com/pkg/errors"
)

var getShareAccessFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.ShareAccess, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create store from config")
	}

	return service.NewShareAccess(store, service.NewContentResolver(store)), nil
})
