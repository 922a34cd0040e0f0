package setup

import (
	"context"
	"net/url"

	"github.com/lumapix/lumapix/internal/config"
	"github.com/lumapix/lumapix/internal/core/service"
	"github.com/pkg/errors"
)

var getShareManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.ShareManager, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create store from config")
	}

	mailer, err := getMailerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create mailer from config")
	}

	baseURL, err := url.Parse(conf.HTTP.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse base url '%s'", conf.HTTP.BaseURL)
	}

	manager := service.NewShareManager(
		store, store,
		service.NewContentResolver(store),
		service.NewTokenIssuer(),
		mailer,
		baseURL,
		service.WithTokenRetries(conf.Share.TokenRetries),
	)

	return manager, nil
})
