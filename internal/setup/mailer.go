package setup

import (
	"context"

	"github.com/lumapix/lumapix/internal/adapter/memory"
	"github.com/lumapix/lumapix/internal/adapter/smtp"
	"github.com/lumapix/lumapix/internal/config"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/pkg/errors"
)

var getMailerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.Mailer, error) {
	if !conf.SMTP.Enabled {
		return memory.NewMailer(), nil
	}

	mailer, err := smtp.NewMailer(conf.SMTP.Host, conf.SMTP.Port, conf.SMTP.Username, conf.SMTP.Password, conf.SMTP.From)
	if err != nil {
		return nil, errors.Wrap(err, "could not create smtp mailer from config")
	}

	return mailer, nil
})
