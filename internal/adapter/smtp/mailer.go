package smtp

import (
	"context"

	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"
)

// Mailer delivers notifications over SMTP.
type Mailer struct {
	client *mail.Client
	from   string
}

// SendMail implements [port.Mailer].
func (m *Mailer) SendMail(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()

	if err := msg.From(m.from); err != nil {
		return errors.WithStack(err)
	}

	if err := msg.To(to); err != nil {
		return errors.WithStack(err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var _ port.Mailer = &Mailer{}

func NewMailer(host string, port int, username, password, from string) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}

	if username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}

	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Mailer{
		client: client,
		from:   from,
	}, nil
}
