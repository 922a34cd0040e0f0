package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/pkg/errors"
)

type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer records outbound messages instead of delivering them. Used in
// tests and when no SMTP transport is configured.
type Mailer struct {
	mu      sync.Mutex
	sent    []Mail
	failErr error
}

// SendMail implements [port.Mailer].
func (m *Mailer) SendMail(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failErr != nil {
		return errors.WithStack(m.failErr)
	}

	m.sent = append(m.sent, Mail{To: to, Subject: subject, Body: body})

	slog.DebugContext(ctx, "mail recorded", slog.String("to", to), slog.String("subject", subject))

	return nil
}

func (m *Mailer) Sent() []Mail {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]Mail{}, m.sent...)
}

// FailWith makes every subsequent SendMail call return the given error.
func (m *Mailer) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failErr = err
}

var _ port.Mailer = &Mailer{}

func NewMailer() *Mailer {
	return &Mailer{
		sent: []Mail{},
	}
}
