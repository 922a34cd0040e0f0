package port

import "context"

// Mailer dispatches outbound notifications. Delivery failures are
// non-fatal to already-persisted state; callers decide how to surface
// them.
type Mailer interface {
	SendMail(ctx context.Context, to, subject, body string) error
}
