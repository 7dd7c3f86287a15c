package service

import "context"

// Mailer is a fire-and-forget send. Failures are reported to the caller for
// logging or notification, never retried.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
