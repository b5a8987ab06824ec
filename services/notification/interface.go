package notification

import "context"

// Email is a single outbound message. From is optional; the sender falls back
// to its configured business address.
type Email struct {
	To       string
	Subject  string
	HTMLBody string
	From     string
}

// Sender delivers booking lifecycle emails. Implementations must be
// best-effort: a failed or skipped send never aborts the booking mutation
// that triggered it.
type Sender interface {
	Send(ctx context.Context, msg Email) error
}
