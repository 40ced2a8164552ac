package notifications

import "errors"

var (
	// ErrSendFailed is returned when a WhatsApp message could not be delivered.
	// Callers treat it as best-effort: it is logged, never rolled back on.
	ErrSendFailed = errors.New("notifications service: failed to send message")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("notifications service: internal error")
)
