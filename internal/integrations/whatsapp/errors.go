package whatsapp

import "errors"

var (
	// ErrSendFailed is returned when Twilio rejects the message
	ErrSendFailed = errors.New("whatsapp client: failed to send message")

	// ErrInvalidResponse is returned when the Twilio response cannot be parsed
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")

	// ErrInternal is returned on transport-level failures
	ErrInternal = errors.New("whatsapp client: internal error")
)
