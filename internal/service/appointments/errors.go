package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointments service: appointment not found")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("appointments service: internal error")
)
