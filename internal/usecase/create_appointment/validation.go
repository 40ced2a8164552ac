package create_appointment

import (
	"fmt"

	"github.com/millynails/MN-BookingService/internal/domain"
)

// validateRequest checks required inputs and the start time format
func validateRequest(req *Request) error {
	if req.ClientName == "" {
		return fmt.Errorf("%w: client name is required", ErrMissingField)
	}
	if req.ClientPhone == "" {
		return fmt.Errorf("%w: client phone is required", ErrMissingField)
	}
	if req.ServiceName == "" {
		return fmt.Errorf("%w: service is required", ErrMissingField)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrMissingField)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrMissingField)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	return nil
}

// validateWithinHours checks that the slot, buffer included, fits inside
// the operating window. Keeps the invariant that every committed
// appointment lies within business hours.
func validateWithinHours(cal domain.BusinessCalendar, startMinute, duration int) error {
	if startMinute < cal.OpenMinute || startMinute+duration+domain.BufferMinutes > cal.CloseMinute {
		return ErrOutsideBusinessHours
	}
	return nil
}
