package get_available_slots

import "fmt"

// validateRequest checks required inputs
func validateRequest(req *Request) error {
	if req.ServiceName == "" {
		return fmt.Errorf("%w: service is required", ErrMissingField)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrMissingField)
	}
	return nil
}
