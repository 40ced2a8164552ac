package get_available_slots

import "errors"

var (
	// ErrMissingField is returned when a required input is absent
	ErrMissingField = errors.New("get_available_slots: missing required field")

	// ErrClosedDay is returned when the date falls on a non-operating weekday
	ErrClosedDay = errors.New("get_available_slots: salon is closed on this day")

	// ErrStorage is returned when loading existing appointments fails
	ErrStorage = errors.New("get_available_slots: storage failure")
)
