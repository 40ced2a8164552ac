package create_appointment

import "errors"

var (
	// ErrMissingField is returned when a required input is absent
	ErrMissingField = errors.New("create_appointment: missing required field")

	// ErrInvalidTime is returned when the start time is not a valid "HH:MM"
	ErrInvalidTime = errors.New("create_appointment: invalid start time")

	// ErrClosedDay is returned when the date falls on a non-operating weekday
	ErrClosedDay = errors.New("create_appointment: salon is closed on this day")

	// ErrOutsideBusinessHours is returned when the requested slot does not
	// fit inside the operating window, buffer included
	ErrOutsideBusinessHours = errors.New("create_appointment: slot outside business hours")

	// ErrSlotTaken is returned when the requested interval overlaps an
	// existing appointment at commit time
	ErrSlotTaken = errors.New("create_appointment: slot already taken")

	// ErrStorage is returned when persistence fails; no partial insert remains
	ErrStorage = errors.New("create_appointment: storage failure")
)
