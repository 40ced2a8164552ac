package create_appointment

import (
	"time"

	"github.com/millynails/MN-BookingService/pkg/types"
)

// Request is the booking commit input
type Request struct {
	ClientName  string
	ClientPhone string
	ServiceName string           // exact catalog key; unknown names get the default duration
	Date        time.Time        // calendar day, no time component
	StartTime   types.TimeString // requested slot start, "HH:MM"
}

// Response is the persisted appointment
type Response struct {
	ID              int64
	ClientName      string
	ClientPhone     string
	ServiceName     string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
