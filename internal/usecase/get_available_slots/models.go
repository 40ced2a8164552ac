package get_available_slots

import (
	"time"

	"github.com/millynails/MN-BookingService/pkg/types"
)

// Request is the availability query input
type Request struct {
	ServiceName string    // exact catalog key; unknown names get the default duration
	Date        time.Time // calendar day, no time component
}

// Response lists the open start times for the requested service and day
type Response struct {
	Date            time.Time
	ServiceName     string
	DurationMinutes int // resolved service duration
	Slots           []types.TimeString
}
