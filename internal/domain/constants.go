package domain

// Scheduling constants
const (
	// DefaultServiceDurationMinutes is used for service names missing from the catalog
	DefaultServiceDurationMinutes = 60

	// BufferMinutes is the cleanup interval charged after every appointment
	// before the next one may start
	BufferMinutes = 20

	// SlotStepMinutes is the fixed granularity of the candidate slot grid
	SlotStepMinutes = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
