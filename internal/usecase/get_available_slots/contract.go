package get_available_slots

import (
	"context"
	"time"

	"github.com/millynails/MN-BookingService/internal/domain"
)

// AppointmentRepository is the storage surface the use case needs
type AppointmentRepository interface {
	// GetByDate returns the day's appointments ordered by start time
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
