package create_appointment

import (
	"context"
	"time"

	"github.com/millynails/MN-BookingService/internal/domain"
)

// AppointmentRepository is the storage surface the use case needs
type AppointmentRepository interface {
	// GetByDate returns the day's appointments; inside a transaction the
	// rows are locked until commit
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager serializes the availability re-check and the insert
// against concurrent commits for the same date
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers the booking confirmation. Best-effort: failures must
// never affect the committed appointment.
type Notifier interface {
	AppointmentCreated(ctx context.Context, appt *domain.Appointment) error
}

// MetricsRecorder counts booking outcomes. Implementations must be safe
// for concurrent use; a nil recorder disables counting.
type MetricsRecorder interface {
	IncAppointmentsCreated()
	IncSlotConflicts()
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
