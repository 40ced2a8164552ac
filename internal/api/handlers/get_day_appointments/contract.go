package get_day_appointments

import (
	"context"
	"time"

	"github.com/millynails/MN-BookingService/internal/domain"
)

type AppointmentsService interface {
	DayAppointments(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
