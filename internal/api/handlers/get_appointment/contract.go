package get_appointment

import (
	"context"

	"github.com/millynails/MN-BookingService/internal/domain"
)

type AppointmentsService interface {
	Appointment(ctx context.Context, id int64) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
