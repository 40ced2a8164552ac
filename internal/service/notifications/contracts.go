package notifications

import (
	"context"
	"time"

	"github.com/millynails/MN-BookingService/internal/domain"
)

// WhatsAppClient is the message delivery surface the service needs
type WhatsAppClient interface {
	SendMessage(ctx context.Context, to, body string) error
}

// AppointmentRepository is the storage surface the service needs
type AppointmentRepository interface {
	GetByDateAndStatus(ctx context.Context, date time.Time, status domain.AppointmentStatus) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	CreateNotification(ctx context.Context, n *domain.Notification) error
}

// MetricsRecorder counts delivery outcomes per notification kind.
// A nil recorder disables counting.
type MetricsRecorder interface {
	IncNotificationSent(kind string)
	IncNotificationFailed(kind string)
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
