package trigger_reminders

import (
	"context"
	"time"
)

type NotificationsService interface {
	SendDailyReminders(ctx context.Context, date time.Time) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
