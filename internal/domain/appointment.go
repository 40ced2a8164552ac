package domain

import (
	"time"

	"github.com/millynails/MN-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	// StatusConfirmed is set when the appointment is committed
	StatusConfirmed AppointmentStatus = "confirmed"

	// StatusNotified is set after the day-of reminder was delivered
	StatusNotified AppointmentStatus = "notified"
)

// Appointment represents a confirmed salon appointment
type Appointment struct {
	ID              int64
	ClientName      string
	ClientPhone     string
	ServiceName     string
	Date            time.Time // calendar day, no time component
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsNotified returns true if the reminder for this appointment was already sent
func (a *Appointment) IsNotified() bool {
	return a.Status == StatusNotified
}

// NotificationKind represents the kind of a sent notification
type NotificationKind string

const (
	NotificationReminder     NotificationKind = "reminder"
	NotificationConfirmation NotificationKind = "confirmation"
)

// NotificationStatus represents the delivery outcome of a notification
type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// Notification is a record of a WhatsApp message sent for an appointment
type Notification struct {
	ID            int64
	AppointmentID int64
	Kind          NotificationKind
	Status        NotificationStatus
	CreatedAt     time.Time
}
