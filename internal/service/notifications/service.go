package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/millynails/MN-BookingService/internal/domain"
)

// Service formats and delivers WhatsApp notifications. Every send is
// best-effort: failures are logged and recorded, never propagated into
// booking state.
type Service struct {
	client     WhatsAppClient
	repo       AppointmentRepository
	adminPhone string
	metrics    MetricsRecorder
	logger     Logger
}

// NewService creates the notifications service. adminPhone is a full
// WhatsApp address for the salon owner. metrics may be nil.
func NewService(client WhatsAppClient, repo AppointmentRepository, adminPhone string, metrics MetricsRecorder, logger Logger) *Service {
	return &Service{
		client:     client,
		repo:       repo,
		adminPhone: adminPhone,
		metrics:    metrics,
		logger:     logger,
	}
}

// AppointmentCreated sends the booking confirmation to the client and a
// summary to the admin. The first failure is returned so the caller can
// log it; partial delivery is acceptable.
func (s *Service) AppointmentCreated(ctx context.Context, appt *domain.Appointment) error {
	if err := s.client.SendMessage(ctx, whatsappAddress(appt.ClientPhone), confirmationBody(appt)); err != nil {
		s.recordNotification(ctx, appt.ID, domain.NotificationConfirmation, domain.NotificationFailed)
		return fmt.Errorf("%w: client confirmation for appointment id=%d: %v", ErrSendFailed, appt.ID, err)
	}
	s.recordNotification(ctx, appt.ID, domain.NotificationConfirmation, domain.NotificationSent)

	if err := s.client.SendMessage(ctx, s.adminPhone, adminNewAppointmentBody(appt)); err != nil {
		return fmt.Errorf("%w: admin summary for appointment id=%d: %v", ErrSendFailed, appt.ID, err)
	}

	return nil
}

// SendDailyReminders delivers a reminder to every client with a confirmed
// appointment on date, marks those appointments notified, and closes with
// an admin digest. Per-client failures are logged and skipped. Returns the
// number of reminders delivered.
func (s *Service) SendDailyReminders(ctx context.Context, date time.Time) (int, error) {
	appts, err := s.repo.GetByDateAndStatus(ctx, date, domain.StatusConfirmed)
	if err != nil {
		s.logger.Error("SendDailyReminders: failed to load appointments for %s: %v",
			date.Format(domain.DateFormat), err)
		return 0, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	if len(appts) == 0 {
		s.logger.Info("SendDailyReminders: no appointments on %s", date.Format(domain.DateFormat))
		return 0, nil
	}

	sent := 0
	for _, appt := range appts {
		if err := s.client.SendMessage(ctx, whatsappAddress(appt.ClientPhone), reminderBody(appt)); err != nil {
			s.logger.Error("SendDailyReminders: failed to remind client %s (appointment id=%d): %v",
				appt.ClientName, appt.ID, err)
			s.recordNotification(ctx, appt.ID, domain.NotificationReminder, domain.NotificationFailed)
			continue
		}

		s.recordNotification(ctx, appt.ID, domain.NotificationReminder, domain.NotificationSent)

		if err := s.repo.UpdateStatus(ctx, appt.ID, domain.StatusNotified); err != nil {
			s.logger.Error("SendDailyReminders: failed to mark appointment id=%d notified: %v", appt.ID, err)
		}
		sent++
	}

	if err := s.client.SendMessage(ctx, s.adminPhone, adminDigestBody(appts)); err != nil {
		s.logger.Error("SendDailyReminders: failed to send admin digest: %v", err)
	}

	s.logger.Info("SendDailyReminders: %d/%d reminders delivered for %s",
		sent, len(appts), date.Format(domain.DateFormat))
	return sent, nil
}

func (s *Service) recordNotification(ctx context.Context, appointmentID int64, kind domain.NotificationKind, status domain.NotificationStatus) {
	if s.metrics != nil {
		if status == domain.NotificationSent {
			s.metrics.IncNotificationSent(string(kind))
		} else {
			s.metrics.IncNotificationFailed(string(kind))
		}
	}

	n := &domain.Notification{
		AppointmentID: appointmentID,
		Kind:          kind,
		Status:        status,
	}
	if err := s.repo.CreateNotification(ctx, n); err != nil {
		s.logger.Warn("recordNotification: failed to record %s/%s for appointment id=%d: %v",
			kind, status, appointmentID, err)
	}
}
