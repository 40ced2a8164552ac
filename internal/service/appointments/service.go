package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/millynails/MN-BookingService/internal/domain"
	storageAppointment "github.com/millynails/MN-BookingService/internal/infra/storage/appointment"
)

// Service exposes read and status-transition operations over appointments
type Service struct {
	repo   AppointmentRepository
	logger Logger
}

// NewService creates the appointments service
func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Appointment returns a single appointment by id
func (s *Service) Appointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, storageAppointment.ErrAppointmentNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		s.logger.Error("Appointment: failed to load appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to load appointment: %v", ErrInternal, err)
	}
	return appt, nil
}

// DayAppointments returns all appointments for the given calendar day,
// ordered by start time. A snapshot read, no locking.
func (s *Service) DayAppointments(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	appts, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("DayAppointments: failed to load appointments for %s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	s.logger.Info("DayAppointments: %d appointments on %s", len(appts), date.Format(domain.DateFormat))
	return appts, nil
}

// MarkNotified transitions an appointment to the notified status after its
// reminder was delivered.
func (s *Service) MarkNotified(ctx context.Context, id int64) error {
	err := s.repo.UpdateStatus(ctx, id, domain.StatusNotified)
	if errors.Is(err, storageAppointment.ErrAppointmentNotFound) {
		return ErrAppointmentNotFound
	}
	if err != nil {
		s.logger.Error("MarkNotified: failed to update appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}
	return nil
}
