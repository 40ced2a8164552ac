package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/millynails/MN-BookingService/internal/domain"
	storageAppointment "github.com/millynails/MN-BookingService/internal/infra/storage/appointment"
)

// notifyTimeout bounds the fire-and-forget notification attempt
const notifyTimeout = 10 * time.Second

// UseCase commits a booking. The availability re-check and the insert run
// in one serializable transaction over the day's locked rows, so two
// concurrent commits for overlapping slots cannot both succeed; the unique
// (date, start_time) index backstops exact duplicates across instances.
type UseCase struct {
	repo      AppointmentRepository
	txManager TransactionManager
	notifier  Notifier
	calendar  domain.BusinessCalendar
	metrics   MetricsRecorder
	logger    Logger
}

// NewUseCase creates the booking use case. metrics may be nil.
func NewUseCase(repo AppointmentRepository, txManager TransactionManager, notifier Notifier, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		repo:      repo,
		txManager: txManager,
		notifier:  notifier,
		calendar:  domain.SalonCalendar,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute validates and commits the requested appointment
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate inputs
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: client=%q, service=%q, date=%s, time=%s",
		req.ClientName, req.ServiceName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 2. Closed weekdays are rejected before touching storage
	if uc.calendar.IsClosedOn(req.Date) {
		uc.logger.Warn("CreateAppointment: closed on %s (%s)",
			req.Date.Format(domain.DateFormat), req.Date.Weekday())
		return nil, ErrClosedDay
	}

	// 3. Resolve the service duration and check the operating window
	duration := domain.ServiceDuration(req.ServiceName)

	startMinute, err := req.StartTime.MinuteOfDay()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	if err := validateWithinHours(uc.calendar, startMinute, duration); err != nil {
		uc.logger.Warn("CreateAppointment: slot %s outside business hours", req.StartTime)
		return nil, err
	}

	requested := domain.BufferedInterval(startMinute, duration)

	var result *domain.Appointment

	// 4. Re-check availability and insert atomically. The availability
	// query a client saw earlier is only a hint, never a reservation:
	// another client may have committed in between, so SlotTaken must be
	// reachable here.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appts, err := uc.repo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load appointments: %v", err)
			// Wrapped, not flattened: the transaction manager inspects the
			// chain to decide whether the attempt is retryable
			return fmt.Errorf("%w: failed to load appointments: %w", ErrStorage, err)
		}

		for _, appt := range appts {
			apptStart, err := appt.StartTime.MinuteOfDay()
			if err != nil {
				continue
			}
			if requested.Intersects(domain.BufferedInterval(apptStart, appt.DurationMinutes)) {
				uc.logger.Warn("CreateAppointment: slot %s on %s conflicts with appointment id=%d",
					req.StartTime, req.Date.Format(domain.DateFormat), appt.ID)
				return ErrSlotTaken
			}
		}

		created, err := uc.repo.Create(txCtx, &domain.Appointment{
			ClientName:      req.ClientName,
			ClientPhone:     req.ClientPhone,
			ServiceName:     req.ServiceName,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Status:          domain.StatusConfirmed,
		})
		if errors.Is(err, storageAppointment.ErrSlotTaken) {
			return ErrSlotTaken
		}
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrStorage, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) && uc.metrics != nil {
			uc.metrics.IncSlotConflicts()
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncAppointmentsCreated()
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d", result.ID)

	// 5. Confirmation messages are fire-and-forget with their own bounded
	// context: a slow or failing notifier never blocks the response and
	// never rolls back the booking.
	uc.dispatchNotification(result)

	return &Response{
		ID:              result.ID,
		ClientName:      result.ClientName,
		ClientPhone:     result.ClientPhone,
		ServiceName:     result.ServiceName,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

func (uc *UseCase) dispatchNotification(appt *domain.Appointment) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.AppointmentCreated(ctx, appt); err != nil {
			uc.logger.Error("CreateAppointment: notification for appointment id=%d failed: %v", appt.ID, err)
		}
	}()
}
