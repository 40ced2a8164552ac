package get_available_slots

import (
	"context"
	"fmt"

	"github.com/millynails/MN-BookingService/internal/domain"
	"github.com/millynails/MN-BookingService/pkg/types"
)

// UseCase computes the open slots for a service on a given day.
// A pure read: the result is a snapshot, not a reservation, and may race
// with a concurrent booking commit.
type UseCase struct {
	repo     AppointmentRepository
	calendar domain.BusinessCalendar
	logger   Logger
}

// NewUseCase creates the availability use case
func NewUseCase(repo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:     repo,
		calendar: domain.SalonCalendar,
		logger:   logger,
	}
}

// Execute runs the availability query
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate inputs
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: service=%q, date=%s",
		req.ServiceName, req.Date.Format(domain.DateFormat))

	// 2. Closed weekdays short-circuit with an explicit signal, not an
	// empty result
	if uc.calendar.IsClosedOn(req.Date) {
		uc.logger.Info("GetAvailableSlots: closed on %s (%s)",
			req.Date.Format(domain.DateFormat), req.Date.Weekday())
		return nil, ErrClosedDay
	}

	// 3. Resolve the service duration (unknown services fall back to the
	// default, never an error)
	duration := domain.ServiceDuration(req.ServiceName)

	// 4. Load the day's appointments
	appts, err := uc.repo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrStorage, err)
	}

	// 5. Generate the candidate grid, then drop conflicting slots
	candidates := generateCandidateSlots(uc.calendar, duration)
	open := filterConflicting(candidates, duration, appts)

	slots := make([]types.TimeString, len(open))
	for i, start := range open {
		slots[i] = types.FromMinuteOfDay(start)
	}

	uc.logger.Info("GetAvailableSlots: %d/%d slots open for service=%q on %s",
		len(slots), len(candidates), req.ServiceName, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceName:     req.ServiceName,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}
