package get_available_slots

import (
	"github.com/millynails/MN-BookingService/internal/domain"
)

// generateCandidateSlots produces the theoretical slot grid for one day,
// independent of existing appointments: start minutes from the calendar's
// opening time, stepping by the fixed granularity, keeping every start
// whose service duration plus the buffer still fits before closing. The
// buffer is charged against the closing boundary too, so the last bookable
// slot always leaves room to clean up before the salon closes.
func generateCandidateSlots(cal domain.BusinessCalendar, serviceDuration int) []int {
	candidates := make([]int, 0)

	for start := cal.OpenMinute; start < cal.CloseMinute; start += domain.SlotStepMinutes {
		if start+serviceDuration+domain.BufferMinutes > cal.CloseMinute {
			continue
		}
		candidates = append(candidates, start)
	}

	return candidates
}

// filterConflicting drops every candidate whose buffered interval
// intersects the buffered interval of an existing appointment. Order is
// preserved. Appointments with an unparseable start time are skipped.
func filterConflicting(candidates []int, serviceDuration int, appts []*domain.Appointment) []int {
	open := make([]int, 0, len(candidates))

	for _, start := range candidates {
		candidate := domain.BufferedInterval(start, serviceDuration)

		conflict := false
		for _, appt := range appts {
			apptStart, err := appt.StartTime.MinuteOfDay()
			if err != nil {
				continue
			}
			if candidate.Intersects(domain.BufferedInterval(apptStart, appt.DurationMinutes)) {
				conflict = true
				break
			}
		}

		if !conflict {
			open = append(open, start)
		}
	}

	return open
}
