package get_day_appointments

import (
	"github.com/millynails/MN-BookingService/internal/domain"
)

// DayAppointmentsResponse HTTP response model
type DayAppointmentsResponse struct {
	Date         string        `json:"date"`
	Total        int           `json:"total"`
	Appointments []Appointment `json:"appointments"`
}

// Appointment is one row in the day listing
type Appointment struct {
	ID              int64  `json:"id"`
	ClientName      string `json:"clientName"`
	ClientPhone     string `json:"clientPhone"`
	Service         string `json:"service"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
}

// FromDomain converts the day's appointments into the HTTP response
func FromDomain(dateStr string, appts []*domain.Appointment) *DayAppointmentsResponse {
	rows := make([]Appointment, len(appts))
	for i, appt := range appts {
		// Stored rows always carry a valid start time; on a bad row the
		// end time is simply omitted rather than failing the listing
		endTime, _ := appt.StartTime.AddMinutes(appt.DurationMinutes)

		rows[i] = Appointment{
			ID:              appt.ID,
			ClientName:      appt.ClientName,
			ClientPhone:     appt.ClientPhone,
			Service:         appt.ServiceName,
			StartTime:       appt.StartTime.String(),
			EndTime:         endTime.String(),
			DurationMinutes: appt.DurationMinutes,
			Status:          string(appt.Status),
		}
	}

	return &DayAppointmentsResponse{
		Date:         dateStr,
		Total:        len(rows),
		Appointments: rows,
	}
}
