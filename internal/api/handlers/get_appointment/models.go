package get_appointment

import (
	"time"

	"github.com/millynails/MN-BookingService/internal/domain"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	ClientName      string `json:"clientName"`
	ClientPhone     string `json:"clientPhone"`
	Service         string `json:"service"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// FromDomain converts the appointment into the HTTP response
func FromDomain(appt *domain.Appointment) *AppointmentResponse {
	// Omitted rather than failing the lookup if the stored row is malformed
	endTime, _ := appt.StartTime.AddMinutes(appt.DurationMinutes)

	return &AppointmentResponse{
		ID:              appt.ID,
		ClientName:      appt.ClientName,
		ClientPhone:     appt.ClientPhone,
		Service:         appt.ServiceName,
		Date:            appt.Date.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		EndTime:         endTime.String(),
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       appt.UpdatedAt.Format(time.RFC3339),
	}
}
