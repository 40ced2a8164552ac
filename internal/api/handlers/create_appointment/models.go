package create_appointment

import (
	"time"

	"github.com/millynails/MN-BookingService/internal/domain"
	createAppointment "github.com/millynails/MN-BookingService/internal/usecase/create_appointment"
	"github.com/millynails/MN-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	Service     string `json:"service"`
	Date        string `json:"date"`      // "2025-10-17"
	StartTime   string `json:"startTime"` // "10:30"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	ClientName      string `json:"clientName"`
	ClientPhone     string `json:"clientPhone"`
	Service         string `json:"service"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
// Field presence is checked by the use case; only formats are parsed here.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	var startTime types.TimeString
	if r.StartTime != "" {
		parsed, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
		startTime = parsed
	}

	return &createAppointment.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ServiceName: r.Service,
		Date:        date,
		StartTime:   startTime,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ClientName:      resp.ClientName,
		ClientPhone:     resp.ClientPhone,
		Service:         resp.ServiceName,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
