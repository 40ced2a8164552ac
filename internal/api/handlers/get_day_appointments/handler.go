package get_day_appointments

import (
	"net/http"
	"time"

	"github.com/millynails/MN-BookingService/internal/api/handlers"
	"github.com/millynails/MN-BookingService/internal/domain"
)

const (
	msgInvalidDate = "formato de data inválido, esperado YYYY-MM-DD"
	msgInternal    = "erro ao buscar agendamentos do dia"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: date (optional, YYYY-MM-DD, defaults to today)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		dateStr = time.Now().Format(domain.DateFormat)
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	appts, err := h.service.DayAppointments(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /appointments - Failed: date=%s, error=%v", dateStr, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(dateStr, appts))
}
