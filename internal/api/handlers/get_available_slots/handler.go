package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/millynails/MN-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/millynails/MN-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingParams = "serviço e data são obrigatórios"
	msgInvalidDate   = "formato de data inválido, esperado YYYY-MM-DD"
	msgClosedDay     = "não atendemos aos domingos e segundas-feiras"
	msgInternal      = "erro ao buscar horários disponíveis"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: service (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	service := r.URL.Query().Get("service")
	dateStr := r.URL.Query().Get("date")

	if service == "" || dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing service or date")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(service, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrClosedDay):
			h.logger.Warn("GET /available-slots - Closed day: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, getAvailableSlots.ErrMissingField):
			handlers.RespondBadRequest(w, msgMissingParams)

		default:
			h.logger.Error("GET /available-slots - Failed: service=%q, date=%s, error=%v",
				service, dateStr, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	h.logger.Info("GET /available-slots - %d slots for service=%q, date=%s",
		len(result.Slots), service, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
