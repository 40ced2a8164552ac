package create_appointment

import (
	"errors"
	"net/http"

	"github.com/millynails/MN-BookingService/internal/api/handlers"
	createAppointment "github.com/millynails/MN-BookingService/internal/usecase/create_appointment"
	"github.com/millynails/MN-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingFields      = "todos os campos são obrigatórios"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidTime        = "formato de horário inválido, esperado HH:MM"
	msgClosedDay          = "não atendemos aos domingos e segundas-feiras"
	msgOutsideHours       = "horário fora do funcionamento do salão"
	msgSlotTaken          = "horário não disponível"
	msgInternal           = "erro ao processar agendamento"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		if errors.Is(err, types.ErrInvalidTimeString) {
			h.logger.Warn("POST /appointments - Invalid start time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		h.logger.Warn("POST /appointments - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrMissingField):
			h.logger.Warn("POST /appointments - Missing field: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createAppointment.ErrInvalidTime):
			h.logger.Warn("POST /appointments - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createAppointment.ErrClosedDay):
			h.logger.Warn("POST /appointments - Closed day: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		default:
			h.logger.Error("POST /appointments - Failed: client=%q, date=%s, time=%s, error=%v",
				req.ClientName, req.Date, req.StartTime, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, client=%q, date=%s, time=%s",
		result.ID, req.ClientName, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
