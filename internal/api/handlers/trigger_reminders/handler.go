package trigger_reminders

import (
	"net/http"
	"time"

	"github.com/millynails/MN-BookingService/internal/api/handlers"
)

// Handler triggers the daily reminder fan-out for today's confirmed
// appointments. The route is protected by the bearer-secret middleware.
type Handler struct {
	notifier NotificationsService
	logger   Logger
}

func NewHandler(notifier NotificationsService, logger Logger) *Handler {
	return &Handler{
		notifier: notifier,
		logger:   logger,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now()

	h.logger.Info("[Handle] Reminder run requested for %s", now.Format("2006-01-02"))

	total, err := h.notifier.SendDailyReminders(ctx, now)
	if err != nil {
		h.logger.Error("[Handle] Reminder run failed: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, "falha ao enviar lembretes")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Success:            true,
		TotalNotifications: total,
		ExecutedAt:         now.Format(time.RFC3339),
	})
}
