package trigger_reminders

type Response struct {
	Success            bool   `json:"success"`
	TotalNotifications int    `json:"totalNotifications"`
	ExecutedAt         string `json:"executedAt"`
}
