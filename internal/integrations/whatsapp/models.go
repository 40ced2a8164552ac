package whatsapp

// messageResource is the subset of the Twilio message resource we read
type messageResource struct {
	Sid    string `json:"sid"`
	Status string `json:"status"`
}

// errorResponse is Twilio's error payload
type errorResponse struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
}
