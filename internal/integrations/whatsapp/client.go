package whatsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.twilio.com"

// Logger is the logging surface the client needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client sends WhatsApp messages through the Twilio Messages API
type Client struct {
	baseURL    string
	accountSID string
	authToken  string
	fromNumber string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a Twilio WhatsApp client. fromNumber is a full
// WhatsApp address, e.g. "whatsapp:+14155238886".
func NewClient(accountSID, authToken, fromNumber string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendMessage delivers body to the given WhatsApp address. Delivery is
// best-effort: the caller decides whether a failure matters.
func (c *Client) SendMessage(ctx context.Context, to, body string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	form := url.Values{}
	form.Set("From", c.fromNumber)
	form.Set("To", to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var twilioErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&twilioErr); decodeErr != nil {
			return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d, code %d: %s", ErrSendFailed, resp.StatusCode, twilioErr.Code, twilioErr.Message)
	}

	var msg messageResource
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("WhatsApp message %s accepted with status %s", msg.Sid, msg.Status)
	return nil
}

// SetBaseURL overrides the Twilio endpoint. Used by tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}
