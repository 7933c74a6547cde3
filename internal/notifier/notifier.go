package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// BookingNotification is the payload handed to the external notification
// endpoint after a booking has been persisted.
type BookingNotification struct {
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	CustomerPhone    string `json:"customer_phone"`
	EventTitle       string `json:"event_title"`
	EventID          int    `json:"event_id"`
	SessionDate      string `json:"session_date"`
	SessionTime      string `json:"session_time"`
	Guests           int    `json:"number_of_guests"`
	TotalPrice       float64 `json:"total_price"`
	ConfirmationCode string `json:"confirmation_code"`
	ValidationCode   string `json:"validation_code"`
	QRImageBase64    string `json:"qr_image_base64,omitempty"`
}

// Notifier delivers a booking confirmation. Callers treat delivery as
// best-effort: a failed notification never rolls back the booking.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, n BookingNotification) error
}

// Webhook posts the notification as JSON to a configured endpoint and
// inspects only the success/failure outcome.
type Webhook struct {
	endpoint string
	client   *http.Client
}

func NewWebhook(endpoint string, timeout time.Duration) *Webhook {
	return &Webhook{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (w *Webhook) SendBookingConfirmation(ctx context.Context, n BookingNotification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}

	return nil
}

// Noop is used when no notification endpoint is configured.
type Noop struct{}

func (Noop) SendBookingConfirmation(context.Context, BookingNotification) error {
	return nil
}
