package qr

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/skip2/go-qrcode"
)

const imageSize = 256

// Payload carries the booking identity fields embedded in a validation QR.
type Payload struct {
	ConfirmationCode string    `json:"confirmation_code"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	EventID          int       `json:"event_id"`
	Guests           int       `json:"number_of_guests"`
	IssuedAt         time.Time `json:"issued_at"`
}

// ValidationURL JSON-encodes the payload into a data query parameter on
// the given base path.
func ValidationURL(base string, p Payload) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode qr payload: %w", err)
	}

	return base + "?data=" + url.QueryEscape(string(b)), nil
}

// Image renders a validation URL as a PNG, error-correction Medium,
// fixed width. A failed render is an error for the caller to weigh; the
// booking flow treats a missing image as non-fatal.
func Image(validationURL string) ([]byte, error) {
	png, err := qrcode.Encode(validationURL, qrcode.Medium, imageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr image: %w", err)
	}

	return png, nil
}
