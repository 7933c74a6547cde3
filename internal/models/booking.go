package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// ValidBookingStatus reports whether s is one of the fixed booking states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

type Booking struct {
	ID               int       `json:"id"`
	ConfirmationCode string    `json:"confirmation_code"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerPhone    string    `json:"customer_phone"`
	EventID          int       `json:"event_id"`
	SessionDate      time.Time `json:"session_date"`
	SessionTime      string    `json:"session_time"`
	Guests           int       `json:"number_of_guests"`
	SpecialRequest   string    `json:"special_request"`
	TotalPrice       float64   `json:"total_price"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
