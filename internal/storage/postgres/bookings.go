package postgres

import (
	"database/sql"
	"fmt"
	"topgreen/internal/models"
)

// CreateBooking inserts a booking after re-checking remaining capacity
// inside the same transaction. The availability shown to the visitor may
// still be stale by submit time; this check is the final word.
func (s *Storage) CreateBooking(b models.Booking) (int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var capacity, booked int
	countQuery := `
		SELECT e.capacity, COALESCE(SUM(b.number_of_guests), 0)
		FROM events e
		LEFT JOIN bookings b ON e.id = b.event_id AND b.status = 'confirmed'
		WHERE e.id = $1
		GROUP BY e.id, e.capacity`

	err = tx.QueryRow(countQuery, b.EventID).Scan(&capacity, &booked)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("event not found")
		}
		return 0, fmt.Errorf("failed to get event seats info: %w", err)
	}

	if booked+b.Guests > capacity {
		return 0, fmt.Errorf("no available seats")
	}

	insertQuery := `
		INSERT INTO bookings (confirmation_code, customer_name, customer_email, customer_phone,
			event_id, session_date, session_time, number_of_guests, special_request,
			total_price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id`

	var id int
	err = tx.QueryRow(insertQuery,
		b.ConfirmationCode, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.EventID, b.SessionDate, b.SessionTime, b.Guests, b.SpecialRequest,
		b.TotalPrice, b.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit booking: %w", err)
	}

	return id, nil
}

func (s *Storage) GetAllBookings() ([]models.Booking, error) {
	query := `
		SELECT id, confirmation_code, customer_name, customer_email, customer_phone,
			event_id, session_date, session_time, number_of_guests, special_request,
			total_price, status, created_at
		FROM bookings
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err = rows.Scan(
			&b.ID, &b.ConfirmationCode, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
			&b.EventID, &b.SessionDate, &b.SessionTime, &b.Guests, &b.SpecialRequest,
			&b.TotalPrice, &b.Status, &b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) GetBookingByCode(code string) (*models.Booking, error) {
	query := `
		SELECT id, confirmation_code, customer_name, customer_email, customer_phone,
			event_id, session_date, session_time, number_of_guests, special_request,
			total_price, status, created_at
		FROM bookings
		WHERE confirmation_code = $1
		ORDER BY created_at DESC
		LIMIT 1`

	var b models.Booking
	err := s.DB.QueryRow(query, code).Scan(
		&b.ID, &b.ConfirmationCode, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.EventID, &b.SessionDate, &b.SessionTime, &b.Guests, &b.SpecialRequest,
		&b.TotalPrice, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &b, nil
}

func (s *Storage) SetBookingStatus(id int, status string) error {
	result, err := s.DB.Exec(`UPDATE bookings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}

// CompletePastBookings moves confirmed bookings whose session date has
// passed into the completed state. Run periodically from main.
func (s *Storage) CompletePastBookings() (int64, error) {
	query := `
		UPDATE bookings
		SET status = 'completed'
		WHERE status = 'confirmed' AND session_date < CURRENT_DATE`

	result, err := s.DB.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past bookings: %w", err)
	}

	rows, _ := result.RowsAffected()

	return rows, nil
}
