package postgres

import (
	"database/sql"
	"fmt"
	"topgreen/internal/lib/seats"
	"topgreen/internal/models"

	"github.com/lib/pq"
)

func (s *Storage) CreateEvent(e models.Event) (int, error) {
	query := `
		INSERT INTO events (title, description, category, event_date, start_time, end_time,
			capacity, price, location, instructor, image_url, is_active, is_featured, tags, materials)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query,
		e.Title, e.Description, e.Category, e.Date, e.StartTime, e.EndTime,
		e.Capacity, e.Price, e.Location, e.Instructor, e.ImageURL,
		e.IsActive, e.IsFeatured, pq.Array(e.Tags), pq.Array(e.Materials),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

func (s *Storage) UpdateEvent(e models.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, category = $3, event_date = $4,
			start_time = $5, end_time = $6, capacity = $7, price = $8,
			location = $9, instructor = $10, image_url = $11,
			is_active = $12, is_featured = $13, tags = $14, materials = $15,
			updated_at = NOW()
		WHERE id = $16`

	result, err := s.DB.Exec(query,
		e.Title, e.Description, e.Category, e.Date, e.StartTime, e.EndTime,
		e.Capacity, e.Price, e.Location, e.Instructor, e.ImageURL,
		e.IsActive, e.IsFeatured, pq.Array(e.Tags), pq.Array(e.Materials),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("event not found")
	}

	return nil
}

func (s *Storage) DeleteEvent(id int) error {
	result, err := s.DB.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("event not found")
	}

	return nil
}

func (s *Storage) GetEvent(id int) (*models.Event, error) {
	query := `
		SELECT id, title, description, category, event_date, start_time, end_time,
			capacity, price, location, instructor, image_url, is_active, is_featured,
			tags, materials, created_at, updated_at
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID, &event.Title, &event.Description, &event.Category,
		&event.Date, &event.StartTime, &event.EndTime,
		&event.Capacity, &event.Price, &event.Location, &event.Instructor,
		&event.ImageURL, &event.IsActive, &event.IsFeatured,
		pq.Array(&event.Tags), pq.Array(&event.Materials),
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("event not found")
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if err = s.fillAvailability(&event); err != nil {
		return nil, err
	}

	return &event, nil
}

// fillAvailability recomputes booked and available seats from confirmed
// bookings. Recomputed on every fetch; not atomic with concurrent writes.
func (s *Storage) fillAvailability(event *models.Event) error {
	bookedQuery := `
		SELECT COALESCE(SUM(number_of_guests), 0)
		FROM bookings
		WHERE event_id = $1 AND status = 'confirmed'`

	if err := s.DB.QueryRow(bookedQuery, event.ID).Scan(&event.BookedSeats); err != nil {
		return fmt.Errorf("failed to get booked seats count: %w", err)
	}

	event.AvailableSeats = seats.Remaining(event.Capacity, event.BookedSeats)

	return nil
}

func (s *Storage) GetAllEvents(includeInactive bool) ([]models.Event, error) {
	query := `
		SELECT id, title, description, category, event_date, start_time, end_time,
			capacity, price, location, instructor, image_url, is_active, is_featured,
			tags, materials, created_at, updated_at
		FROM events`
	if !includeInactive {
		query += `
		WHERE is_active = true`
	}
	query += `
		ORDER BY event_date ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.Category,
			&event.Date, &event.StartTime, &event.EndTime,
			&event.Capacity, &event.Price, &event.Location, &event.Instructor,
			&event.ImageURL, &event.IsActive, &event.IsFeatured,
			pq.Array(&event.Tags), pq.Array(&event.Materials),
			&event.CreatedAt, &event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		if err = s.fillAvailability(&event); err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}
