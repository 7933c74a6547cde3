package postgres

import (
	"database/sql"
	"fmt"
	"topgreen/internal/config"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *Storage) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			event_date DATE NOT NULL,
			start_time TEXT NOT NULL DEFAULT '',
			end_time TEXT NOT NULL DEFAULT '',
			capacity INT NOT NULL CHECK (capacity >= 0),
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			location TEXT NOT NULL DEFAULT '',
			instructor TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT true,
			is_featured BOOLEAN NOT NULL DEFAULT false,
			tags TEXT[] NOT NULL DEFAULT '{}',
			materials TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			confirmation_code TEXT NOT NULL,
			customer_name TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			event_id INT NOT NULL REFERENCES events(id),
			session_date DATE NOT NULL,
			session_time TEXT NOT NULL DEFAULT '',
			number_of_guests INT NOT NULL CHECK (number_of_guests >= 1),
			special_request TEXT NOT NULL DEFAULT '',
			total_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'confirmed',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS blog_posts (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			cover_image_url TEXT NOT NULL DEFAULT '',
			published BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS blog_post_images (
			id SERIAL PRIMARY KEY,
			post_id INT NOT NULL REFERENCES blog_posts(id) ON DELETE CASCADE,
			image_url TEXT NOT NULL,
			position INT NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS hero_news (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			alt_text TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL,
			position INT NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT true
		);

		CREATE TABLE IF NOT EXISTS hero_carousel (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			alt_text TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL,
			position INT NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT true
		);

		CREATE INDEX IF NOT EXISTS idx_bookings_event_status ON bookings(event_id, status);
		CREATE INDEX IF NOT EXISTS idx_bookings_code ON bookings(confirmation_code);`

	if _, err := s.DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
