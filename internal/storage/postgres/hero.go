package postgres

import (
	"fmt"
	"topgreen/internal/models"
)

const (
	HeroKindNews     = "news"
	HeroKindCarousel = "carousel"
)

func heroTable(kind string) (string, error) {
	switch kind {
	case HeroKindNews:
		return "hero_news", nil
	case HeroKindCarousel:
		return "hero_carousel", nil
	}
	return "", fmt.Errorf("unknown hero kind")
}

func (s *Storage) GetHeroItems(kind string, activeOnly bool) ([]models.HeroItem, error) {
	table, err := heroTable(kind)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, title, alt_text, image_url, position, active
		FROM ` + table
	if activeOnly {
		query += `
		WHERE active = true`
	}
	query += `
		ORDER BY position ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get hero items: %w", err)
	}
	defer rows.Close()

	var items []models.HeroItem
	for rows.Next() {
		var it models.HeroItem
		if err = rows.Scan(&it.ID, &it.Title, &it.AltText, &it.ImageURL, &it.Position, &it.Active); err != nil {
			return nil, fmt.Errorf("failed to scan hero item: %w", err)
		}
		items = append(items, it)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hero items: %w", err)
	}

	return items, nil
}

// SaveHeroItem inserts a new item when ID is zero, otherwise updates the
// existing row.
func (s *Storage) SaveHeroItem(kind string, item models.HeroItem) (int, error) {
	table, err := heroTable(kind)
	if err != nil {
		return 0, err
	}

	if item.ID == 0 {
		query := `
			INSERT INTO ` + table + ` (title, alt_text, image_url, position, active)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`

		var id int
		err = s.DB.QueryRow(query, item.Title, item.AltText, item.ImageURL, item.Position, item.Active).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to create hero item: %w", err)
		}
		return id, nil
	}

	query := `
		UPDATE ` + table + `
		SET title = $1, alt_text = $2, image_url = $3, position = $4, active = $5
		WHERE id = $6`

	result, err := s.DB.Exec(query, item.Title, item.AltText, item.ImageURL, item.Position, item.Active, item.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update hero item: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return 0, fmt.Errorf("hero item not found")
	}

	return item.ID, nil
}

func (s *Storage) DeleteHeroItem(kind string, id int) error {
	table, err := heroTable(kind)
	if err != nil {
		return err
	}

	result, err := s.DB.Exec(`DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hero item: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("hero item not found")
	}

	return nil
}
