package postgres

import (
	"database/sql"
	"fmt"
	"topgreen/internal/models"
)

func (s *Storage) CreatePost(p models.BlogPost, imageURLs []string) (int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO blog_posts (title, content, cover_image_url, published)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int
	err = tx.QueryRow(query, p.Title, p.Content, p.CoverImageURL, p.Published).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create post: %w", err)
	}

	for i, u := range imageURLs {
		_, err = tx.Exec(
			`INSERT INTO blog_post_images (post_id, image_url, position) VALUES ($1, $2, $3)`,
			id, u, i,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to attach post image: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit post: %w", err)
	}

	return id, nil
}

func (s *Storage) UpdatePost(p models.BlogPost, imageURLs []string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE blog_posts
		SET title = $1, content = $2, cover_image_url = $3, published = $4, updated_at = NOW()
		WHERE id = $5`

	result, err := tx.Exec(query, p.Title, p.Content, p.CoverImageURL, p.Published, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("post not found")
	}

	// Replace the gallery wholesale; ordering follows slice order.
	if _, err = tx.Exec(`DELETE FROM blog_post_images WHERE post_id = $1`, p.ID); err != nil {
		return fmt.Errorf("failed to clear post images: %w", err)
	}

	for i, u := range imageURLs {
		_, err = tx.Exec(
			`INSERT INTO blog_post_images (post_id, image_url, position) VALUES ($1, $2, $3)`,
			p.ID, u, i,
		)
		if err != nil {
			return fmt.Errorf("failed to attach post image: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Storage) DeletePost(id int) error {
	result, err := s.DB.Exec(`DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("post not found")
	}

	return nil
}

func (s *Storage) GetAllPosts(publishedOnly bool) ([]models.BlogPost, error) {
	query := `
		SELECT id, title, content, cover_image_url, published, created_at, updated_at
		FROM blog_posts`
	if publishedOnly {
		query += `
		WHERE published = true`
	}
	query += `
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		err = rows.Scan(&p.ID, &p.Title, &p.Content, &p.CoverImageURL, &p.Published, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

func (s *Storage) GetPost(id int) (*models.BlogPost, []models.BlogPostImage, error) {
	query := `
		SELECT id, title, content, cover_image_url, published, created_at, updated_at
		FROM blog_posts
		WHERE id = $1`

	var p models.BlogPost
	err := s.DB.QueryRow(query, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.CoverImageURL, &p.Published, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, fmt.Errorf("post not found")
		}
		return nil, nil, fmt.Errorf("failed to get post: %w", err)
	}

	imgQuery := `
		SELECT id, post_id, image_url, position
		FROM blog_post_images
		WHERE post_id = $1
		ORDER BY position ASC`

	rows, err := s.DB.Query(imgQuery, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get post images: %w", err)
	}
	defer rows.Close()

	var images []models.BlogPostImage
	for rows.Next() {
		var img models.BlogPostImage
		if err = rows.Scan(&img.ID, &img.PostID, &img.ImageURL, &img.Position); err != nil {
			return nil, nil, fmt.Errorf("failed to scan post image: %w", err)
		}
		images = append(images, img)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating post images: %w", err)
	}

	return &p, images, nil
}
