package models

import "time"

type BlogPost struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CoverImageURL string    `json:"cover_image_url"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BlogPostImage struct {
	ID       int    `json:"id"`
	PostID   int    `json:"post_id"`
	ImageURL string `json:"image_url"`
	Position int    `json:"position"`
}
