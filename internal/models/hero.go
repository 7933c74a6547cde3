package models

// HeroItem is a homepage promotional block: a hero news entry or a
// carousel slide. Both tables share the same shape and ordering rules.
type HeroItem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	AltText  string `json:"alt_text"`
	ImageURL string `json:"image_url"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}
