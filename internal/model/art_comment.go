package model

import "time"

// ArtComment is a pixel-anchored review annotation. Creating one always
// forces the art back to revision_requested.
type ArtComment struct {
	ID        int64      `json:"id"`
	ArtID     int64      `json:"art_id"`
	UserID    int64      `json:"user_id"`
	X         int32      `json:"x"`
	Y         int32      `json:"y"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}
