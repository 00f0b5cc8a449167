package model

import "time"

// ArtFeedback is a free-text note recorded alongside a review action,
// independent of pixel comments.
type ArtFeedback struct {
	ID        int64      `json:"id"`
	ArtID     int64      `json:"art_id"`
	UserID    int64      `json:"user_id"`
	Feedback  string     `json:"feedback"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}
