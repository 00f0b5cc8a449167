package model

import "time"

// Client is the tenancy root. Every task, art, membership and invitation
// belongs to exactly one client.
type Client struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	ContactName *string    `json:"contact_name,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	WebsiteURL  *string    `json:"website_url,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}
