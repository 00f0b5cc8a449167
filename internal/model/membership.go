package model

import "time"

// Role is a user's role within a single client.
type Role string

const (
	RoleOwner       Role = "owner"
	RoleParticipant Role = "participant"
	RoleViewer      Role = "viewer"
	// RoleClient is the reviewing counterpart: the person the work is
	// delivered to. They can review and annotate arts but not edit them.
	RoleClient Role = "client"
)

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleParticipant, RoleViewer, RoleClient:
		return true
	}
	return false
}

// Membership links a user to a client with a role. Unique per
// (client_id, user_id); the database constraint is the final arbiter.
type Membership struct {
	ID        int64      `json:"id"`
	ClientID  int64      `json:"client_id"`
	UserID    int64      `json:"user_id"`
	Role      Role       `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}
