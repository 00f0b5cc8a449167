package model

import "time"

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
	InvitationStatusExpired  InvitationStatus = "expired"
)

// Invitation is a time-bounded, token-addressed offer to join a client
// with a given role. Rows are never hard-deleted, only status-terminated.
type Invitation struct {
	ID         int64            `json:"id"`
	ClientID   int64            `json:"client_id"`
	InvitedBy  int64            `json:"invited_by"`
	Email      string           `json:"email"`
	Role       Role             `json:"role"`
	Token      string           `json:"token"`
	Status     InvitationStatus `json:"status"`
	ExpiresAt  time.Time        `json:"expires_at"`
	AcceptedAt *time.Time       `json:"accepted_at,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	DeletedAt  *time.Time       `json:"-"`
}

// IsExpired reports whether the invitation is past its window or already
// flipped to expired. Expiry is evaluated lazily at read time; nothing
// sweeps pending rows in the background.
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt) || i.Status == InvitationStatusExpired
}

// IsPending reports whether the invitation can still be accepted or
// declined at the given instant.
func (i *Invitation) IsPending(now time.Time) bool {
	return i.Status == InvitationStatusPending && !i.IsExpired(now)
}
