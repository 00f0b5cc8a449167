package model

import "time"

// Subscription mirrors the billing provider's record for a user. Billing
// itself lives outside this service; we only read plan state from here.
type Subscription struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	ProviderID  string     `json:"provider_id"`
	Status      string     `json:"status"`
	TrialEndsAt *time.Time `json:"trial_ends_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// ActiveAt reports whether the subscription grants premium at the given
// instant.
func (s *Subscription) ActiveAt(now time.Time) bool {
	if s.Status != "active" && s.Status != "trialing" {
		return false
	}
	return s.EndsAt == nil || s.EndsAt.After(now)
}
