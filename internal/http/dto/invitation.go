package dto

import (
	"time"

	"artdesk.app/api/internal/model"
)

type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
	Role  string `json:"role" binding:"required"`
}

type InvitationResponse struct {
	ID         int64      `json:"id,string"`
	ClientID   int64      `json:"client_id,string"`
	InvitedBy  int64      `json:"invited_by,string"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	IsExpired  bool       `json:"is_expired"`
	ExpiresAt  time.Time  `json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToInvitationResponse(inv *model.Invitation) *InvitationResponse {
	return &InvitationResponse{
		ID:         inv.ID,
		ClientID:   inv.ClientID,
		InvitedBy:  inv.InvitedBy,
		Email:      inv.Email,
		Role:       string(inv.Role),
		Status:     string(inv.Status),
		IsExpired:  inv.IsExpired(time.Now()),
		ExpiresAt:  inv.ExpiresAt,
		AcceptedAt: inv.AcceptedAt,
		CreatedAt:  inv.CreatedAt,
	}
}

type ListInvitationsResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

// InvitationPreviewResponse deliberately omits the token and the
// internal IDs; it backs the public landing page for an invite link.
type InvitationPreviewResponse struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
	Valid     bool      `json:"valid"`
}

type InvitationTokenRequest struct {
	Token string `json:"token" binding:"required"`
}
