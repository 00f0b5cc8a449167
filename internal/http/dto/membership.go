package dto

import (
	"time"

	"artdesk.app/api/internal/model"
)

type MembershipResponse struct {
	ID        int64     `json:"id,string"`
	ClientID  int64     `json:"client_id,string"`
	UserID    int64     `json:"user_id,string"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToMembershipResponse(m model.Membership) MembershipResponse {
	return MembershipResponse{
		ID:        m.ID,
		ClientID:  m.ClientID,
		UserID:    m.UserID,
		Role:      string(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type ListMembershipsResponse struct {
	Members []MembershipResponse `json:"members"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
