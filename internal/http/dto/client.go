package dto

import (
	"time"

	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/service"
)

type ClientRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	ContactName *string `json:"contact_name,omitempty" binding:"omitempty,max=255"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email,max=255"`
	Phone       *string `json:"phone,omitempty" binding:"omitempty,max=64"`
	Notes       *string `json:"notes,omitempty"`
	WebsiteURL  *string `json:"website_url,omitempty" binding:"omitempty,url,max=2048"`
	Status      string  `json:"status,omitempty" binding:"omitempty,max=64"`
}

func (r ClientRequest) ToInput() service.ClientInput {
	return service.ClientInput{
		Name:        r.Name,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Notes:       r.Notes,
		WebsiteURL:  r.WebsiteURL,
		Status:      r.Status,
	}
}

type ClientResponse struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	ContactName *string   `json:"contact_name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	WebsiteURL  *string   `json:"website_url,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToClientResponse(cl *model.Client) *ClientResponse {
	return &ClientResponse{
		ID:          cl.ID,
		Name:        cl.Name,
		ContactName: cl.ContactName,
		Email:       cl.Email,
		Phone:       cl.Phone,
		Notes:       cl.Notes,
		WebsiteURL:  cl.WebsiteURL,
		Status:      cl.Status,
		CreatedAt:   cl.CreatedAt,
		UpdatedAt:   cl.UpdatedAt,
	}
}

type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

type CollaboratorsResponse struct {
	Members          []MembershipResponse `json:"members"`
	Count            int64                `json:"count"`
	MaxCollaborators int64                `json:"max_collaborators"`
}
