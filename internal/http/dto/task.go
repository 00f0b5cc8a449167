package dto

import (
	"time"

	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/service"
)

type TaskRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=255"`
	Description *string    `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	AssignedTo  *int64     `json:"assigned_to,string,omitempty"`
}

func (r TaskRequest) ToInput() service.TaskInput {
	return service.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Deadline:    r.Deadline,
		AssignedTo:  r.AssignedTo,
	}
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TaskResponse struct {
	ID          int64      `json:"id,string"`
	ClientID    int64      `json:"client_id,string"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      string     `json:"status"`
	AssignedTo  *int64     `json:"assigned_to,string,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToTaskResponse(t *model.Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		ClientID:    t.ClientID,
		Title:       t.Title,
		Description: t.Description,
		Deadline:    t.Deadline,
		Status:      string(t.Status),
		AssignedTo:  t.AssignedTo,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}
