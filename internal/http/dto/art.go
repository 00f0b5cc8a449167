package dto

import (
	"time"

	"artdesk.app/api/internal/model"
)

type ArtResponse struct {
	ID        int64     `json:"id,string"`
	TaskID    int64     `json:"task_id,string"`
	Title     string    `json:"title"`
	Path      string    `json:"path"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToArtResponse(a *model.Art) *ArtResponse {
	return &ArtResponse{
		ID:        a.ID,
		TaskID:    a.TaskID,
		Title:     a.Title,
		Path:      a.Path,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type ListArtsResponse struct {
	Arts []ArtResponse `json:"arts"`
}

type ReviewArtRequest struct {
	Status   string  `json:"status" binding:"required"`
	Feedback *string `json:"feedback,omitempty"`
}

type AddCommentRequest struct {
	X       int32  `json:"x"`
	Y       int32  `json:"y"`
	Comment string `json:"comment" binding:"required"`
}

type ArtCommentResponse struct {
	ID        int64     `json:"id,string"`
	ArtID     int64     `json:"art_id,string"`
	UserID    int64     `json:"user_id,string"`
	X         int32     `json:"x"`
	Y         int32     `json:"y"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func ToArtCommentResponse(cm model.ArtComment) ArtCommentResponse {
	return ArtCommentResponse{
		ID:        cm.ID,
		ArtID:     cm.ArtID,
		UserID:    cm.UserID,
		X:         cm.X,
		Y:         cm.Y,
		Comment:   cm.Comment,
		CreatedAt: cm.CreatedAt,
	}
}

type ListArtCommentsResponse struct {
	Comments []ArtCommentResponse `json:"comments"`
}

type ArtFeedbackResponse struct {
	ID        int64     `json:"id,string"`
	ArtID     int64     `json:"art_id,string"`
	UserID    int64     `json:"user_id,string"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

func ToArtFeedbackResponse(fb model.ArtFeedback) ArtFeedbackResponse {
	return ArtFeedbackResponse{
		ID:        fb.ID,
		ArtID:     fb.ArtID,
		UserID:    fb.UserID,
		Feedback:  fb.Feedback,
		CreatedAt: fb.CreatedAt,
	}
}

type ListArtFeedbackResponse struct {
	Feedback []ArtFeedbackResponse `json:"feedback"`
}
