package model

import "time"

type ArtStatus string

const (
	ArtStatusPending           ArtStatus = "pending"
	ArtStatusApproved          ArtStatus = "approved"
	ArtStatusRejected          ArtStatus = "rejected"
	ArtStatusRevisionRequested ArtStatus = "revision_requested"
	ArtStatusArchived          ArtStatus = "archived"
)

func (s ArtStatus) Valid() bool {
	switch s {
	case ArtStatusPending, ArtStatusApproved, ArtStatusRejected, ArtStatusRevisionRequested, ArtStatusArchived:
		return true
	}
	return false
}

// Art is a visual deliverable attached to a task. Path points at the
// file store; on approval the file is relocated and Path updated.
type Art struct {
	ID        int64      `json:"id"`
	TaskID    int64      `json:"task_id"`
	Title     string     `json:"title"`
	Path      string     `json:"path"`
	Status    ArtStatus  `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}
