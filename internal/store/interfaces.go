package store

import (
	"context"
	"errors"
	"time"

	"artdesk.app/api/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error // soft delete
	Restore(ctx context.Context, id int64) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) error
}

// ClientStore defines the contract for client account data access
type ClientStore interface {
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	GetByIDIncludingDeleted(ctx context.Context, id int64) (*model.Client, error)
	Create(ctx context.Context, client *model.Client) error
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id int64) error // soft delete
	Restore(ctx context.Context, id int64) error
	Purge(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.Client, error)
}

// MembershipStore defines the contract for client membership data access
type MembershipStore interface {
	Get(ctx context.Context, clientID, userID int64) (*model.Membership, error)
	GetOwner(ctx context.Context, clientID int64) (*model.Membership, error)
	Create(ctx context.Context, m *model.Membership) error
	UpdateRole(ctx context.Context, clientID, userID int64, role model.Role) (*model.Membership, error)
	CountByClient(ctx context.Context, clientID int64) (int64, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Membership, error)
	ListByClientIncludingDeleted(ctx context.Context, clientID int64) ([]model.Membership, error)
	ListByUserIncludingDeleted(ctx context.Context, userID int64) ([]model.Membership, error)
	Delete(ctx context.Context, id int64) error // soft delete
	Restore(ctx context.Context, id int64) error
	Purge(ctx context.Context, id int64) error
}

// InvitationStore defines the contract for client invitation data access
type InvitationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Invitation, error)
	GetByToken(ctx context.Context, token string) (*model.Invitation, error)
	GetPendingByClientAndEmail(ctx context.Context, clientID int64, email string) (*model.Invitation, error)
	Create(ctx context.Context, inv *model.Invitation) error
	ExpireByClientAndEmail(ctx context.Context, clientID int64, email string) error
	Accept(ctx context.Context, id int64, acceptedAt time.Time) (*model.Invitation, error)
	Decline(ctx context.Context, id int64) (*model.Invitation, error)
	Extend(ctx context.Context, id int64, expiresAt time.Time) (*model.Invitation, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Invitation, error)
	ListByClientIncludingDeleted(ctx context.Context, clientID int64) ([]model.Invitation, error)
	Delete(ctx context.Context, id int64) error // soft delete
	Restore(ctx context.Context, id int64) error
	Purge(ctx context.Context, id int64) error
}

// TaskStore defines the contract for task data access
type TaskStore interface {
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	GetByIDIncludingDeleted(ctx context.Context, id int64) (*model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, task *model.Task) error
	UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) (*model.Task, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Task, error)
	ListByClientIncludingDeleted(ctx context.Context, clientID int64) ([]model.Task, error)
	ListByAssigneeIncludingDeleted(ctx context.Context, userID int64) ([]model.Task, error)
	ListByClientAndDeadlineRange(ctx context.Context, clientID int64, from, to time.Time) ([]model.Task, error)
	Delete(ctx context.Context, id int64) error // soft delete
	Restore(ctx context.Context, id int64) error
	Purge(ctx context.Context, id int64) error
}

// ArtStore defines the contract for art data access
type ArtStore interface {
	GetByID(ctx context.Context, id int64) (*model.Art, error)
	GetByIDIncludingDeleted(ctx context.Context, id int64) (*model.Art, error)
	Create(ctx context.Context, art *model.Art) error
	Update(ctx context.Context, art *model.Art) error
	UpdateStatus(ctx context.Context, id int64, status model.ArtStatus) (*model.Art, error)
	UpdatePath(ctx context.Context, id int64, path string) (*model.Art, error)
	ListByTask(ctx context.Context, taskID int64) ([]model.Art, error)
	ListByTaskIncludingDeleted(ctx context.Context, taskID int64) ([]model.Art, error)
	Delete(ctx context.Context, id int64) error // soft delete
	Restore(ctx context.Context, id int64) error
	Purge(ctx context.Context, id int64) error
}

// ArtCommentStore defines the contract for pixel comment data access
type ArtCommentStore interface {
	Create(ctx context.Context, c *model.ArtComment) error
	ListByArt(ctx context.Context, artID int64) ([]model.ArtComment, error)
	ListByArtIncludingDeleted(ctx context.Context, artID int64) ([]model.ArtComment, error)
	ListByUserIncludingDeleted(ctx context.Context, userID int64) ([]model.ArtComment, error)
	Delete(ctx context.Context, id int64) error // soft delete
	Restore(ctx context.Context, id int64) error
	Purge(ctx context.Context, id int64) error
}

// ArtFeedbackStore defines the contract for review feedback data access
type ArtFeedbackStore interface {
	Create(ctx context.Context, f *model.ArtFeedback) error
	ListByArt(ctx context.Context, artID int64) ([]model.ArtFeedback, error)
	ListByArtIncludingDeleted(ctx context.Context, artID int64) ([]model.ArtFeedback, error)
	ListByUserIncludingDeleted(ctx context.Context, userID int64) ([]model.ArtFeedback, error)
	Delete(ctx context.Context, id int64) error // soft delete
	Restore(ctx context.Context, id int64) error
	Purge(ctx context.Context, id int64) error
}

// SubscriptionStore defines the contract for subscription data access
type SubscriptionStore interface {
	GetLatestByUser(ctx context.Context, userID int64) (*model.Subscription, error)
	ListByUserIncludingDeleted(ctx context.Context, userID int64) ([]model.Subscription, error)
	Delete(ctx context.Context, id int64) error // soft delete
	Restore(ctx context.Context, id int64) error
}
