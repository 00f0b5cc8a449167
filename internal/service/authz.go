package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/store"
)

// Collaborator caps per plan tier of the client's owner.
const (
	FreeMaxCollaborators    = 3
	PremiumMaxCollaborators = 10
)

var (
	ErrUnauthorized      = errors.New("caller is not permitted to perform this action")
	ErrSelfTarget        = errors.New("owners cannot target their own membership")
	ErrCollaboratorLimit = errors.New("collaborator limit reached for this client")
	ErrPremiumRequired   = errors.New("client reviewer invitations require a premium plan")
	ErrOwnerMissing      = errors.New("client has no owner membership")
)

// Operation-to-allowed-roles tables. Every authorization site refers to
// one of these; role literals do not appear at call sites.
var (
	// RolesAnyMember covers reads of client-scoped resources.
	RolesAnyMember = []model.Role{model.RoleOwner, model.RoleParticipant, model.RoleViewer, model.RoleClient}
	// RolesEditors covers task and art mutation.
	RolesEditors = []model.Role{model.RoleOwner, model.RoleParticipant}
	// RolesOwnerOnly covers membership and invitation management.
	RolesOwnerOnly = []model.Role{model.RoleOwner}
	// RolesReviewer covers art review and pixel comments.
	RolesReviewer = []model.Role{model.RoleClient}
)

// Authorizer is the access evaluator consulted before every mutating
// operation and most reads. It is a pure decision layer: it resolves
// the owning client, looks up the caller's membership and answers
// yes or no. It never mutates state.
type Authorizer interface {
	// Authorize returns the caller's role when it is a member of
	// allowed, ErrUnauthorized otherwise. A missing membership is
	// indistinguishable from an insufficient role.
	Authorize(ctx context.Context, userID, clientID int64, allowed ...model.Role) (model.Role, error)

	// ClientIDForTask resolves a task to its owning client.
	// Missing tasks surface ErrTaskNotFound before any decision.
	ClientIDForTask(ctx context.Context, taskID int64) (int64, error)

	// ClientIDForArt resolves an art through its task to the owning
	// client. Missing arts surface ErrArtNotFound.
	ClientIDForArt(ctx context.Context, artID int64) (int64, error)

	// CheckInviteQuota enforces the collaborator cap and the
	// premium-only reviewer role rule for a prospective invitation.
	CheckInviteQuota(ctx context.Context, clientID int64, role model.Role, now time.Time) error

	// MaxCollaborators returns the membership cap derived from the
	// client owner's plan tier.
	MaxCollaborators(ctx context.Context, clientID int64) (int64, error)

	// OwnerPlan returns the plan tier of the client's owner.
	OwnerPlan(ctx context.Context, clientID int64, now time.Time) (model.Plan, error)
}

type authorizer struct {
	membershipStore   store.MembershipStore
	taskStore         store.TaskStore
	artStore          store.ArtStore
	subscriptionStore store.SubscriptionStore
}

func NewAuthorizer(
	membershipStore store.MembershipStore,
	taskStore store.TaskStore,
	artStore store.ArtStore,
	subscriptionStore store.SubscriptionStore,
) Authorizer {
	return &authorizer{
		membershipStore:   membershipStore,
		taskStore:         taskStore,
		artStore:          artStore,
		subscriptionStore: subscriptionStore,
	}
}

func (a *authorizer) Authorize(ctx context.Context, userID, clientID int64, allowed ...model.Role) (model.Role, error) {
	m, err := a.membershipStore.Get(ctx, clientID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("loading membership: %w", err)
	}

	for _, role := range allowed {
		if m.Role == role {
			return m.Role, nil
		}
	}
	return "", ErrUnauthorized
}

func (a *authorizer) ClientIDForTask(ctx context.Context, taskID int64) (int64, error) {
	task, err := a.taskStore.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrTaskNotFound
		}
		return 0, fmt.Errorf("loading task: %w", err)
	}
	return task.ClientID, nil
}

func (a *authorizer) ClientIDForArt(ctx context.Context, artID int64) (int64, error) {
	art, err := a.artStore.GetByID(ctx, artID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrArtNotFound
		}
		return 0, fmt.Errorf("loading art: %w", err)
	}
	return a.ClientIDForTask(ctx, art.TaskID)
}

func (a *authorizer) CheckInviteQuota(ctx context.Context, clientID int64, role model.Role, now time.Time) error {
	plan, err := a.OwnerPlan(ctx, clientID, now)
	if err != nil {
		return err
	}

	if role == model.RoleClient && plan != model.PlanPremium {
		return ErrPremiumRequired
	}

	max := int64(FreeMaxCollaborators)
	if plan == model.PlanPremium {
		max = PremiumMaxCollaborators
	}

	count, err := a.membershipStore.CountByClient(ctx, clientID)
	if err != nil {
		return fmt.Errorf("counting memberships: %w", err)
	}
	if count >= max {
		return ErrCollaboratorLimit
	}
	return nil
}

func (a *authorizer) MaxCollaborators(ctx context.Context, clientID int64) (int64, error) {
	plan, err := a.OwnerPlan(ctx, clientID, time.Now())
	if err != nil {
		return 0, err
	}
	if plan == model.PlanPremium {
		return PremiumMaxCollaborators, nil
	}
	return FreeMaxCollaborators, nil
}

func (a *authorizer) OwnerPlan(ctx context.Context, clientID int64, now time.Time) (model.Plan, error) {
	owner, err := a.membershipStore.GetOwner(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrOwnerMissing
		}
		return "", fmt.Errorf("loading owner membership: %w", err)
	}

	sub, err := a.subscriptionStore.GetLatestByUser(ctx, owner.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.PlanFree, nil
		}
		return "", fmt.Errorf("loading subscription: %w", err)
	}
	if sub.ActiveAt(now) {
		return model.PlanPremium, nil
	}
	return model.PlanFree, nil
}
