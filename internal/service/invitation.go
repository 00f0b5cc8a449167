package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"artdesk.app/api/common/id"
	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	InviteTokenLength = 32
	InviteExpiryDays  = 7
)

var (
	ErrInviteNotFound      = errors.New("invitation not found")
	ErrInviteExpired       = errors.New("invitation has expired or is no longer open")
	ErrInviteNotPending    = errors.New("only pending invitations can be modified")
	ErrEmailMismatch       = errors.New("authenticated email does not match invitation")
	ErrAlreadyCollaborator = errors.New("user is already a collaborator on this client")
	ErrInvalidRole         = errors.New("role is not in the allowed set")
)

// InvitationNotice carries everything the mail worker needs to deliver
// an invitation email.
type InvitationNotice struct {
	InvitationID int64      `json:"invitation_id"`
	Email        string     `json:"email"`
	ClientName   string     `json:"client_name"`
	InviterName  string     `json:"inviter_name"`
	Role         model.Role `json:"role"`
	Token        string     `json:"token"`
}

// InvitationNotifier dispatches an invitation notice for asynchronous
// delivery. Dispatch happens after the invitation row commits; a failed
// dispatch leaves a resendable invitation behind.
type InvitationNotifier interface {
	SendInvitation(ctx context.Context, notice InvitationNotice) error
}

type InvitationService interface {
	Create(ctx context.Context, actorID, clientID int64, email string, role model.Role) (*model.Invitation, error)
	GetByToken(ctx context.Context, token string) (*model.Invitation, error)
	Accept(ctx context.Context, token string, user *model.User) (*model.Invitation, error)
	Decline(ctx context.Context, token string) (*model.Invitation, error)
	Cancel(ctx context.Context, actorID, invitationID int64) (*model.Invitation, error)
	Resend(ctx context.Context, actorID, invitationID int64) (*model.Invitation, error)
	ListByClient(ctx context.Context, actorID, clientID int64) ([]model.Invitation, error)
}

type invitationService struct {
	authorizer      Authorizer
	userStore       store.UserStore
	clientStore     store.ClientStore
	invStore        store.InvitationStore
	membershipStore store.MembershipStore
	txRunner        TxRunner
	notifier        InvitationNotifier

	// injected for deterministic tests
	now  func() time.Time
	rand io.Reader
}

func NewInvitationService(
	authorizer Authorizer,
	userStore store.UserStore,
	clientStore store.ClientStore,
	invStore store.InvitationStore,
	membershipStore store.MembershipStore,
	txRunner TxRunner,
	notifier InvitationNotifier,
) InvitationService {
	return &invitationService{
		authorizer:      authorizer,
		userStore:       userStore,
		clientStore:     clientStore,
		invStore:        invStore,
		membershipStore: membershipStore,
		txRunner:        txRunner,
		notifier:        notifier,
		now:             time.Now,
		rand:            rand.Reader,
	}
}

func (s *invitationService) Create(ctx context.Context, actorID, clientID int64, email string, role model.Role) (*model.Invitation, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesOwnerOnly...); err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.authorizer.CheckInviteQuota(ctx, clientID, role, now); err != nil {
		return nil, err
	}

	// The invitee may already be a collaborator under this email.
	invitee, err := s.userStore.GetByEmail(ctx, email)
	if err == nil {
		if _, err := s.membershipStore.Get(ctx, clientID, invitee.ID); err == nil {
			return nil, ErrAlreadyCollaborator
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("checking existing membership: %w", err)
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("looking up invitee: %w", err)
	}

	token, err := generateToken(InviteTokenLength, s.rand)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	inv := &model.Invitation{
		ID:        id.New(),
		ClientID:  clientID,
		InvitedBy: actorID,
		Email:     email,
		Role:      role,
		Token:     token,
		Status:    model.InvitationStatusPending,
		ExpiresAt: now.Add(InviteExpiryDays * 24 * time.Hour),
	}

	// Retiring prior pending rows and inserting the replacement commit
	// together, so at most one pending row per (client, email) is ever
	// observable.
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Invitations().ExpireByClientAndEmail(ctx, clientID, email); err != nil {
			return fmt.Errorf("retiring prior invitations: %w", err)
		}
		return stores.Invitations().Create(ctx, inv)
	})
	if err != nil {
		return nil, fmt.Errorf("creating invitation: %w", err)
	}

	s.dispatch(ctx, inv, actorID)

	slog.InfoContext(ctx, "invitation created",
		"invitation_id", inv.ID,
		"client_id", clientID,
		"email", email,
		"role", role,
		"expires_at", inv.ExpiresAt,
	)

	return inv, nil
}

func (s *invitationService) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	inv, err := s.invStore.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("getting invitation: %w", err)
	}
	if !inv.IsPending(s.now()) {
		return nil, ErrInviteExpired
	}
	return inv, nil
}

func (s *invitationService) Accept(ctx context.Context, token string, user *model.User) (*model.Invitation, error) {
	inv, err := s.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(inv.Email, user.Email) {
		slog.WarnContext(ctx, "email mismatch on invitation acceptance",
			"invitation_id", inv.ID,
			"invitation_email", inv.Email,
			"user_email", user.Email,
		)
		return nil, ErrEmailMismatch
	}

	if _, err := s.membershipStore.Get(ctx, inv.ClientID, user.ID); err == nil {
		return nil, ErrAlreadyCollaborator
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking existing membership: %w", err)
	}

	now := s.now()
	var accepted *model.Invitation
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		membership := &model.Membership{
			ID:       id.New(),
			ClientID: inv.ClientID,
			UserID:   user.ID,
			Role:     inv.Role,
		}
		if err := stores.Memberships().Create(ctx, membership); err != nil {
			return err
		}
		accepted, err = stores.Invitations().Accept(ctx, inv.ID, now)
		return err
	})
	if err != nil {
		// The unique constraint on (client_id, user_id) is the final
		// arbiter of a concurrent double accept; the loser gets Conflict.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAlreadyCollaborator
		}
		return nil, fmt.Errorf("accepting invitation: %w", err)
	}

	slog.InfoContext(ctx, "invitation accepted",
		"invitation_id", inv.ID,
		"client_id", inv.ClientID,
		"user_id", user.ID,
		"role", inv.Role,
	)

	return accepted, nil
}

func (s *invitationService) Decline(ctx context.Context, token string) (*model.Invitation, error) {
	inv, err := s.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	declined, err := s.invStore.Decline(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("declining invitation: %w", err)
	}

	slog.InfoContext(ctx, "invitation declined",
		"invitation_id", inv.ID,
		"client_id", inv.ClientID,
	)

	return declined, nil
}

func (s *invitationService) Cancel(ctx context.Context, actorID, invitationID int64) (*model.Invitation, error) {
	inv, err := s.invStore.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("getting invitation: %w", err)
	}

	if _, err := s.authorizer.Authorize(ctx, actorID, inv.ClientID, RolesOwnerOnly...); err != nil {
		return nil, err
	}

	if inv.Status != model.InvitationStatusPending {
		return nil, ErrInviteNotPending
	}

	// Cancellation reuses the declined terminal state.
	cancelled, err := s.invStore.Decline(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("cancelling invitation: %w", err)
	}

	slog.InfoContext(ctx, "invitation cancelled",
		"invitation_id", inv.ID,
		"client_id", inv.ClientID,
		"cancelled_by", actorID,
	)

	return cancelled, nil
}

func (s *invitationService) Resend(ctx context.Context, actorID, invitationID int64) (*model.Invitation, error) {
	inv, err := s.invStore.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("getting invitation: %w", err)
	}

	if _, err := s.authorizer.Authorize(ctx, actorID, inv.ClientID, RolesOwnerOnly...); err != nil {
		return nil, err
	}

	if inv.Status != model.InvitationStatusPending {
		return nil, ErrInviteNotPending
	}

	// The token survives a resend; only the window is extended.
	extended, err := s.invStore.Extend(ctx, inv.ID, s.now().Add(InviteExpiryDays*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("extending invitation: %w", err)
	}

	s.dispatch(ctx, extended, actorID)

	slog.InfoContext(ctx, "invitation resent",
		"invitation_id", inv.ID,
		"client_id", inv.ClientID,
		"expires_at", extended.ExpiresAt,
	)

	return extended, nil
}

func (s *invitationService) ListByClient(ctx context.Context, actorID, clientID int64) ([]model.Invitation, error) {
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesOwnerOnly...); err != nil {
		return nil, err
	}
	return s.invStore.ListByClient(ctx, clientID)
}

func (s *invitationService) dispatch(ctx context.Context, inv *model.Invitation, inviterID int64) {
	notice := InvitationNotice{
		InvitationID: inv.ID,
		Email:        inv.Email,
		Role:         inv.Role,
		Token:        inv.Token,
	}

	if client, err := s.clientStore.GetByID(ctx, inv.ClientID); err == nil {
		notice.ClientName = client.Name
	}
	if inviter, err := s.userStore.GetByID(ctx, inviterID); err == nil {
		notice.InviterName = inviter.Name
	}

	if err := s.notifier.SendInvitation(ctx, notice); err != nil {
		// The row is committed; resend recovers from a lost notice.
		slog.ErrorContext(ctx, "failed to dispatch invitation notice",
			"invitation_id", inv.ID,
			"error", err,
		)
	}
}

func generateToken(length int, randSource io.Reader) (string, error) {
	bytes := make([]byte, length)
	if _, err := io.ReadFull(randSource, bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
