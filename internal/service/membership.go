package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/store"
)

var ErrMembershipNotFound = errors.New("membership not found")

type MembershipService interface {
	List(ctx context.Context, actorID, clientID int64) ([]model.Membership, error)
	UpdateRole(ctx context.Context, actorID, clientID, targetUserID int64, role model.Role) (*model.Membership, error)
	Remove(ctx context.Context, actorID, clientID, targetUserID int64) error
}

type membershipService struct {
	authorizer      Authorizer
	membershipStore store.MembershipStore
	txRunner        TxRunner
	cascader        *Cascader
}

func NewMembershipService(
	authorizer Authorizer,
	membershipStore store.MembershipStore,
	txRunner TxRunner,
	cascader *Cascader,
) MembershipService {
	return &membershipService{
		authorizer:      authorizer,
		membershipStore: membershipStore,
		txRunner:        txRunner,
		cascader:        cascader,
	}
}

func (s *membershipService) List(ctx context.Context, actorID, clientID int64) ([]model.Membership, error) {
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesAnyMember...); err != nil {
		return nil, err
	}
	return s.membershipStore.ListByClient(ctx, clientID)
}

func (s *membershipService) UpdateRole(ctx context.Context, actorID, clientID, targetUserID int64, role model.Role) (*model.Membership, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesOwnerOnly...); err != nil {
		return nil, err
	}

	// Owners cannot change their own role.
	if actorID == targetUserID {
		return nil, ErrSelfTarget
	}

	updated, err := s.membershipStore.UpdateRole(ctx, clientID, targetUserID, role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, fmt.Errorf("updating membership role: %w", err)
	}

	slog.InfoContext(ctx, "membership role updated",
		"client_id", clientID,
		"user_id", targetUserID,
		"role", role,
		"updated_by", actorID,
	)

	return updated, nil
}

func (s *membershipService) Remove(ctx context.Context, actorID, clientID, targetUserID int64) error {
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesOwnerOnly...); err != nil {
		return err
	}

	// Owners cannot remove themselves.
	if actorID == targetUserID {
		return ErrSelfTarget
	}

	membership, err := s.membershipStore.Get(ctx, clientID, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return fmt.Errorf("getting membership: %w", err)
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		return s.cascader.SoftDelete(ctx, stores, KindMembership, membership.ID)
	})
	if err != nil {
		return fmt.Errorf("removing membership: %w", err)
	}

	slog.InfoContext(ctx, "membership removed",
		"client_id", clientID,
		"user_id", targetUserID,
		"removed_by", actorID,
	)
	return nil
}
