package store

import (
	"context"
	"errors"

	"artdesk.app/api/core/db/sqlc"
	"artdesk.app/api/internal/model"
	"github.com/jackc/pgx/v5"
)

type membershipStore struct {
	queries *sqlc.Queries
}

func newMembershipStore(queries *sqlc.Queries) MembershipStore {
	return &membershipStore{queries: queries}
}

func (s *membershipStore) Get(ctx context.Context, clientID, userID int64) (*model.Membership, error) {
	row, err := s.queries.GetMembership(ctx, sqlc.GetMembershipParams{
		ClientID: clientID,
		UserID:   userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMembershipModel(row), nil
}

func (s *membershipStore) GetOwner(ctx context.Context, clientID int64) (*model.Membership, error) {
	row, err := s.queries.GetOwnerMembership(ctx, clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMembershipModel(row), nil
}

func (s *membershipStore) Create(ctx context.Context, m *model.Membership) error {
	row, err := s.queries.CreateMembership(ctx, sqlc.CreateMembershipParams{
		ID:       m.ID,
		ClientID: m.ClientID,
		UserID:   m.UserID,
		Role:     string(m.Role),
	})
	if err != nil {
		return err
	}
	*m = *toMembershipModel(row)
	return nil
}

func (s *membershipStore) UpdateRole(ctx context.Context, clientID, userID int64, role model.Role) (*model.Membership, error) {
	row, err := s.queries.UpdateMembershipRole(ctx, sqlc.UpdateMembershipRoleParams{
		ClientID: clientID,
		UserID:   userID,
		Role:     string(role),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMembershipModel(row), nil
}

func (s *membershipStore) CountByClient(ctx context.Context, clientID int64) (int64, error) {
	return s.queries.CountMembershipsByClient(ctx, clientID)
}

func (s *membershipStore) ListByClient(ctx context.Context, clientID int64) ([]model.Membership, error) {
	rows, err := s.queries.ListMembershipsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toMembershipModels(rows), nil
}

func (s *membershipStore) ListByClientIncludingDeleted(ctx context.Context, clientID int64) ([]model.Membership, error) {
	rows, err := s.queries.ListMembershipsByClientIncludingDeleted(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toMembershipModels(rows), nil
}

func (s *membershipStore) ListByUserIncludingDeleted(ctx context.Context, userID int64) ([]model.Membership, error) {
	rows, err := s.queries.ListMembershipsByUserIncludingDeleted(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toMembershipModels(rows), nil
}

func (s *membershipStore) Delete(ctx context.Context, id int64) error {
	return s.queries.SoftDeleteMembership(ctx, id)
}

func (s *membershipStore) Restore(ctx context.Context, id int64) error {
	return s.queries.RestoreMembership(ctx, id)
}

func (s *membershipStore) Purge(ctx context.Context, id int64) error {
	return s.queries.HardDeleteMembership(ctx, id)
}

func toMembershipModel(row sqlc.ClientUser) *model.Membership {
	m := &model.Membership{
		ID:        row.ID,
		ClientID:  row.ClientID,
		UserID:    row.UserID,
		Role:      model.Role(row.Role),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
	if row.DeletedAt.Valid {
		m.DeletedAt = &row.DeletedAt.Time
	}
	return m
}

func toMembershipModels(rows []sqlc.ClientUser) []model.Membership {
	result := make([]model.Membership, len(rows))
	for i, row := range rows {
		result[i] = *toMembershipModel(row)
	}
	return result
}
