package store

import (
	"context"
	"errors"
	"time"

	"artdesk.app/api/core/db/sqlc"
	"artdesk.app/api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type invitationStore struct {
	queries *sqlc.Queries
}

func newInvitationStore(queries *sqlc.Queries) InvitationStore {
	return &invitationStore{queries: queries}
}

func (s *invitationStore) GetByID(ctx context.Context, id int64) (*model.Invitation, error) {
	row, err := s.queries.GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	row, err := s.queries.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) GetPendingByClientAndEmail(ctx context.Context, clientID int64, email string) (*model.Invitation, error) {
	row, err := s.queries.GetPendingInvitationByClientAndEmail(ctx, sqlc.GetPendingInvitationByClientAndEmailParams{
		ClientID: clientID,
		Email:    email,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) Create(ctx context.Context, inv *model.Invitation) error {
	row, err := s.queries.CreateInvitation(ctx, sqlc.CreateInvitationParams{
		ID:        inv.ID,
		ClientID:  inv.ClientID,
		InvitedBy: inv.InvitedBy,
		Email:     inv.Email,
		Role:      string(inv.Role),
		Token:     inv.Token,
		Status:    string(inv.Status),
		ExpiresAt: pgtype.Timestamptz{Time: inv.ExpiresAt, Valid: true},
	})
	if err != nil {
		return err
	}
	*inv = *toInvitationModel(row)
	return nil
}

func (s *invitationStore) ExpireByClientAndEmail(ctx context.Context, clientID int64, email string) error {
	return s.queries.ExpireInvitationsByClientAndEmail(ctx, sqlc.ExpireInvitationsByClientAndEmailParams{
		ClientID: clientID,
		Email:    email,
	})
}

func (s *invitationStore) Accept(ctx context.Context, id int64, acceptedAt time.Time) (*model.Invitation, error) {
	row, err := s.queries.AcceptInvitation(ctx, sqlc.AcceptInvitationParams{
		ID:         id,
		AcceptedAt: pgtype.Timestamptz{Time: acceptedAt, Valid: true},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) Decline(ctx context.Context, id int64) (*model.Invitation, error) {
	row, err := s.queries.DeclineInvitation(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) Extend(ctx context.Context, id int64, expiresAt time.Time) (*model.Invitation, error) {
	row, err := s.queries.ExtendInvitation(ctx, sqlc.ExtendInvitationParams{
		ID:        id,
		ExpiresAt: pgtype.Timestamptz{Time: expiresAt, Valid: true},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toInvitationModel(row), nil
}

func (s *invitationStore) ListByClient(ctx context.Context, clientID int64) ([]model.Invitation, error) {
	rows, err := s.queries.ListInvitationsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toInvitationModels(rows), nil
}

func (s *invitationStore) ListByClientIncludingDeleted(ctx context.Context, clientID int64) ([]model.Invitation, error) {
	rows, err := s.queries.ListInvitationsByClientIncludingDeleted(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toInvitationModels(rows), nil
}

func (s *invitationStore) Delete(ctx context.Context, id int64) error {
	return s.queries.SoftDeleteInvitation(ctx, id)
}

func (s *invitationStore) Restore(ctx context.Context, id int64) error {
	return s.queries.RestoreInvitation(ctx, id)
}

func (s *invitationStore) Purge(ctx context.Context, id int64) error {
	return s.queries.HardDeleteInvitation(ctx, id)
}

func toInvitationModel(row sqlc.ClientInvitation) *model.Invitation {
	inv := &model.Invitation{
		ID:        row.ID,
		ClientID:  row.ClientID,
		InvitedBy: row.InvitedBy,
		Email:     row.Email,
		Role:      model.Role(row.Role),
		Token:     row.Token,
		Status:    model.InvitationStatus(row.Status),
		ExpiresAt: row.ExpiresAt.Time,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
	if row.AcceptedAt.Valid {
		inv.AcceptedAt = &row.AcceptedAt.Time
	}
	if row.DeletedAt.Valid {
		inv.DeletedAt = &row.DeletedAt.Time
	}
	return inv
}

func toInvitationModels(rows []sqlc.ClientInvitation) []model.Invitation {
	result := make([]model.Invitation, len(rows))
	for i, row := range rows {
		result[i] = *toInvitationModel(row)
	}
	return result
}
