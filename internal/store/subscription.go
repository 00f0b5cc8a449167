package store

import (
	"context"
	"errors"

	"artdesk.app/api/core/db/sqlc"
	"artdesk.app/api/internal/model"
	"github.com/jackc/pgx/v5"
)

type subscriptionStore struct {
	queries *sqlc.Queries
}

func newSubscriptionStore(queries *sqlc.Queries) SubscriptionStore {
	return &subscriptionStore{queries: queries}
}

func (s *subscriptionStore) GetLatestByUser(ctx context.Context, userID int64) (*model.Subscription, error) {
	row, err := s.queries.GetLatestSubscriptionByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSubscriptionModel(row), nil
}

func (s *subscriptionStore) ListByUserIncludingDeleted(ctx context.Context, userID int64) ([]model.Subscription, error) {
	rows, err := s.queries.ListSubscriptionsByUserIncludingDeleted(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toSubscriptionModels(rows), nil
}

func (s *subscriptionStore) Delete(ctx context.Context, id int64) error {
	return s.queries.SoftDeleteSubscription(ctx, id)
}

func (s *subscriptionStore) Restore(ctx context.Context, id int64) error {
	return s.queries.RestoreSubscription(ctx, id)
}

func toSubscriptionModel(row sqlc.Subscription) *model.Subscription {
	sub := &model.Subscription{
		ID:         row.ID,
		UserID:     row.UserID,
		ProviderID: row.ProviderID,
		Status:     row.Status,
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
	if row.TrialEndsAt.Valid {
		sub.TrialEndsAt = &row.TrialEndsAt.Time
	}
	if row.EndsAt.Valid {
		sub.EndsAt = &row.EndsAt.Time
	}
	if row.DeletedAt.Valid {
		sub.DeletedAt = &row.DeletedAt.Time
	}
	return sub
}

func toSubscriptionModels(rows []sqlc.Subscription) []model.Subscription {
	result := make([]model.Subscription, len(rows))
	for i, row := range rows {
		result[i] = *toSubscriptionModel(row)
	}
	return result
}
