package store

import (
	"context"
	"errors"

	"artdesk.app/api/core/db/sqlc"
	"artdesk.app/api/internal/model"
	"github.com/jackc/pgx/v5"
)

type clientStore struct {
	queries *sqlc.Queries
}

func newClientStore(queries *sqlc.Queries) ClientStore {
	return &clientStore{queries: queries}
}

func (s *clientStore) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	row, err := s.queries.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toClientModel(row), nil
}

func (s *clientStore) GetByIDIncludingDeleted(ctx context.Context, id int64) (*model.Client, error) {
	row, err := s.queries.GetClientIncludingDeleted(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toClientModel(row), nil
}

func (s *clientStore) Create(ctx context.Context, client *model.Client) error {
	row, err := s.queries.CreateClient(ctx, sqlc.CreateClientParams{
		ID:          client.ID,
		Name:        client.Name,
		ContactName: client.ContactName,
		Email:       client.Email,
		Phone:       client.Phone,
		Notes:       client.Notes,
		WebsiteUrl:  client.WebsiteURL,
		Status:      client.Status,
	})
	if err != nil {
		return err
	}
	*client = *toClientModel(row)
	return nil
}

func (s *clientStore) Update(ctx context.Context, client *model.Client) error {
	row, err := s.queries.UpdateClient(ctx, sqlc.UpdateClientParams{
		ID:          client.ID,
		Name:        client.Name,
		ContactName: client.ContactName,
		Email:       client.Email,
		Phone:       client.Phone,
		Notes:       client.Notes,
		WebsiteUrl:  client.WebsiteURL,
		Status:      client.Status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*client = *toClientModel(row)
	return nil
}

func (s *clientStore) Delete(ctx context.Context, id int64) error {
	return s.queries.SoftDeleteClient(ctx, id)
}

func (s *clientStore) Restore(ctx context.Context, id int64) error {
	return s.queries.RestoreClient(ctx, id)
}

func (s *clientStore) Purge(ctx context.Context, id int64) error {
	return s.queries.HardDeleteClient(ctx, id)
}

func (s *clientStore) ListByUser(ctx context.Context, userID int64) ([]model.Client, error) {
	rows, err := s.queries.ListClientsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toClientModels(rows), nil
}

func toClientModel(row sqlc.Client) *model.Client {
	c := &model.Client{
		ID:          row.ID,
		Name:        row.Name,
		ContactName: row.ContactName,
		Email:       row.Email,
		Phone:       row.Phone,
		Notes:       row.Notes,
		WebsiteURL:  row.WebsiteUrl,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
	if row.DeletedAt.Valid {
		c.DeletedAt = &row.DeletedAt.Time
	}
	return c
}

func toClientModels(rows []sqlc.Client) []model.Client {
	result := make([]model.Client, len(rows))
	for i, row := range rows {
		result[i] = *toClientModel(row)
	}
	return result
}
