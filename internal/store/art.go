package store

import (
	"context"
	"errors"

	"artdesk.app/api/core/db/sqlc"
	"artdesk.app/api/internal/model"
	"github.com/jackc/pgx/v5"
)

type artStore struct {
	queries *sqlc.Queries
}

func newArtStore(queries *sqlc.Queries) ArtStore {
	return &artStore{queries: queries}
}

func (s *artStore) GetByID(ctx context.Context, id int64) (*model.Art, error) {
	row, err := s.queries.GetArt(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toArtModel(row), nil
}

func (s *artStore) GetByIDIncludingDeleted(ctx context.Context, id int64) (*model.Art, error) {
	row, err := s.queries.GetArtIncludingDeleted(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toArtModel(row), nil
}

func (s *artStore) Create(ctx context.Context, art *model.Art) error {
	row, err := s.queries.CreateArt(ctx, sqlc.CreateArtParams{
		ID:     art.ID,
		TaskID: art.TaskID,
		Title:  art.Title,
		Path:   art.Path,
		Status: string(art.Status),
	})
	if err != nil {
		return err
	}
	*art = *toArtModel(row)
	return nil
}

func (s *artStore) Update(ctx context.Context, art *model.Art) error {
	row, err := s.queries.UpdateArt(ctx, sqlc.UpdateArtParams{
		ID:    art.ID,
		Title: art.Title,
		Path:  art.Path,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*art = *toArtModel(row)
	return nil
}

func (s *artStore) UpdateStatus(ctx context.Context, id int64, status model.ArtStatus) (*model.Art, error) {
	row, err := s.queries.UpdateArtStatus(ctx, sqlc.UpdateArtStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toArtModel(row), nil
}

func (s *artStore) UpdatePath(ctx context.Context, id int64, path string) (*model.Art, error) {
	row, err := s.queries.UpdateArtPath(ctx, sqlc.UpdateArtPathParams{
		ID:   id,
		Path: path,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toArtModel(row), nil
}

func (s *artStore) ListByTask(ctx context.Context, taskID int64) ([]model.Art, error) {
	rows, err := s.queries.ListArtsByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return toArtModels(rows), nil
}

func (s *artStore) ListByTaskIncludingDeleted(ctx context.Context, taskID int64) ([]model.Art, error) {
	rows, err := s.queries.ListArtsByTaskIncludingDeleted(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return toArtModels(rows), nil
}

func (s *artStore) Delete(ctx context.Context, id int64) error {
	return s.queries.SoftDeleteArt(ctx, id)
}

func (s *artStore) Restore(ctx context.Context, id int64) error {
	return s.queries.RestoreArt(ctx, id)
}

func (s *artStore) Purge(ctx context.Context, id int64) error {
	return s.queries.HardDeleteArt(ctx, id)
}

func toArtModel(row sqlc.Art) *model.Art {
	a := &model.Art{
		ID:        row.ID,
		TaskID:    row.TaskID,
		Title:     row.Title,
		Path:      row.Path,
		Status:    model.ArtStatus(row.Status),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
	if row.DeletedAt.Valid {
		a.DeletedAt = &row.DeletedAt.Time
	}
	return a
}

func toArtModels(rows []sqlc.Art) []model.Art {
	result := make([]model.Art, len(rows))
	for i, row := range rows {
		result[i] = *toArtModel(row)
	}
	return result
}
