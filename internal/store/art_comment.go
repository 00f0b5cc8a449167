package store

import (
	"context"

	"artdesk.app/api/core/db/sqlc"
	"artdesk.app/api/internal/model"
)

type artCommentStore struct {
	queries *sqlc.Queries
}

func newArtCommentStore(queries *sqlc.Queries) ArtCommentStore {
	return &artCommentStore{queries: queries}
}

func (s *artCommentStore) Create(ctx context.Context, c *model.ArtComment) error {
	row, err := s.queries.CreateArtComment(ctx, sqlc.CreateArtCommentParams{
		ID:      c.ID,
		ArtID:   c.ArtID,
		UserID:  c.UserID,
		X:       c.X,
		Y:       c.Y,
		Comment: c.Comment,
	})
	if err != nil {
		return err
	}
	*c = *toArtCommentModel(row)
	return nil
}

func (s *artCommentStore) ListByArt(ctx context.Context, artID int64) ([]model.ArtComment, error) {
	rows, err := s.queries.ListArtCommentsByArt(ctx, artID)
	if err != nil {
		return nil, err
	}
	return toArtCommentModels(rows), nil
}

func (s *artCommentStore) ListByArtIncludingDeleted(ctx context.Context, artID int64) ([]model.ArtComment, error) {
	rows, err := s.queries.ListArtCommentsByArtIncludingDeleted(ctx, artID)
	if err != nil {
		return nil, err
	}
	return toArtCommentModels(rows), nil
}

func (s *artCommentStore) ListByUserIncludingDeleted(ctx context.Context, userID int64) ([]model.ArtComment, error) {
	rows, err := s.queries.ListArtCommentsByUserIncludingDeleted(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toArtCommentModels(rows), nil
}

func (s *artCommentStore) Delete(ctx context.Context, id int64) error {
	return s.queries.SoftDeleteArtComment(ctx, id)
}

func (s *artCommentStore) Restore(ctx context.Context, id int64) error {
	return s.queries.RestoreArtComment(ctx, id)
}

func (s *artCommentStore) Purge(ctx context.Context, id int64) error {
	return s.queries.HardDeleteArtComment(ctx, id)
}

func toArtCommentModel(row sqlc.ArtComment) *model.ArtComment {
	c := &model.ArtComment{
		ID:        row.ID,
		ArtID:     row.ArtID,
		UserID:    row.UserID,
		X:         row.X,
		Y:         row.Y,
		Comment:   row.Comment,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
	if row.DeletedAt.Valid {
		c.DeletedAt = &row.DeletedAt.Time
	}
	return c
}

func toArtCommentModels(rows []sqlc.ArtComment) []model.ArtComment {
	result := make([]model.ArtComment, len(rows))
	for i, row := range rows {
		result[i] = *toArtCommentModel(row)
	}
	return result
}
