package store

import (
	"context"

	"artdesk.app/api/core/db/sqlc"
	"artdesk.app/api/internal/model"
)

type artFeedbackStore struct {
	queries *sqlc.Queries
}

func newArtFeedbackStore(queries *sqlc.Queries) ArtFeedbackStore {
	return &artFeedbackStore{queries: queries}
}

func (s *artFeedbackStore) Create(ctx context.Context, f *model.ArtFeedback) error {
	row, err := s.queries.CreateArtFeedback(ctx, sqlc.CreateArtFeedbackParams{
		ID:       f.ID,
		ArtID:    f.ArtID,
		UserID:   f.UserID,
		Feedback: f.Feedback,
	})
	if err != nil {
		return err
	}
	*f = *toArtFeedbackModel(row)
	return nil
}

func (s *artFeedbackStore) ListByArt(ctx context.Context, artID int64) ([]model.ArtFeedback, error) {
	rows, err := s.queries.ListArtFeedbackByArt(ctx, artID)
	if err != nil {
		return nil, err
	}
	return toArtFeedbackModels(rows), nil
}

func (s *artFeedbackStore) ListByArtIncludingDeleted(ctx context.Context, artID int64) ([]model.ArtFeedback, error) {
	rows, err := s.queries.ListArtFeedbackByArtIncludingDeleted(ctx, artID)
	if err != nil {
		return nil, err
	}
	return toArtFeedbackModels(rows), nil
}

func (s *artFeedbackStore) ListByUserIncludingDeleted(ctx context.Context, userID int64) ([]model.ArtFeedback, error) {
	rows, err := s.queries.ListArtFeedbackByUserIncludingDeleted(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toArtFeedbackModels(rows), nil
}

func (s *artFeedbackStore) Delete(ctx context.Context, id int64) error {
	return s.queries.SoftDeleteArtFeedback(ctx, id)
}

func (s *artFeedbackStore) Restore(ctx context.Context, id int64) error {
	return s.queries.RestoreArtFeedback(ctx, id)
}

func (s *artFeedbackStore) Purge(ctx context.Context, id int64) error {
	return s.queries.HardDeleteArtFeedback(ctx, id)
}

func toArtFeedbackModel(row sqlc.ArtFeedback) *model.ArtFeedback {
	f := &model.ArtFeedback{
		ID:        row.ID,
		ArtID:     row.ArtID,
		UserID:    row.UserID,
		Feedback:  row.Feedback,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
	if row.DeletedAt.Valid {
		f.DeletedAt = &row.DeletedAt.Time
	}
	return f
}

func toArtFeedbackModels(rows []sqlc.ArtFeedback) []model.ArtFeedback {
	result := make([]model.ArtFeedback, len(rows))
	for i, row := range rows {
		result[i] = *toArtFeedbackModel(row)
	}
	return result
}
