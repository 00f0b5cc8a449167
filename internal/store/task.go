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

type taskStore struct {
	queries *sqlc.Queries
}

func newTaskStore(queries *sqlc.Queries) TaskStore {
	return &taskStore{queries: queries}
}

func (s *taskStore) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	row, err := s.queries.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTaskModel(row), nil
}

func (s *taskStore) GetByIDIncludingDeleted(ctx context.Context, id int64) (*model.Task, error) {
	row, err := s.queries.GetTaskIncludingDeleted(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTaskModel(row), nil
}

func (s *taskStore) Create(ctx context.Context, task *model.Task) error {
	row, err := s.queries.CreateTask(ctx, sqlc.CreateTaskParams{
		ID:          task.ID,
		ClientID:    task.ClientID,
		Title:       task.Title,
		Description: task.Description,
		Deadline:    toTimestamptz(task.Deadline),
		Status:      string(task.Status),
		AssignedTo:  task.AssignedTo,
	})
	if err != nil {
		return err
	}
	*task = *toTaskModel(row)
	return nil
}

func (s *taskStore) Update(ctx context.Context, task *model.Task) error {
	row, err := s.queries.UpdateTask(ctx, sqlc.UpdateTaskParams{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Deadline:    toTimestamptz(task.Deadline),
		AssignedTo:  task.AssignedTo,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*task = *toTaskModel(row)
	return nil
}

func (s *taskStore) UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) (*model.Task, error) {
	row, err := s.queries.UpdateTaskStatus(ctx, sqlc.UpdateTaskStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTaskModel(row), nil
}

func (s *taskStore) ListByClient(ctx context.Context, clientID int64) ([]model.Task, error) {
	rows, err := s.queries.ListTasksByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toTaskModels(rows), nil
}

func (s *taskStore) ListByClientIncludingDeleted(ctx context.Context, clientID int64) ([]model.Task, error) {
	rows, err := s.queries.ListTasksByClientIncludingDeleted(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toTaskModels(rows), nil
}

func (s *taskStore) ListByAssigneeIncludingDeleted(ctx context.Context, userID int64) ([]model.Task, error) {
	rows, err := s.queries.ListTasksByAssigneeIncludingDeleted(ctx, &userID)
	if err != nil {
		return nil, err
	}
	return toTaskModels(rows), nil
}

func (s *taskStore) ListByClientAndDeadlineRange(ctx context.Context, clientID int64, from, to time.Time) ([]model.Task, error) {
	rows, err := s.queries.ListTasksByClientAndDeadlineRange(ctx, sqlc.ListTasksByClientAndDeadlineRangeParams{
		ClientID: clientID,
		From:     pgtype.Timestamptz{Time: from, Valid: true},
		To:       pgtype.Timestamptz{Time: to, Valid: true},
	})
	if err != nil {
		return nil, err
	}
	return toTaskModels(rows), nil
}

func (s *taskStore) Delete(ctx context.Context, id int64) error {
	return s.queries.SoftDeleteTask(ctx, id)
}

func (s *taskStore) Restore(ctx context.Context, id int64) error {
	return s.queries.RestoreTask(ctx, id)
}

func (s *taskStore) Purge(ctx context.Context, id int64) error {
	return s.queries.HardDeleteTask(ctx, id)
}

func toTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func toTaskModel(row sqlc.Task) *model.Task {
	t := &model.Task{
		ID:          row.ID,
		ClientID:    row.ClientID,
		Title:       row.Title,
		Description: row.Description,
		Status:      model.TaskStatus(row.Status),
		AssignedTo:  row.AssignedTo,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
	if row.Deadline.Valid {
		t.Deadline = &row.Deadline.Time
	}
	if row.DeletedAt.Valid {
		t.DeletedAt = &row.DeletedAt.Time
	}
	return t
}

func toTaskModels(rows []sqlc.Task) []model.Task {
	result := make([]model.Task, len(rows))
	for i, row := range rows {
		result[i] = *toTaskModel(row)
	}
	return result
}
