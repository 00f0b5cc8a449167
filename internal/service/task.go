package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"artdesk.app/api/common/id"
	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/store"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskTitle         = errors.New("task title is required")
	ErrInvalidTaskStatus = errors.New("task status is not in the allowed set")
	ErrAssigneeNotMember = errors.New("assignee must be a collaborator on the client")
)

// TaskInput carries the mutable fields of a task.
type TaskInput struct {
	Title       string
	Description *string
	Deadline    *time.Time
	AssignedTo  *int64
}

type TaskService interface {
	Create(ctx context.Context, actorID, clientID int64, input TaskInput) (*model.Task, error)
	Get(ctx context.Context, actorID, taskID int64) (*model.Task, error)
	ListByClient(ctx context.Context, actorID, clientID int64) ([]model.Task, error)
	ListByDeadlineWindow(ctx context.Context, actorID, clientID int64, from, to time.Time) ([]model.Task, error)
	Update(ctx context.Context, actorID, taskID int64, input TaskInput) (*model.Task, error)
	UpdateStatus(ctx context.Context, actorID, taskID int64, status model.TaskStatus) (*model.Task, error)
	Delete(ctx context.Context, actorID, taskID int64) error
	Restore(ctx context.Context, actorID, taskID int64) error
}

type taskService struct {
	authorizer      Authorizer
	taskStore       store.TaskStore
	membershipStore store.MembershipStore
	txRunner        TxRunner
	cascader        *Cascader
}

func NewTaskService(
	authorizer Authorizer,
	taskStore store.TaskStore,
	membershipStore store.MembershipStore,
	txRunner TxRunner,
	cascader *Cascader,
) TaskService {
	return &taskService{
		authorizer:      authorizer,
		taskStore:       taskStore,
		membershipStore: membershipStore,
		txRunner:        txRunner,
		cascader:        cascader,
	}
}

func (s *taskService) Create(ctx context.Context, actorID, clientID int64, input TaskInput) (*model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTaskTitle
	}

	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesEditors...); err != nil {
		return nil, err
	}

	if err := s.checkAssignee(ctx, clientID, input.AssignedTo); err != nil {
		return nil, err
	}

	task := &model.Task{
		ID:          id.New(),
		ClientID:    clientID,
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
		Status:      model.TaskStatusPending,
		AssignedTo:  input.AssignedTo,
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	slog.InfoContext(ctx, "task created",
		"task_id", task.ID,
		"client_id", clientID,
		"created_by", actorID,
	)

	return task, nil
}

func (s *taskService) Get(ctx context.Context, actorID, taskID int64) (*model.Task, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(ctx, actorID, task.ClientID, RolesAnyMember...); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListByClient(ctx context.Context, actorID, clientID int64) ([]model.Task, error) {
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesAnyMember...); err != nil {
		return nil, err
	}
	return s.taskStore.ListByClient(ctx, clientID)
}

func (s *taskService) ListByDeadlineWindow(ctx context.Context, actorID, clientID int64, from, to time.Time) ([]model.Task, error) {
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesAnyMember...); err != nil {
		return nil, err
	}
	return s.taskStore.ListByClientAndDeadlineRange(ctx, clientID, from, to)
}

func (s *taskService) Update(ctx context.Context, actorID, taskID int64, input TaskInput) (*model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTaskTitle
	}

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(ctx, actorID, task.ClientID, RolesEditors...); err != nil {
		return nil, err
	}
	if err := s.checkAssignee(ctx, task.ClientID, input.AssignedTo); err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Deadline = input.Deadline
	task.AssignedTo = input.AssignedTo

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return task, nil
}

// UpdateStatus moves the task to any member of the closed status set.
// No transition graph is enforced.
func (s *taskService) UpdateStatus(ctx context.Context, actorID, taskID int64, status model.TaskStatus) (*model.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidTaskStatus
	}

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.Authorize(ctx, actorID, task.ClientID, RolesEditors...); err != nil {
		return nil, err
	}

	updated, err := s.taskStore.UpdateStatus(ctx, taskID, status)
	if err != nil {
		return nil, fmt.Errorf("updating task status: %w", err)
	}

	slog.InfoContext(ctx, "task status updated",
		"task_id", taskID,
		"status", status,
		"updated_by", actorID,
	)

	return updated, nil
}

func (s *taskService) Delete(ctx context.Context, actorID, taskID int64) error {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return err
	}
	if _, err := s.authorizer.Authorize(ctx, actorID, task.ClientID, RolesEditors...); err != nil {
		return err
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		return s.cascader.SoftDelete(ctx, stores, KindTask, taskID)
	})
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	slog.InfoContext(ctx, "task soft-deleted",
		"task_id", taskID,
		"client_id", task.ClientID,
		"deleted_by", actorID,
	)
	return nil
}

func (s *taskService) Restore(ctx context.Context, actorID, taskID int64) error {
	task, err := s.taskStore.GetByIDIncludingDeleted(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("getting task: %w", err)
	}
	if task.DeletedAt == nil {
		return nil
	}

	if _, err := s.authorizer.Authorize(ctx, actorID, task.ClientID, RolesEditors...); err != nil {
		return err
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		return s.cascader.Restore(ctx, stores, KindTask, taskID)
	})
	if err != nil {
		return fmt.Errorf("restoring task: %w", err)
	}

	slog.InfoContext(ctx, "task restored",
		"task_id", taskID,
		"client_id", task.ClientID,
		"restored_by", actorID,
	)
	return nil
}

func (s *taskService) getTask(ctx context.Context, taskID int64) (*model.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return task, nil
}

func (s *taskService) checkAssignee(ctx context.Context, clientID int64, assignee *int64) error {
	if assignee == nil {
		return nil
	}
	if _, err := s.membershipStore.Get(ctx, clientID, *assignee); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAssigneeNotMember
		}
		return fmt.Errorf("checking assignee membership: %w", err)
	}
	return nil
}
