package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"artdesk.app/api/common/id"
	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/service"
	"artdesk.app/api/internal/store"
)

var _ = Describe("TaskService", func() {
	const (
		actorID  = int64(100)
		memberID = int64(101)
		clientID = int64(200)
		taskID   = int64(300)
	)

	var (
		ctx         context.Context
		tasks       *mockTaskStore
		memberships *mockMembershipStore
		txRunner    *mockTxRunner
		svc         service.TaskService
	)

	actorAs := func(role model.Role) {
		memberships.getFn = func(_ context.Context, cID, uID int64) (*model.Membership, error) {
			switch uID {
			case actorID:
				return &model.Membership{ID: 1, ClientID: cID, UserID: uID, Role: role}, nil
			case memberID:
				return &model.Membership{ID: 2, ClientID: cID, UserID: uID, Role: model.RoleParticipant}, nil
			}
			return nil, store.ErrNotFound
		}
	}

	existingTask := func() *model.Task {
		return &model.Task{ID: taskID, ClientID: clientID, Title: "Sketch", Status: model.TaskStatusPending}
	}

	BeforeEach(func() {
		ctx = context.Background()
		id.Init(1)
		tasks = &mockTaskStore{}
		memberships = &mockMembershipStore{}
		authorizer := service.NewAuthorizer(memberships, tasks, &mockArtStore{}, &mockSubscriptionStore{})

		provider := newMockStoreProvider()
		provider.tasks = tasks
		provider.memberships = memberships
		txRunner = &mockTxRunner{provider: provider}

		svc = service.NewTaskService(authorizer, tasks, memberships, txRunner, service.NewCascader())
		actorAs(model.RoleParticipant)
	})

	Describe("Create", func() {
		It("creates a pending task", func() {
			var created *model.Task
			tasks.createFn = func(_ context.Context, t *model.Task) error {
				created = t
				return nil
			}

			task, err := svc.Create(ctx, actorID, clientID, service.TaskInput{Title: "Sketch"})

			Expect(err).NotTo(HaveOccurred())
			Expect(created).NotTo(BeNil())
			Expect(task.Status).To(Equal(model.TaskStatusPending))
			Expect(task.ClientID).To(Equal(clientID))
		})

		It("rejects a blank title", func() {
			_, err := svc.Create(ctx, actorID, clientID, service.TaskInput{Title: " "})
			Expect(err).To(MatchError(service.ErrTaskTitle))
		})

		It("rejects viewers", func() {
			actorAs(model.RoleViewer)
			_, err := svc.Create(ctx, actorID, clientID, service.TaskInput{Title: "Sketch"})
			Expect(err).To(MatchError(service.ErrUnauthorized))
		})

		It("accepts a collaborator as assignee", func() {
			assignee := memberID
			task, err := svc.Create(ctx, actorID, clientID, service.TaskInput{Title: "Sketch", AssignedTo: &assignee})

			Expect(err).NotTo(HaveOccurred())
			Expect(task.AssignedTo).To(Equal(&assignee))
		})

		It("rejects an assignee who is not a collaborator", func() {
			stranger := int64(999)
			_, err := svc.Create(ctx, actorID, clientID, service.TaskInput{Title: "Sketch", AssignedTo: &stranger})
			Expect(err).To(MatchError(service.ErrAssigneeNotMember))
		})
	})

	Describe("UpdateStatus", func() {
		BeforeEach(func() {
			tasks.getByIDFn = func(_ context.Context, _ int64) (*model.Task, error) {
				return existingTask(), nil
			}
			tasks.updateStatusFn = func(_ context.Context, tid int64, status model.TaskStatus) (*model.Task, error) {
				t := existingTask()
				t.Status = status
				return t, nil
			}
		})

		It("allows any move within the closed status set", func() {
			task, err := svc.UpdateStatus(ctx, actorID, taskID, model.TaskStatusCompleted)

			Expect(err).NotTo(HaveOccurred())
			Expect(task.Status).To(Equal(model.TaskStatusCompleted))

			task, err = svc.UpdateStatus(ctx, actorID, taskID, model.TaskStatusPending)

			Expect(err).NotTo(HaveOccurred())
			Expect(task.Status).To(Equal(model.TaskStatusPending))
		})

		It("rejects a status outside the set", func() {
			_, err := svc.UpdateStatus(ctx, actorID, taskID, model.TaskStatus("archived"))
			Expect(err).To(MatchError(service.ErrInvalidTaskStatus))
		})

		It("rejects viewers", func() {
			actorAs(model.RoleViewer)
			_, err := svc.UpdateStatus(ctx, actorID, taskID, model.TaskStatusInProgress)
			Expect(err).To(MatchError(service.ErrUnauthorized))
		})
	})

	Describe("Update", func() {
		BeforeEach(func() {
			tasks.getByIDFn = func(_ context.Context, _ int64) (*model.Task, error) {
				return existingTask(), nil
			}
		})

		It("replaces the mutable fields", func() {
			var updated *model.Task
			tasks.updateFn = func(_ context.Context, t *model.Task) error {
				updated = t
				return nil
			}

			deadline := time.Now().Add(48 * time.Hour)
			task, err := svc.Update(ctx, actorID, taskID, service.TaskInput{Title: "Ink", Deadline: &deadline})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated).NotTo(BeNil())
			Expect(task.Title).To(Equal("Ink"))
			Expect(task.Deadline).To(Equal(&deadline))
		})

		It("validates the assignee against the task's own client", func() {
			stranger := int64(999)
			_, err := svc.Update(ctx, actorID, taskID, service.TaskInput{Title: "Ink", AssignedTo: &stranger})
			Expect(err).To(MatchError(service.ErrAssigneeNotMember))
		})
	})

	Describe("ListByDeadlineWindow", func() {
		It("passes the window to the store", func() {
			from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
			to := from.AddDate(0, 0, 7)
			tasks.listByDeadlineRangeFn = func(_ context.Context, cID int64, gotFrom, gotTo time.Time) ([]model.Task, error) {
				Expect(cID).To(Equal(clientID))
				Expect(gotFrom).To(Equal(from))
				Expect(gotTo).To(Equal(to))
				return []model.Task{*existingTask()}, nil
			}

			list, err := svc.ListByDeadlineWindow(ctx, actorID, clientID, from, to)

			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
		})
	})

	Describe("Delete", func() {
		BeforeEach(func() {
			tasks.getByIDFn = func(_ context.Context, _ int64) (*model.Task, error) {
				return existingTask(), nil
			}
		})

		It("soft-deletes the task and its subtree", func() {
			var deleted bool
			tasks.deleteFn = func(_ context.Context, tid int64) error {
				Expect(tid).To(Equal(taskID))
				deleted = true
				return nil
			}

			Expect(svc.Delete(ctx, actorID, taskID)).To(Succeed())
			Expect(deleted).To(BeTrue())
		})

		It("reports a missing task", func() {
			tasks.getByIDFn = nil
			err := svc.Delete(ctx, actorID, taskID)
			Expect(err).To(MatchError(service.ErrTaskNotFound))
		})
	})

	Describe("Restore", func() {
		It("restores a tombstoned task", func() {
			deletedAt := time.Now().Add(-time.Hour)
			tasks.getByIDIncludingDeletedFn = func(_ context.Context, _ int64) (*model.Task, error) {
				t := existingTask()
				t.DeletedAt = &deletedAt
				return t, nil
			}
			var restored bool
			tasks.restoreFn = func(_ context.Context, tid int64) error {
				Expect(tid).To(Equal(taskID))
				restored = true
				return nil
			}

			Expect(svc.Restore(ctx, actorID, taskID)).To(Succeed())
			Expect(restored).To(BeTrue())
		})

		It("is a no-op for a live task", func() {
			tasks.getByIDIncludingDeletedFn = func(_ context.Context, _ int64) (*model.Task, error) {
				return existingTask(), nil
			}
			tasks.restoreFn = func(_ context.Context, _ int64) error {
				Fail("restore must not run for a live task")
				return nil
			}

			Expect(svc.Restore(ctx, actorID, taskID)).To(Succeed())
		})
	})
})
