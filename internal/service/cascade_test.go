package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/service"
)

// cascadeWorld is a small in-memory ownership graph: one client with
// two tasks, one art under the first task, a comment and a feedback
// under the art, two memberships and one invitation.
type cascadeWorld struct {
	provider *mockStoreProvider
	deleted  map[string]bool
}

func newCascadeWorld() *cascadeWorld {
	w := &cascadeWorld{
		provider: newMockStoreProvider(),
		deleted:  map[string]bool{},
	}

	mark := func(key string) func(ctx context.Context, id int64) error {
		return func(_ context.Context, _ int64) error {
			w.deleted[key] = true
			return nil
		}
	}
	unmark := func(key string) func(ctx context.Context, id int64) error {
		return func(_ context.Context, _ int64) error {
			w.deleted[key] = false
			return nil
		}
	}

	w.provider.clients.deleteFn = mark("client")
	w.provider.clients.restoreFn = unmark("client")

	w.provider.tasks.listByClientIncludingDeletedFn = func(_ context.Context, _ int64) ([]model.Task, error) {
		return []model.Task{
			{ID: 10, ClientID: 1, DeletedAt: w.stamp("task10")},
			{ID: 11, ClientID: 1, DeletedAt: w.stamp("task11")},
		}, nil
	}
	w.provider.tasks.deleteFn = func(_ context.Context, id int64) error {
		w.deleted[taskKey(id)] = true
		return nil
	}
	w.provider.tasks.restoreFn = func(_ context.Context, id int64) error {
		w.deleted[taskKey(id)] = false
		return nil
	}

	w.provider.arts.listByTaskIncludingDeletedFn = func(_ context.Context, taskID int64) ([]model.Art, error) {
		if taskID != 10 {
			return nil, nil
		}
		return []model.Art{{ID: 20, TaskID: 10, DeletedAt: w.stamp("art20")}}, nil
	}
	w.provider.arts.deleteFn = mark("art20")
	w.provider.arts.restoreFn = unmark("art20")

	w.provider.artComments.listByArtIncludingDeletedFn = func(_ context.Context, _ int64) ([]model.ArtComment, error) {
		return []model.ArtComment{{ID: 30, ArtID: 20, DeletedAt: w.stamp("comment30")}}, nil
	}
	w.provider.artComments.deleteFn = mark("comment30")
	w.provider.artComments.restoreFn = unmark("comment30")

	w.provider.artFeedbacks.listByArtIncludingDeletedFn = func(_ context.Context, _ int64) ([]model.ArtFeedback, error) {
		return []model.ArtFeedback{{ID: 40, ArtID: 20, DeletedAt: w.stamp("feedback40")}}, nil
	}
	w.provider.artFeedbacks.deleteFn = mark("feedback40")
	w.provider.artFeedbacks.restoreFn = unmark("feedback40")

	w.provider.memberships.listByClientIncludingDeletedFn = func(_ context.Context, _ int64) ([]model.Membership, error) {
		return []model.Membership{
			{ID: 50, ClientID: 1, UserID: 100, Role: model.RoleOwner, DeletedAt: w.stamp("membership50")},
			{ID: 51, ClientID: 1, UserID: 101, Role: model.RoleViewer, DeletedAt: w.stamp("membership51")},
		}, nil
	}
	w.provider.memberships.deleteFn = func(_ context.Context, id int64) error {
		w.deleted[membershipKey(id)] = true
		return nil
	}
	w.provider.memberships.restoreFn = func(_ context.Context, id int64) error {
		w.deleted[membershipKey(id)] = false
		return nil
	}

	w.provider.invitations.listByClientIncludingDeletedFn = func(_ context.Context, _ int64) ([]model.Invitation, error) {
		return []model.Invitation{{ID: 60, ClientID: 1, DeletedAt: w.stamp("invitation60")}}, nil
	}
	w.provider.invitations.deleteFn = mark("invitation60")
	w.provider.invitations.restoreFn = unmark("invitation60")

	return w
}

// stamp converts the boolean state into the *time.Time tombstone the
// models carry.
func (w *cascadeWorld) stamp(key string) *time.Time {
	if w.deleted[key] {
		ts := time.Now()
		return &ts
	}
	return nil
}

func taskKey(id int64) string {
	if id == 10 {
		return "task10"
	}
	return "task11"
}

func membershipKey(id int64) string {
	if id == 50 {
		return "membership50"
	}
	return "membership51"
}

var _ = Describe("Cascader", func() {
	var (
		cascader *service.Cascader
		world    *cascadeWorld
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		cascader = service.NewCascader()
		world = newCascadeWorld()
	})

	Describe("SoftDelete", func() {
		It("tombstones the client and everything reachable from it", func() {
			err := cascader.SoftDelete(ctx, world.provider, service.KindClient, 1)

			Expect(err).NotTo(HaveOccurred())
			for _, key := range []string{
				"client", "task10", "task11", "art20", "comment30",
				"feedback40", "membership50", "membership51", "invitation60",
			} {
				Expect(world.deleted[key]).To(BeTrue(), "expected %s to be tombstoned", key)
			}
		})

		It("is idempotent over already tombstoned dependents", func() {
			world.deleted["task11"] = true

			err := cascader.SoftDelete(ctx, world.provider, service.KindClient, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(world.deleted["task11"]).To(BeTrue())
		})

		It("scopes a task delete to the task subtree", func() {
			err := cascader.SoftDelete(ctx, world.provider, service.KindTask, 10)

			Expect(err).NotTo(HaveOccurred())
			Expect(world.deleted["task10"]).To(BeTrue())
			Expect(world.deleted["art20"]).To(BeTrue())
			Expect(world.deleted["comment30"]).To(BeTrue())
			Expect(world.deleted["client"]).To(BeFalse())
			Expect(world.deleted["membership50"]).To(BeFalse())
		})
	})

	Describe("Restore", func() {
		It("round-trips a full client delete", func() {
			Expect(cascader.SoftDelete(ctx, world.provider, service.KindClient, 1)).To(Succeed())
			Expect(cascader.Restore(ctx, world.provider, service.KindClient, 1)).To(Succeed())

			for key, deleted := range world.deleted {
				Expect(deleted).To(BeFalse(), "expected %s to be restored", key)
			}
		})

		It("leaves live rows untouched and resurrects only tombstoned ones", func() {
			world.deleted["task10"] = true

			err := cascader.Restore(ctx, world.provider, service.KindClient, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(world.deleted["task10"]).To(BeFalse())
			Expect(world.deleted["task11"]).To(BeFalse())
		})
	})

	Describe("Purge", func() {
		It("hard-deletes the single row without walking the graph", func() {
			var purged bool
			world.provider.invitations.purgeFn = func(_ context.Context, id int64) error {
				purged = true
				Expect(id).To(Equal(int64(60)))
				return nil
			}

			err := cascader.Purge(ctx, world.provider, service.KindInvitation, 60)

			Expect(err).NotTo(HaveOccurred())
			Expect(purged).To(BeTrue())
			Expect(world.deleted["invitation60"]).To(BeFalse())
		})

		It("refuses to purge users", func() {
			err := cascader.Purge(ctx, world.provider, service.KindUser, 100)
			Expect(err).To(HaveOccurred())
		})
	})
})
