package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/service"
)

var _ = Describe("UserService", func() {
	const userID = int64(100)

	var (
		ctx      context.Context
		users    *mockUserStore
		subs     *mockSubscriptionStore
		provider *mockStoreProvider
		svc      service.UserService
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = &mockUserStore{}
		subs = &mockSubscriptionStore{}

		provider = newMockStoreProvider()
		provider.users = users
		provider.subscriptions = subs

		svc = service.NewUserService(users, subs, &mockTxRunner{provider: provider}, service.NewCascader())
	})

	Describe("PlanFor", func() {
		now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

		It("defaults to free without a subscription", func() {
			plan, err := svc.PlanFor(ctx, userID, now)

			Expect(err).NotTo(HaveOccurred())
			Expect(plan).To(Equal(model.PlanFree))
		})

		It("reports premium for an active subscription", func() {
			subs.getLatestByUserFn = func(_ context.Context, _ int64) (*model.Subscription, error) {
				return &model.Subscription{UserID: userID, Status: "active"}, nil
			}

			plan, err := svc.PlanFor(ctx, userID, now)

			Expect(err).NotTo(HaveOccurred())
			Expect(plan).To(Equal(model.PlanPremium))
		})
	})

	Describe("Delete", func() {
		BeforeEach(func() {
			users.getByIDFn = func(_ context.Context, uid int64) (*model.User, error) {
				return &model.User{ID: uid, Email: "ada@example.com"}, nil
			}
		})

		It("tombstones the account and the user's memberships", func() {
			var userDeleted bool
			users.deleteFn = func(_ context.Context, uid int64) error {
				Expect(uid).To(Equal(userID))
				userDeleted = true
				return nil
			}
			provider.memberships.listByUserIncludingDeletedFn = func(_ context.Context, _ int64) ([]model.Membership, error) {
				return []model.Membership{{ID: 5, ClientID: 200, UserID: userID, Role: model.RoleParticipant}}, nil
			}
			var membershipDeleted int64
			provider.memberships.deleteFn = func(_ context.Context, id int64) error {
				membershipDeleted = id
				return nil
			}

			Expect(svc.Delete(ctx, userID)).To(Succeed())
			Expect(userDeleted).To(BeTrue())
			Expect(membershipDeleted).To(Equal(int64(5)))
		})

		It("reports a missing user", func() {
			users.getByIDFn = nil
			err := svc.Delete(ctx, userID)
			Expect(err).To(MatchError(service.ErrUserNotFound))
		})
	})
})
