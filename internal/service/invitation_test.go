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

var _ = Describe("InvitationService", func() {
	const (
		ownerID  = int64(100)
		clientID = int64(200)
	)

	var (
		svc         service.InvitationService
		users       *mockUserStore
		clients     *mockClientStore
		invitations *mockInvitationStore
		memberships *mockMembershipStore
		subs        *mockSubscriptionStore
		txRunner    *mockTxRunner
		notifier    *mockNotifier
		ctx         context.Context
	)

	ownerMembership := func() *model.Membership {
		return &model.Membership{ID: 1, ClientID: clientID, UserID: ownerID, Role: model.RoleOwner}
	}

	BeforeEach(func() {
		ctx = context.Background()
		users = &mockUserStore{}
		clients = &mockClientStore{}
		invitations = &mockInvitationStore{}
		memberships = &mockMembershipStore{}
		subs = &mockSubscriptionStore{}
		notifier = &mockNotifier{}

		provider := newMockStoreProvider()
		provider.invitations = invitations
		provider.memberships = memberships
		txRunner = &mockTxRunner{provider: provider}

		// The actor is the client's owner unless a test says otherwise.
		memberships.getFn = func(_ context.Context, cID, uID int64) (*model.Membership, error) {
			if cID == clientID && uID == ownerID {
				return ownerMembership(), nil
			}
			return nil, store.ErrNotFound
		}
		memberships.getOwnerFn = func(_ context.Context, _ int64) (*model.Membership, error) {
			return ownerMembership(), nil
		}

		authorizer := service.NewAuthorizer(memberships, &mockTaskStore{}, &mockArtStore{}, subs)
		svc = service.NewInvitationService(authorizer, users, clients, invitations, memberships, txRunner, notifier)

		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Create", func() {
		It("creates a pending invitation with a generated token and 7 day expiry", func() {
			var retired bool
			var captured *model.Invitation
			invitations.expireByClientAndEmailFn = func(_ context.Context, cID int64, email string) error {
				retired = true
				Expect(cID).To(Equal(clientID))
				Expect(email).To(Equal("ada@example.com"))
				return nil
			}
			invitations.createFn = func(_ context.Context, inv *model.Invitation) error {
				captured = inv
				return nil
			}

			inv, err := svc.Create(ctx, ownerID, clientID, "  ADA@Example.com ", model.RoleParticipant)

			Expect(err).NotTo(HaveOccurred())
			Expect(retired).To(BeTrue())
			Expect(captured).NotTo(BeNil())
			Expect(inv.Email).To(Equal("ada@example.com"))
			Expect(inv.Token).NotTo(BeEmpty())
			Expect(inv.Status).To(Equal(model.InvitationStatusPending))
			Expect(inv.ExpiresAt).To(BeTemporally("~", time.Now().Add(7*24*time.Hour), time.Minute))
		})

		It("dispatches a notice after the row commits", func() {
			inv, err := svc.Create(ctx, ownerID, clientID, "ada@example.com", model.RoleViewer)

			Expect(err).NotTo(HaveOccurred())
			Expect(notifier.sendCalls).To(HaveLen(1))
			Expect(notifier.sendCalls[0].Email).To(Equal("ada@example.com"))
			Expect(notifier.sendCalls[0].Token).To(Equal(inv.Token))
		})

		It("still succeeds when the notice dispatch fails", func() {
			notifier.sendFn = func(_ context.Context, _ service.InvitationNotice) error {
				return errAny
			}

			inv, err := svc.Create(ctx, ownerID, clientID, "ada@example.com", model.RoleViewer)

			Expect(err).NotTo(HaveOccurred())
			Expect(inv).NotTo(BeNil())
		})

		It("rejects roles outside the allowed set", func() {
			_, err := svc.Create(ctx, ownerID, clientID, "ada@example.com", model.Role("admin"))
			Expect(err).To(MatchError(service.ErrInvalidRole))
		})

		It("rejects non-owner actors", func() {
			memberships.getFn = func(_ context.Context, _, uID int64) (*model.Membership, error) {
				return &model.Membership{ID: 2, ClientID: clientID, UserID: uID, Role: model.RoleParticipant}, nil
			}

			_, err := svc.Create(ctx, 999, clientID, "ada@example.com", model.RoleViewer)
			Expect(err).To(MatchError(service.ErrUnauthorized))
		})

		It("rejects an invitee who is already a collaborator", func() {
			invitee := &model.User{ID: 300, Email: "ada@example.com"}
			users.getByEmailFn = func(_ context.Context, _ string) (*model.User, error) {
				return invitee, nil
			}
			memberships.getFn = func(_ context.Context, cID, uID int64) (*model.Membership, error) {
				if uID == ownerID {
					return ownerMembership(), nil
				}
				if uID == invitee.ID {
					return &model.Membership{ID: 3, ClientID: cID, UserID: uID, Role: model.RoleViewer}, nil
				}
				return nil, store.ErrNotFound
			}

			_, err := svc.Create(ctx, ownerID, clientID, "ada@example.com", model.RoleViewer)
			Expect(err).To(MatchError(service.ErrAlreadyCollaborator))
		})

		Context("collaborator caps", func() {
			It("rejects the invitation when a free client is at 3 members", func() {
				memberships.countByClientFn = func(_ context.Context, _ int64) (int64, error) {
					return 3, nil
				}

				_, err := svc.Create(ctx, ownerID, clientID, "ada@example.com", model.RoleViewer)
				Expect(err).To(MatchError(service.ErrCollaboratorLimit))
			})

			It("allows a premium client to grow past the free cap", func() {
				subs.getLatestByUserFn = func(_ context.Context, _ int64) (*model.Subscription, error) {
					return &model.Subscription{ID: 1, UserID: ownerID, Status: "active"}, nil
				}
				memberships.countByClientFn = func(_ context.Context, _ int64) (int64, error) {
					return 3, nil
				}

				_, err := svc.Create(ctx, ownerID, clientID, "ada@example.com", model.RoleViewer)
				Expect(err).NotTo(HaveOccurred())
			})

			It("rejects a premium client at 10 members", func() {
				subs.getLatestByUserFn = func(_ context.Context, _ int64) (*model.Subscription, error) {
					return &model.Subscription{ID: 1, UserID: ownerID, Status: "active"}, nil
				}
				memberships.countByClientFn = func(_ context.Context, _ int64) (int64, error) {
					return 10, nil
				}

				_, err := svc.Create(ctx, ownerID, clientID, "ada@example.com", model.RoleViewer)
				Expect(err).To(MatchError(service.ErrCollaboratorLimit))
			})

			It("rejects the client reviewer role on a free plan", func() {
				_, err := svc.Create(ctx, ownerID, clientID, "ada@example.com", model.RoleClient)
				Expect(err).To(MatchError(service.ErrPremiumRequired))
			})

			It("allows the client reviewer role on a premium plan", func() {
				subs.getLatestByUserFn = func(_ context.Context, _ int64) (*model.Subscription, error) {
					return &model.Subscription{ID: 1, UserID: ownerID, Status: "active"}, nil
				}

				_, err := svc.Create(ctx, ownerID, clientID, "ada@example.com", model.RoleClient)
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("GetByToken", func() {
		It("returns ErrInviteNotFound for an unknown token", func() {
			_, err := svc.GetByToken(ctx, "nope")
			Expect(err).To(MatchError(service.ErrInviteNotFound))
		})

		It("returns ErrInviteExpired for a pending invitation past its window", func() {
			invitations.getByTokenFn = func(_ context.Context, _ string) (*model.Invitation, error) {
				return &model.Invitation{
					ID:        1,
					Status:    model.InvitationStatusPending,
					ExpiresAt: time.Now().Add(-time.Hour),
				}, nil
			}

			_, err := svc.GetByToken(ctx, "stale")
			Expect(err).To(MatchError(service.ErrInviteExpired))
		})

		It("returns ErrInviteExpired for an already accepted invitation", func() {
			invitations.getByTokenFn = func(_ context.Context, _ string) (*model.Invitation, error) {
				return &model.Invitation{
					ID:        1,
					Status:    model.InvitationStatusAccepted,
					ExpiresAt: time.Now().Add(24 * time.Hour),
				}, nil
			}

			_, err := svc.GetByToken(ctx, "used")
			Expect(err).To(MatchError(service.ErrInviteExpired))
		})
	})

	Describe("Accept", func() {
		pendingInvite := func() *model.Invitation {
			return &model.Invitation{
				ID:        50,
				ClientID:  clientID,
				Email:     "ada@example.com",
				Role:      model.RoleParticipant,
				Status:    model.InvitationStatusPending,
				ExpiresAt: time.Now().Add(24 * time.Hour),
			}
		}

		BeforeEach(func() {
			invitations.getByTokenFn = func(_ context.Context, _ string) (*model.Invitation, error) {
				return pendingInvite(), nil
			}
		})

		It("creates a membership carrying the invited role and marks the row accepted", func() {
			var createdMembership *model.Membership
			memberships.createFn = func(_ context.Context, m *model.Membership) error {
				createdMembership = m
				return nil
			}
			invitations.acceptFn = func(_ context.Context, invID int64, acceptedAt time.Time) (*model.Invitation, error) {
				inv := pendingInvite()
				inv.Status = model.InvitationStatusAccepted
				inv.AcceptedAt = &acceptedAt
				return inv, nil
			}

			user := &model.User{ID: 300, Email: "ADA@example.com"}
			accepted, err := svc.Accept(ctx, "tok", user)

			Expect(err).NotTo(HaveOccurred())
			Expect(accepted.Status).To(Equal(model.InvitationStatusAccepted))
			Expect(accepted.AcceptedAt).NotTo(BeNil())
			Expect(createdMembership).NotTo(BeNil())
			Expect(createdMembership.ClientID).To(Equal(clientID))
			Expect(createdMembership.UserID).To(Equal(user.ID))
			Expect(createdMembership.Role).To(Equal(model.RoleParticipant))
		})

		It("rejects a user whose email does not match", func() {
			_, err := svc.Accept(ctx, "tok", &model.User{ID: 300, Email: "other@example.com"})
			Expect(err).To(MatchError(service.ErrEmailMismatch))
		})

		It("rejects a user who is already a collaborator", func() {
			memberships.getFn = func(_ context.Context, _, _ int64) (*model.Membership, error) {
				return &model.Membership{ID: 4, ClientID: clientID, UserID: 300, Role: model.RoleViewer}, nil
			}

			_, err := svc.Accept(ctx, "tok", &model.User{ID: 300, Email: "ada@example.com"})
			Expect(err).To(MatchError(service.ErrAlreadyCollaborator))
		})

		It("treats a second accept of the same token as expired", func() {
			invitations.getByTokenFn = func(_ context.Context, _ string) (*model.Invitation, error) {
				inv := pendingInvite()
				inv.Status = model.InvitationStatusAccepted
				return inv, nil
			}

			_, err := svc.Accept(ctx, "tok", &model.User{ID: 300, Email: "ada@example.com"})
			Expect(err).To(MatchError(service.ErrInviteExpired))
		})
	})

	Describe("Cancel", func() {
		It("declines a pending invitation on behalf of the owner", func() {
			invitations.getByIDFn = func(_ context.Context, _ int64) (*model.Invitation, error) {
				return &model.Invitation{ID: 50, ClientID: clientID, Status: model.InvitationStatusPending}, nil
			}
			invitations.declineFn = func(_ context.Context, invID int64) (*model.Invitation, error) {
				return &model.Invitation{ID: invID, ClientID: clientID, Status: model.InvitationStatusDeclined}, nil
			}

			cancelled, err := svc.Cancel(ctx, ownerID, 50)
			Expect(err).NotTo(HaveOccurred())
			Expect(cancelled.Status).To(Equal(model.InvitationStatusDeclined))
		})

		It("rejects cancelling a non-pending invitation", func() {
			invitations.getByIDFn = func(_ context.Context, _ int64) (*model.Invitation, error) {
				return &model.Invitation{ID: 50, ClientID: clientID, Status: model.InvitationStatusAccepted}, nil
			}

			_, err := svc.Cancel(ctx, ownerID, 50)
			Expect(err).To(MatchError(service.ErrInviteNotPending))
		})
	})

	Describe("Resend", func() {
		It("extends the window, keeps the token and dispatches again", func() {
			existing := &model.Invitation{
				ID:        50,
				ClientID:  clientID,
				Email:     "ada@example.com",
				Token:     "original-token",
				Status:    model.InvitationStatusPending,
				ExpiresAt: time.Now().Add(time.Hour),
			}
			invitations.getByIDFn = func(_ context.Context, _ int64) (*model.Invitation, error) {
				return existing, nil
			}
			invitations.extendFn = func(_ context.Context, invID int64, expiresAt time.Time) (*model.Invitation, error) {
				Expect(expiresAt).To(BeTemporally("~", time.Now().Add(7*24*time.Hour), time.Minute))
				out := *existing
				out.ExpiresAt = expiresAt
				return &out, nil
			}

			resent, err := svc.Resend(ctx, ownerID, 50)

			Expect(err).NotTo(HaveOccurred())
			Expect(resent.Token).To(Equal("original-token"))
			Expect(notifier.sendCalls).To(HaveLen(1))
			Expect(notifier.sendCalls[0].Token).To(Equal("original-token"))
		})

		It("rejects resending a declined invitation", func() {
			invitations.getByIDFn = func(_ context.Context, _ int64) (*model.Invitation, error) {
				return &model.Invitation{ID: 50, ClientID: clientID, Status: model.InvitationStatusDeclined}, nil
			}

			_, err := svc.Resend(ctx, ownerID, 50)
			Expect(err).To(MatchError(service.ErrInviteNotPending))
		})
	})

	Describe("ListByClient", func() {
		It("is owner-only", func() {
			memberships.getFn = func(_ context.Context, _, uID int64) (*model.Membership, error) {
				return &model.Membership{ID: 5, ClientID: clientID, UserID: uID, Role: model.RoleViewer}, nil
			}

			_, err := svc.ListByClient(ctx, 999, clientID)
			Expect(err).To(MatchError(service.ErrUnauthorized))
		})
	})
})
