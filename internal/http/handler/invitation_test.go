package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"artdesk.app/api/internal/http/handler"
	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/service"
)

var _ = Describe("InvitationHandler", func() {
	var (
		invitations *mockInvitationService
		router      *gin.Engine
	)

	pendingInvitation := func() *model.Invitation {
		return &model.Invitation{
			ID:        1,
			ClientID:  200,
			Email:     "grace@example.com",
			Role:      model.RoleParticipant,
			Status:    model.InvitationStatusPending,
			Token:     "tok",
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		}
	}

	BeforeEach(func() {
		invitations = &mockInvitationService{}
		h := handler.NewInvitationHandler(invitations)
		authHandler := handler.NewAuthHandler(authServiceFor(testUser), &mockUserService{}, time.Hour, false)

		router = gin.New()
		router.GET("/invitations/preview", h.Preview)
		router.POST("/invitations/decline", h.Decline)
		authed := router.Group("", authHandler.RequireAuth())
		authed.POST("/clients/:clientID/invitations", h.Create)
		authed.GET("/clients/:clientID/invitations", h.ListByClient)
		authed.POST("/invitations/accept", h.Accept)
		authed.DELETE("/invitations/:invitationID", h.Cancel)
		authed.POST("/invitations/:invitationID/resend", h.Resend)
	})

	Describe("Create", func() {
		It("creates the invitation for the authenticated owner", func() {
			invitations.createFn = func(_ context.Context, actorID, clientID int64, email string, role model.Role) (*model.Invitation, error) {
				Expect(actorID).To(Equal(testUser.ID))
				Expect(clientID).To(Equal(int64(200)))
				Expect(email).To(Equal("grace@example.com"))
				Expect(role).To(Equal(model.RoleParticipant))
				return pendingInvitation(), nil
			}

			req := withSession(jsonRequest(http.MethodPost, "/clients/200/invitations",
				gin.H{"email": "grace@example.com", "role": "participant"}))
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			var body map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["email"]).To(Equal("grace@example.com"))
			Expect(body).NotTo(HaveKey("token"))
		})

		It("requires authentication", func() {
			req := jsonRequest(http.MethodPost, "/clients/200/invitations",
				gin.H{"email": "grace@example.com", "role": "participant"})
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("maps the collaborator cap to 403", func() {
			invitations.createFn = func(_ context.Context, _, _ int64, _ string, _ model.Role) (*model.Invitation, error) {
				return nil, service.ErrCollaboratorLimit
			}

			req := withSession(jsonRequest(http.MethodPost, "/clients/200/invitations",
				gin.H{"email": "grace@example.com", "role": "participant"}))
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("maps an existing collaborator to 409", func() {
			invitations.createFn = func(_ context.Context, _, _ int64, _ string, _ model.Role) (*model.Invitation, error) {
				return nil, service.ErrAlreadyCollaborator
			}

			req := withSession(jsonRequest(http.MethodPost, "/clients/200/invitations",
				gin.H{"email": "grace@example.com", "role": "participant"}))
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusConflict))
		})

		It("maps an unknown role to 422", func() {
			invitations.createFn = func(_ context.Context, _, _ int64, _ string, _ model.Role) (*model.Invitation, error) {
				return nil, service.ErrInvalidRole
			}

			req := withSession(jsonRequest(http.MethodPost, "/clients/200/invitations",
				gin.H{"email": "grace@example.com", "role": "admin"}))
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
		})

		It("rejects a malformed client id", func() {
			req := withSession(jsonRequest(http.MethodPost, "/clients/abc/invitations",
				gin.H{"email": "grace@example.com", "role": "participant"}))
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Preview", func() {
		It("returns the redacted invitation for a valid token", func() {
			invitations.getByTokenFn = func(_ context.Context, token string) (*model.Invitation, error) {
				Expect(token).To(Equal("tok"))
				return pendingInvitation(), nil
			}

			rec := perform(router, httptest.NewRequest(http.MethodGet, "/invitations/preview?token=tok", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
			var body map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["email"]).To(Equal("grace@example.com"))
			Expect(body["valid"]).To(BeTrue())
			Expect(body).NotTo(HaveKey("token"))
		})

		It("requires a token", func() {
			rec := perform(router, httptest.NewRequest(http.MethodGet, "/invitations/preview", nil))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for an unknown token", func() {
			rec := perform(router, httptest.NewRequest(http.MethodGet, "/invitations/preview?token=nope", nil))
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 410 for an expired or settled invitation", func() {
			invitations.getByTokenFn = func(_ context.Context, _ string) (*model.Invitation, error) {
				return nil, service.ErrInviteExpired
			}

			rec := perform(router, httptest.NewRequest(http.MethodGet, "/invitations/preview?token=tok", nil))

			Expect(rec.Code).To(Equal(http.StatusGone))
		})
	})

	Describe("Accept", func() {
		It("accepts on behalf of the authenticated user", func() {
			invitations.acceptFn = func(_ context.Context, token string, user *model.User) (*model.Invitation, error) {
				Expect(token).To(Equal("tok"))
				Expect(user.ID).To(Equal(testUser.ID))
				inv := pendingInvitation()
				inv.Status = model.InvitationStatusAccepted
				return inv, nil
			}

			req := withSession(jsonRequest(http.MethodPost, "/invitations/accept", gin.H{"token": "tok"}))
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("maps an email mismatch to 403", func() {
			invitations.acceptFn = func(_ context.Context, _ string, _ *model.User) (*model.Invitation, error) {
				return nil, service.ErrEmailMismatch
			}

			req := withSession(jsonRequest(http.MethodPost, "/invitations/accept", gin.H{"token": "tok"}))
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("maps an expired invitation to 410", func() {
			invitations.acceptFn = func(_ context.Context, _ string, _ *model.User) (*model.Invitation, error) {
				return nil, service.ErrInviteExpired
			}

			req := withSession(jsonRequest(http.MethodPost, "/invitations/accept", gin.H{"token": "tok"}))
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusGone))
		})
	})

	Describe("Decline", func() {
		It("is open to anonymous callers", func() {
			invitations.declineFn = func(_ context.Context, token string) (*model.Invitation, error) {
				inv := pendingInvitation()
				inv.Status = model.InvitationStatusDeclined
				return inv, nil
			}

			req := jsonRequest(http.MethodPost, "/invitations/decline", gin.H{"token": "tok"})
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("Cancel", func() {
		It("maps a non-pending invitation to 422", func() {
			invitations.cancelFn = func(_ context.Context, _, _ int64) (*model.Invitation, error) {
				return nil, service.ErrInviteNotPending
			}

			req := withSession(jsonRequest(http.MethodDelete, "/invitations/1", nil))
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
		})
	})

	Describe("Resend", func() {
		It("re-dispatches a pending invitation", func() {
			invitations.resendFn = func(_ context.Context, actorID, invitationID int64) (*model.Invitation, error) {
				Expect(actorID).To(Equal(testUser.ID))
				Expect(invitationID).To(Equal(int64(1)))
				return pendingInvitation(), nil
			}

			req := withSession(jsonRequest(http.MethodPost, "/invitations/1/resend", nil))
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})
})
