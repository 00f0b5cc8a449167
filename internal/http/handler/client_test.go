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

var _ = Describe("ClientHandler", func() {
	var (
		clients *mockClientService
		router  *gin.Engine
	)

	BeforeEach(func() {
		clients = &mockClientService{}
		h := handler.NewClientHandler(clients)
		authHandler := handler.NewAuthHandler(authServiceFor(testUser), &mockUserService{}, time.Hour, false)

		router = gin.New()
		authed := router.Group("/clients", authHandler.RequireAuth())
		authed.POST("", h.Create)
		authed.GET("/:clientID", h.Get)
		authed.DELETE("/:clientID", h.Delete)
		authed.POST("/:clientID/restore", h.Restore)
		authed.GET("/:clientID/collaborators", h.Collaborators)
	})

	Describe("Create", func() {
		It("creates the client for the caller", func() {
			clients.createFn = func(_ context.Context, ownerID int64, input service.ClientInput) (*model.Client, error) {
				Expect(ownerID).To(Equal(testUser.ID))
				Expect(input.Name).To(Equal("Acme"))
				return &model.Client{ID: 200, Name: input.Name, Status: "active"}, nil
			}

			req := withSession(jsonRequest(http.MethodPost, "/clients", gin.H{"name": "Acme"}))
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			var body map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["name"]).To(Equal("Acme"))
			Expect(body["id"]).To(Equal("200"))
		})

		It("rejects a missing name at the binding layer", func() {
			req := withSession(jsonRequest(http.MethodPost, "/clients", gin.H{}))
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Get", func() {
		It("maps a hidden client to 403", func() {
			clients.getFn = func(_ context.Context, _, _ int64) (*model.Client, error) {
				return nil, service.ErrUnauthorized
			}

			rec := perform(router, withSession(httptest.NewRequest(http.MethodGet, "/clients/200", nil)))

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("maps a missing client to 404", func() {
			clients.getFn = func(_ context.Context, _, _ int64) (*model.Client, error) {
				return nil, service.ErrClientNotFound
			}

			rec := perform(router, withSession(httptest.NewRequest(http.MethodGet, "/clients/200", nil)))

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Delete and Restore", func() {
		It("answers 204 on delete", func() {
			var deleted int64
			clients.deleteFn = func(_ context.Context, _, clientID int64) error {
				deleted = clientID
				return nil
			}

			rec := perform(router, withSession(jsonRequest(http.MethodDelete, "/clients/200", nil)))

			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(deleted).To(Equal(int64(200)))
		})

		It("answers 204 on restore", func() {
			rec := perform(router, withSession(jsonRequest(http.MethodPost, "/clients/200/restore", nil)))
			Expect(rec.Code).To(Equal(http.StatusNoContent))
		})
	})

	Describe("Collaborators", func() {
		It("returns the roster with the cap", func() {
			clients.collaboratorsFn = func(_ context.Context, _, _ int64) (*service.CollaboratorList, error) {
				return &service.CollaboratorList{
					Memberships: []model.Membership{
						{ID: 1, ClientID: 200, UserID: testUser.ID, Role: model.RoleOwner},
					},
					Count:            1,
					MaxCollaborators: 3,
				}, nil
			}

			rec := perform(router, withSession(httptest.NewRequest(http.MethodGet, "/clients/200/collaborators", nil)))

			Expect(rec.Code).To(Equal(http.StatusOK))
			var body map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["count"]).To(BeEquivalentTo(1))
			Expect(body["max_collaborators"]).To(BeEquivalentTo(3))
			Expect(body["members"]).To(HaveLen(1))
		})
	})
})
