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

var _ = Describe("AuthHandler", func() {
	var (
		auth   *mockAuthService
		users  *mockUserService
		router *gin.Engine
	)

	sessionCookie := func(rec *httptest.ResponseRecorder) *http.Cookie {
		for _, c := range rec.Result().Cookies() {
			if c.Name == "artdesk_session" {
				return c
			}
		}
		return nil
	}

	BeforeEach(func() {
		auth = authServiceFor(testUser)
		users = &mockUserService{}
		h := handler.NewAuthHandler(auth, users, time.Hour, false)

		router = gin.New()
		router.POST("/register", h.Register)
		router.POST("/login", h.Login)
		router.POST("/logout", h.Logout)
		authed := router.Group("", h.RequireAuth())
		authed.GET("/me", h.Me)
		authed.DELETE("/me", h.DeleteAccount)
	})

	Describe("Register", func() {
		It("sets the session cookie and returns the profile", func() {
			auth.registerFn = func(_ context.Context, name, email, password string) (*model.User, *model.Session, error) {
				Expect(name).To(Equal("Ada"))
				return testUser, &model.Session{ID: 7, UserID: testUser.ID}, nil
			}

			req := jsonRequest(http.MethodPost, "/register",
				gin.H{"name": "Ada", "email": "ada@example.com", "password": "correct horse"})
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			cookie := sessionCookie(rec)
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.Value).To(Equal("7"))
			Expect(cookie.HttpOnly).To(BeTrue())
			var body map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body).NotTo(HaveKey("password_hash"))
		})

		It("rejects a short password at the binding layer", func() {
			req := jsonRequest(http.MethodPost, "/register",
				gin.H{"name": "Ada", "email": "ada@example.com", "password": "short"})
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps a duplicate email to 409", func() {
			auth.registerFn = func(_ context.Context, _, _, _ string) (*model.User, *model.Session, error) {
				return nil, nil, service.ErrEmailTaken
			}

			req := jsonRequest(http.MethodPost, "/register",
				gin.H{"name": "Ada", "email": "ada@example.com", "password": "correct horse"})
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("Login", func() {
		It("returns 401 for bad credentials", func() {
			req := jsonRequest(http.MethodPost, "/login",
				gin.H{"email": "ada@example.com", "password": "wrong"})
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("sets the session cookie on success", func() {
			auth.loginFn = func(_ context.Context, _, _ string) (*model.User, *model.Session, error) {
				return testUser, &model.Session{ID: 7, UserID: testUser.ID}, nil
			}

			req := jsonRequest(http.MethodPost, "/login",
				gin.H{"email": "ada@example.com", "password": "correct horse"})
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(sessionCookie(rec)).NotTo(BeNil())
		})
	})

	Describe("Logout", func() {
		It("deletes the session and clears the cookie", func() {
			var loggedOut int64
			auth.logoutFn = func(_ context.Context, sessionID int64) error {
				loggedOut = sessionID
				return nil
			}

			rec := perform(router, withSession(jsonRequest(http.MethodPost, "/logout", nil)))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(loggedOut).To(Equal(int64(7)))
			cookie := sessionCookie(rec)
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.MaxAge).To(BeNumerically("<", 0))
		})
	})

	Describe("Me", func() {
		It("returns the profile with the plan tier", func() {
			users.planForFn = func(_ context.Context, userID int64, _ time.Time) (model.Plan, error) {
				Expect(userID).To(Equal(testUser.ID))
				return model.PlanPremium, nil
			}

			rec := perform(router, withSession(httptest.NewRequest(http.MethodGet, "/me", nil)))

			Expect(rec.Code).To(Equal(http.StatusOK))
			var body map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["plan"]).To(Equal("premium"))
		})

		It("rejects requests without a session cookie", func() {
			rec := perform(router, httptest.NewRequest(http.MethodGet, "/me", nil))
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("clears the cookie for a stale session", func() {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.AddCookie(&http.Cookie{Name: "artdesk_session", Value: "999"})
			rec := perform(router, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			cookie := sessionCookie(rec)
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.MaxAge).To(BeNumerically("<", 0))
		})
	})

	Describe("DeleteAccount", func() {
		It("soft-deletes the account and ends the session", func() {
			var deleted int64
			users.deleteFn = func(_ context.Context, userID int64) error {
				deleted = userID
				return nil
			}

			rec := perform(router, withSession(jsonRequest(http.MethodDelete, "/me", nil)))

			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(deleted).To(Equal(testUser.ID))
		})
	})
})
