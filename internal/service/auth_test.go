package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"artdesk.app/api/common/id"
	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/service"
	"artdesk.app/api/internal/store"
)

var _ = Describe("AuthService", func() {
	const sessionTTL = 24 * time.Hour

	var (
		ctx      context.Context
		users    *mockUserStore
		sessions *mockSessionStore
		auth     service.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		id.Init(1)
		users = &mockUserStore{}
		sessions = &mockSessionStore{}
		auth = service.NewAuthService(users, sessions, sessionTTL)
	})

	Describe("Register", func() {
		It("stores a bcrypt hash, never the raw password", func() {
			var created *model.User
			users.createFn = func(_ context.Context, u *model.User) error {
				created = u
				return nil
			}

			user, session, err := auth.Register(ctx, "Ada", "Ada@Example.com ", "correct horse")

			Expect(err).NotTo(HaveOccurred())
			Expect(created).NotTo(BeNil())
			Expect(created.Email).To(Equal("ada@example.com"))
			Expect(created.PasswordHash).NotTo(ContainSubstring("correct horse"))
			Expect(bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct horse"))).To(Succeed())
			Expect(user.ID).To(Equal(created.ID))
			Expect(session.UserID).To(Equal(user.ID))
			Expect(session.ExpiresAt).To(BeTemporally("~", time.Now().Add(sessionTTL), time.Minute))
		})

		It("rejects passwords under eight characters", func() {
			_, _, err := auth.Register(ctx, "Ada", "ada@example.com", "short")
			Expect(err).To(MatchError(service.ErrWeakPassword))
		})

		It("maps a unique violation to ErrEmailTaken", func() {
			users.createFn = func(_ context.Context, _ *model.User) error {
				return &pgconn.PgError{Code: "23505"}
			}

			_, _, err := auth.Register(ctx, "Ada", "ada@example.com", "correct horse")

			Expect(err).To(MatchError(service.ErrEmailTaken))
		})

		It("passes other store failures through", func() {
			users.createFn = func(_ context.Context, _ *model.User) error {
				return errAny
			}

			_, _, err := auth.Register(ctx, "Ada", "ada@example.com", "correct horse")

			Expect(err).To(MatchError(errAny))
		})
	})

	Describe("Login", func() {
		var hash string

		BeforeEach(func() {
			h, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
			Expect(err).NotTo(HaveOccurred())
			hash = string(h)
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				if email != "ada@example.com" {
					return nil, store.ErrNotFound
				}
				return &model.User{ID: 42, Email: email, PasswordHash: hash}, nil
			}
		})

		It("creates a session for a valid password", func() {
			var created *model.Session
			sessions.createFn = func(_ context.Context, s *model.Session) error {
				created = s
				return nil
			}

			user, session, err := auth.Login(ctx, " Ada@example.COM", "correct horse")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(42)))
			Expect(created).NotTo(BeNil())
			Expect(session.ID).To(Equal(created.ID))
		})

		It("rejects a wrong password with the same error as an unknown email", func() {
			_, _, wrongPassword := auth.Login(ctx, "ada@example.com", "incorrect horse")
			_, _, unknownEmail := auth.Login(ctx, "nobody@example.com", "correct horse")

			Expect(wrongPassword).To(MatchError(service.ErrInvalidCredentials))
			Expect(unknownEmail).To(MatchError(service.ErrInvalidCredentials))
		})
	})

	Describe("ValidateSession", func() {
		It("returns the session's user", func() {
			sessions.getValidFn = func(_ context.Context, sid int64) (*model.Session, error) {
				return &model.Session{ID: sid, UserID: 42, ExpiresAt: time.Now().Add(time.Hour)}, nil
			}
			users.getByIDFn = func(_ context.Context, uid int64) (*model.User, error) {
				return &model.User{ID: uid, Email: "ada@example.com"}, nil
			}

			user, err := auth.ValidateSession(ctx, 7)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(42)))
		})

		It("treats an unknown or expired session as invalid", func() {
			_, err := auth.ValidateSession(ctx, 7)
			Expect(err).To(MatchError(service.ErrSessionInvalid))
		})

		It("treats a session pointing at a deleted user as invalid", func() {
			sessions.getValidFn = func(_ context.Context, sid int64) (*model.Session, error) {
				return &model.Session{ID: sid, UserID: 42, ExpiresAt: time.Now().Add(time.Hour)}, nil
			}

			_, err := auth.ValidateSession(ctx, 7)

			Expect(err).To(MatchError(service.ErrSessionInvalid))
		})
	})

	Describe("Logout", func() {
		It("deletes the session", func() {
			var deleted int64
			sessions.deleteFn = func(_ context.Context, sid int64) error {
				deleted = sid
				return nil
			}

			Expect(auth.Logout(ctx, 7)).To(Succeed())
			Expect(deleted).To(Equal(int64(7)))
		})
	})
})
