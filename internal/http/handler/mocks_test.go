package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"

	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/service"
)

type mockAuthService struct {
	registerFn        func(ctx context.Context, name, email, password string) (*model.User, *model.Session, error)
	loginFn           func(ctx context.Context, email, password string) (*model.User, *model.Session, error)
	logoutFn          func(ctx context.Context, sessionID int64) error
	validateSessionFn func(ctx context.Context, sessionID int64) (*model.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password string) (*model.User, *model.Session, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, name, email, password)
	}
	return nil, nil, service.ErrInvalidCredentials
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.User, *model.Session, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return nil, nil, service.ErrInvalidCredentials
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID int64) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, sessionID)
	}
	return nil
}

func (m *mockAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	if m.validateSessionFn != nil {
		return m.validateSessionFn(ctx, sessionID)
	}
	return nil, service.ErrSessionInvalid
}

type mockUserService struct {
	getFn     func(ctx context.Context, userID int64) (*model.User, error)
	planForFn func(ctx context.Context, userID int64, now time.Time) (model.Plan, error)
	deleteFn  func(ctx context.Context, userID int64) error
}

func (m *mockUserService) Get(ctx context.Context, userID int64) (*model.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return nil, service.ErrUserNotFound
}

func (m *mockUserService) PlanFor(ctx context.Context, userID int64, now time.Time) (model.Plan, error) {
	if m.planForFn != nil {
		return m.planForFn(ctx, userID, now)
	}
	return model.PlanFree, nil
}

func (m *mockUserService) Delete(ctx context.Context, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return nil
}

type mockInvitationService struct {
	createFn       func(ctx context.Context, actorID, clientID int64, email string, role model.Role) (*model.Invitation, error)
	getByTokenFn   func(ctx context.Context, token string) (*model.Invitation, error)
	acceptFn       func(ctx context.Context, token string, user *model.User) (*model.Invitation, error)
	declineFn      func(ctx context.Context, token string) (*model.Invitation, error)
	cancelFn       func(ctx context.Context, actorID, invitationID int64) (*model.Invitation, error)
	resendFn       func(ctx context.Context, actorID, invitationID int64) (*model.Invitation, error)
	listByClientFn func(ctx context.Context, actorID, clientID int64) ([]model.Invitation, error)
}

func (m *mockInvitationService) Create(ctx context.Context, actorID, clientID int64, email string, role model.Role) (*model.Invitation, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actorID, clientID, email, role)
	}
	return nil, service.ErrInviteNotFound
}

func (m *mockInvitationService) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, service.ErrInviteNotFound
}

func (m *mockInvitationService) Accept(ctx context.Context, token string, user *model.User) (*model.Invitation, error) {
	if m.acceptFn != nil {
		return m.acceptFn(ctx, token, user)
	}
	return nil, service.ErrInviteNotFound
}

func (m *mockInvitationService) Decline(ctx context.Context, token string) (*model.Invitation, error) {
	if m.declineFn != nil {
		return m.declineFn(ctx, token)
	}
	return nil, service.ErrInviteNotFound
}

func (m *mockInvitationService) Cancel(ctx context.Context, actorID, invitationID int64) (*model.Invitation, error) {
	if m.cancelFn != nil {
		return m.cancelFn(ctx, actorID, invitationID)
	}
	return nil, service.ErrInviteNotFound
}

func (m *mockInvitationService) Resend(ctx context.Context, actorID, invitationID int64) (*model.Invitation, error) {
	if m.resendFn != nil {
		return m.resendFn(ctx, actorID, invitationID)
	}
	return nil, service.ErrInviteNotFound
}

func (m *mockInvitationService) ListByClient(ctx context.Context, actorID, clientID int64) ([]model.Invitation, error) {
	if m.listByClientFn != nil {
		return m.listByClientFn(ctx, actorID, clientID)
	}
	return nil, nil
}

type mockClientService struct {
	createFn        func(ctx context.Context, ownerID int64, input service.ClientInput) (*model.Client, error)
	getFn           func(ctx context.Context, actorID, clientID int64) (*model.Client, error)
	listFn          func(ctx context.Context, actorID int64) ([]model.Client, error)
	updateFn        func(ctx context.Context, actorID, clientID int64, input service.ClientInput) (*model.Client, error)
	deleteFn        func(ctx context.Context, actorID, clientID int64) error
	restoreFn       func(ctx context.Context, actorID, clientID int64) error
	collaboratorsFn func(ctx context.Context, actorID, clientID int64) (*service.CollaboratorList, error)
}

func (m *mockClientService) Create(ctx context.Context, ownerID int64, input service.ClientInput) (*model.Client, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, input)
	}
	return nil, service.ErrClientNotFound
}

func (m *mockClientService) Get(ctx context.Context, actorID, clientID int64) (*model.Client, error) {
	if m.getFn != nil {
		return m.getFn(ctx, actorID, clientID)
	}
	return nil, service.ErrClientNotFound
}

func (m *mockClientService) List(ctx context.Context, actorID int64) ([]model.Client, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actorID)
	}
	return nil, nil
}

func (m *mockClientService) Update(ctx context.Context, actorID, clientID int64, input service.ClientInput) (*model.Client, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, actorID, clientID, input)
	}
	return nil, service.ErrClientNotFound
}

func (m *mockClientService) Delete(ctx context.Context, actorID, clientID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, actorID, clientID)
	}
	return nil
}

func (m *mockClientService) Restore(ctx context.Context, actorID, clientID int64) error {
	if m.restoreFn != nil {
		return m.restoreFn(ctx, actorID, clientID)
	}
	return nil
}

func (m *mockClientService) Collaborators(ctx context.Context, actorID, clientID int64) (*service.CollaboratorList, error) {
	if m.collaboratorsFn != nil {
		return m.collaboratorsFn(ctx, actorID, clientID)
	}
	return &service.CollaboratorList{}, nil
}

// testUser is the account RequireAuth resolves for authed test requests.
var testUser = &model.User{ID: 42, Name: "Ada", Email: "ada@example.com"}

// authServiceFor returns an auth service whose session 7 belongs to
// testUser.
func authServiceFor(user *model.User) *mockAuthService {
	return &mockAuthService{
		validateSessionFn: func(_ context.Context, sessionID int64) (*model.User, error) {
			if sessionID == 7 {
				return user, nil
			}
			return nil, service.ErrSessionInvalid
		},
	}
}

func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: "artdesk_session", Value: "7"})
	return req
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func perform(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
