package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"artdesk.app/api/internal/http/dto"
	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "artdesk_session"
	currentUserKey    = "currentUser"
)

type AuthHandler struct {
	authService  service.AuthService
	userService  service.UserService
	sessionTTL   time.Duration
	isProduction bool
}

func NewAuthHandler(
	authService service.AuthService,
	userService service.UserService,
	sessionTTL time.Duration,
	isProduction bool,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		userService:  userService,
		sessionTTL:   sessionTTL,
		isProduction: isProduction,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, session, err := h.authService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "failed to register")
		return
	}

	h.setSessionCookie(c, session.ID)

	slog.InfoContext(ctx, "user registered", "user_id", user.ID, "email", user.Email)

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, session, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		slog.ErrorContext(ctx, "login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	h.setSessionCookie(c, session.ID)

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID, "email", user.Email)

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if sessionID, err := h.getSessionID(c); err == nil && sessionID > 0 {
		if err := h.authService.Logout(ctx, sessionID); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err, "session_id", sessionID)
		}
	}

	h.clearSessionCookie(c)

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	user := CurrentUser(c)

	plan, err := h.userService.PlanFor(ctx, user.ID, time.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to resolve plan", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		User: dto.ToUserResponse(user),
		Plan: string(plan),
	})
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	ctx := c.Request.Context()

	user := CurrentUser(c)

	if err := h.userService.Delete(ctx, user.ID); err != nil {
		respondServiceError(c, err, "failed to delete account")
		return
	}

	if sessionID, err := h.getSessionID(c); err == nil && sessionID > 0 {
		if err := h.authService.Logout(ctx, sessionID); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err, "session_id", sessionID)
		}
	}
	h.clearSessionCookie(c)

	slog.InfoContext(ctx, "account deleted", "user_id", user.ID)

	c.Status(http.StatusNoContent)
}

// RequireAuth resolves the session cookie and stashes the user in the
// request context. Routes behind it can rely on CurrentUser.
func (h *AuthHandler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := h.getSessionID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			c.Abort()
			return
		}

		user, err := h.authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionInvalid) || errors.Is(err, service.ErrUserNotFound) {
				h.clearSessionCookie(c)
				c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				c.Abort()
				return
			}
			slog.ErrorContext(c.Request.Context(), "failed to validate session", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *gin.Context) *model.User {
	user, _ := c.MustGet(currentUserKey).(*model.User)
	return user
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionID int64) {
	c.SetCookie(
		sessionCookieName,
		strconv.FormatInt(sessionID, 10),
		int(h.sessionTTL.Seconds()),
		"/",
		"",
		h.isProduction,
		true,
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(
		sessionCookieName,
		"",
		-1,
		"/",
		"",
		h.isProduction,
		true,
	)
}

func (h *AuthHandler) getSessionID(c *gin.Context) (int64, error) {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(cookie, 10, 64)
}
