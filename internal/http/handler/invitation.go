package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"artdesk.app/api/internal/http/dto"
	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/service"
	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	invitationService service.InvitationService
}

func NewInvitationHandler(invitationService service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

func (h *InvitationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}

	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.invitationService.Create(ctx, CurrentUser(c).ID, clientID, req.Email, model.Role(req.Role))
	if err != nil {
		respondServiceError(c, err, "failed to create invitation")
		return
	}

	slog.InfoContext(ctx, "invitation created",
		"invitation_id", inv.ID,
		"client_id", inv.ClientID,
		"email", inv.Email)

	c.JSON(http.StatusCreated, dto.ToInvitationResponse(inv))
}

func (h *InvitationHandler) ListByClient(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}

	invitations, err := h.invitationService.ListByClient(ctx, CurrentUser(c).ID, clientID)
	if err != nil {
		respondServiceError(c, err, "failed to list invitations")
		return
	}

	resp := dto.ListInvitationsResponse{Invitations: make([]dto.InvitationResponse, len(invitations))}
	for i := range invitations {
		resp.Invitations[i] = *dto.ToInvitationResponse(&invitations[i])
	}

	c.JSON(http.StatusOK, resp)
}

// Preview validates an invite token for the public landing page.
func (h *InvitationHandler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	inv, err := h.invitationService.GetByToken(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "invitation not found", "code": "not_found"})
		case errors.Is(err, service.ErrInviteExpired):
			c.JSON(http.StatusGone, gin.H{"error": "invitation is no longer open", "code": "expired"})
		default:
			slog.ErrorContext(ctx, "failed to validate invitation", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate invitation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.InvitationPreviewResponse{
		Email:     inv.Email,
		Role:      string(inv.Role),
		ExpiresAt: inv.ExpiresAt,
		Valid:     true,
	})
}

func (h *InvitationHandler) Accept(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.InvitationTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	user := CurrentUser(c)

	inv, err := h.invitationService.Accept(ctx, req.Token, user)
	if err != nil {
		respondServiceError(c, err, "failed to accept invitation")
		return
	}

	slog.InfoContext(ctx, "invitation accepted",
		"invitation_id", inv.ID,
		"client_id", inv.ClientID,
		"user_id", user.ID)

	c.JSON(http.StatusOK, dto.ToInvitationResponse(inv))
}

func (h *InvitationHandler) Decline(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.InvitationTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	inv, err := h.invitationService.Decline(ctx, req.Token)
	if err != nil {
		respondServiceError(c, err, "failed to decline invitation")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationResponse(inv))
}

func (h *InvitationHandler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	invitationID, ok := pathID(c, "invitationID")
	if !ok {
		return
	}

	inv, err := h.invitationService.Cancel(ctx, CurrentUser(c).ID, invitationID)
	if err != nil {
		respondServiceError(c, err, "failed to cancel invitation")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationResponse(inv))
}

func (h *InvitationHandler) Resend(c *gin.Context) {
	ctx := c.Request.Context()

	invitationID, ok := pathID(c, "invitationID")
	if !ok {
		return
	}

	inv, err := h.invitationService.Resend(ctx, CurrentUser(c).ID, invitationID)
	if err != nil {
		respondServiceError(c, err, "failed to resend invitation")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationResponse(inv))
}
