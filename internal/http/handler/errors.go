package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"artdesk.app/api/internal/service"
	"github.com/gin-gonic/gin"
)

// respondServiceError translates the service sentinels into HTTP
// status codes. Handlers with endpoint-specific mappings handle those
// cases before falling through to this.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrArtNotFound),
		errors.Is(err, service.ErrMembershipNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrInviteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrSelfTarget),
		errors.Is(err, service.ErrEmailMismatch),
		errors.Is(err, service.ErrCollaboratorLimit),
		errors.Is(err, service.ErrPremiumRequired):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyCollaborator),
		errors.Is(err, service.ErrArtApproved),
		errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInviteExpired):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidTaskStatus),
		errors.Is(err, service.ErrInvalidArtStatus),
		errors.Is(err, service.ErrInviteNotPending),
		errors.Is(err, service.ErrClientName),
		errors.Is(err, service.ErrTaskTitle),
		errors.Is(err, service.ErrArtTitle),
		errors.Is(err, service.ErrCommentText),
		errors.Is(err, service.ErrAssigneeNotMember),
		errors.Is(err, service.ErrWeakPassword):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
