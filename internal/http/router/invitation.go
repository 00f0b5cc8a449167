package router

import (
	"artdesk.app/api/internal/http/handler"
	"github.com/gin-gonic/gin"
)

// InvitationRouter sets up the token-addressed invitation routes.
// Preview and decline are public so invitees can act straight from
// the email link; accepting requires a signed-in user.
func InvitationRouter(rg *gin.RouterGroup, auth *handler.AuthHandler, h *handler.InvitationHandler) {
	rg.GET("/preview", h.Preview)
	rg.POST("/decline", h.Decline)

	authed := rg.Group("")
	authed.Use(auth.RequireAuth())
	{
		authed.POST("/accept", h.Accept)
		authed.DELETE("/:invitationID", h.Cancel)
		authed.POST("/:invitationID/resend", h.Resend)
	}
}
