package router

import (
	"time"

	"artdesk.app/api/internal/http/handler"
	"artdesk.app/api/internal/service"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	SessionTTL   time.Duration
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuthHandler(services.Auth(), services.Users(), cfg.SessionTTL, cfg.IsProduction)
	clientHandler := handler.NewClientHandler(services.Clients())
	membershipHandler := handler.NewMembershipHandler(services.Memberships())
	invitationHandler := handler.NewInvitationHandler(services.Invitations())
	taskHandler := handler.NewTaskHandler(services.Tasks())
	artHandler := handler.NewArtHandler(services.Arts())

	AuthRouter(router.Group("/auth"), authHandler)

	v1 := router.Group("/api/v1")
	{
		InvitationRouter(v1.Group("/invitations"), authHandler, invitationHandler)

		authed := v1.Group("")
		authed.Use(authHandler.RequireAuth())
		{
			ClientRouter(authed.Group("/clients"), clientHandler, membershipHandler, invitationHandler, taskHandler)
			TaskRouter(authed.Group("/tasks"), taskHandler, artHandler)
			ArtRouter(authed.Group("/arts"), artHandler)
		}
	}
}
