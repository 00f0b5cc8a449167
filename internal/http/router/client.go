package router

import (
	"artdesk.app/api/internal/http/handler"
	"github.com/gin-gonic/gin"
)

// ClientRouter mounts the client workspace routes plus the nested
// member, invitation, task and art collections that hang off a client.
func ClientRouter(
	rg *gin.RouterGroup,
	clients *handler.ClientHandler,
	members *handler.MembershipHandler,
	invitations *handler.InvitationHandler,
	tasks *handler.TaskHandler,
) {
	rg.POST("", clients.Create)
	rg.GET("", clients.List)
	rg.GET("/:clientID", clients.Get)
	rg.PATCH("/:clientID", clients.Update)
	rg.DELETE("/:clientID", clients.Delete)
	rg.POST("/:clientID/restore", clients.Restore)
	rg.GET("/:clientID/collaborators", clients.Collaborators)

	rg.GET("/:clientID/members", members.List)
	rg.PATCH("/:clientID/members/:userID", members.UpdateRole)
	rg.DELETE("/:clientID/members/:userID", members.Remove)

	rg.POST("/:clientID/invitations", invitations.Create)
	rg.GET("/:clientID/invitations", invitations.ListByClient)

	rg.POST("/:clientID/tasks", tasks.Create)
	rg.GET("/:clientID/tasks", tasks.ListByClient)
}
