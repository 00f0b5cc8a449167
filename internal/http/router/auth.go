package router

import (
	"artdesk.app/api/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)

	authed := rg.Group("")
	authed.Use(h.RequireAuth())
	{
		authed.GET("/me", h.Me)
		authed.DELETE("/me", h.DeleteAccount)
	}
}
