package router

import (
	"artdesk.app/api/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func ArtRouter(rg *gin.RouterGroup, h *handler.ArtHandler) {
	rg.GET("/:artID", h.Get)
	rg.PATCH("/:artID", h.Update)
	rg.DELETE("/:artID", h.Delete)
	rg.POST("/:artID/review", h.Review)
	rg.POST("/:artID/comments", h.AddComment)
	rg.GET("/:artID/comments", h.ListComments)
	rg.GET("/:artID/feedback", h.ListFeedback)
}
