package router

import (
	"artdesk.app/api/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func TaskRouter(rg *gin.RouterGroup, tasks *handler.TaskHandler, arts *handler.ArtHandler) {
	rg.GET("/:taskID", tasks.Get)
	rg.PATCH("/:taskID", tasks.Update)
	rg.PATCH("/:taskID/status", tasks.UpdateStatus)
	rg.DELETE("/:taskID", tasks.Delete)
	rg.POST("/:taskID/restore", tasks.Restore)

	rg.POST("/:taskID/arts", arts.Create)
	rg.GET("/:taskID/arts", arts.ListByTask)
}
