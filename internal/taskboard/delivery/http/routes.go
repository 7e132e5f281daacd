package http

import (
	"github.com/gin-gonic/gin"

	"taskboard-aggregator/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an identified user via the Identity middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	board := rg.Group("/taskboard")
	{
		board.GET("", mw.Identity(), h.Aggregate)
		board.GET("/view", mw.Identity(), h.View)
		board.POST("/calendar-export", mw.Identity(), h.ExportDeadlines)
	}
}
