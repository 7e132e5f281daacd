package http

import (
	"github.com/gin-gonic/gin"

	"taskboard-aggregator/internal/taskboard"
	"taskboard-aggregator/pkg/log"
)

// Handler is the public interface for the taskboard HTTP delivery layer.
type Handler interface {
	Aggregate(c *gin.Context)
	View(c *gin.Context)
	ExportDeadlines(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc taskboard.UseCase
}

// New creates a new HTTP handler for the taskboard domain.
func New(l log.Logger, uc taskboard.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
