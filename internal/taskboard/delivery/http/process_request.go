package http

import (
	"github.com/gin-gonic/gin"

	"taskboard-aggregator/internal/middleware"
)

// processAggregateReq binds the aggregate query parameters and resolves the
// requesting user from the identity middleware.
func (h *handler) processAggregateReq(c *gin.Context) (aggregateReq, error) {
	var req aggregateReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.UserID = middleware.UserID(c)
	return req, req.validate()
}

// processViewReq binds the view filter/sort query parameters.
func (h *handler) processViewReq(c *gin.Context) (viewReq, error) {
	var req viewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processExportReq binds the optional export options body.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, req.validate()
}
