package http

import (
	"github.com/gin-gonic/gin"

	"taskboard-aggregator/pkg/response"
)

// Aggregate godoc
// @Summary     Aggregate the taskboard
// @Description Runs one aggregation pass for the requesting user: resolves the scope to a member set, fetches every member's tasks and each task's collaborators, and stores the merged collection.
// @Tags        Taskboard
// @Accept      json
// @Produce     json
// @Param       X-User-ID header int    true  "Requesting user ID"
// @Param       scope     query  string false "Membership scope (team/department, default: team)"
// @Success     200 {object} aggregateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - team has no department"
// @Failure     502 {object} response.Resp "Bad Gateway - backend lookup failed"
// @Router      /api/v1/taskboard [GET]
func (h *handler) Aggregate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAggregateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Aggregate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Aggregate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAggregateResp(output))
}

// View godoc
// @Summary     View the aggregated taskboard
// @Description Returns a filtered and sorted view over the stored collection. Never triggers a backend re-fetch.
// @Tags        Taskboard
// @Accept      json
// @Produce     json
// @Param       X-User-ID header int    true  "Requesting user ID"
// @Param       member    query  int    false "Keep tasks owned by or shared with this member"
// @Param       status    query  string false "Keep tasks with this exact status"
// @Param       deadline  query  string false "Keep tasks whose deadline falls in this bucket (overdue/today/week/month)"
// @Param       sort      query  string false "Deadline ordering (default/deadline_asc/deadline_desc)"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/taskboard/view [GET]
func (h *handler) View(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processViewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.View(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.View: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newViewResp(output))
}

// ExportDeadlines godoc
// @Summary     Export deadlines to Google Calendar
// @Description Creates a one-hour calendar event at each stored task's deadline. Tasks without a deadline and failed creations are skipped.
// @Tags        Taskboard
// @Accept      json
// @Produce     json
// @Param       X-User-ID header int       true  "Requesting user ID"
// @Param       body      body   exportReq false "Export options"
// @Success     200 {object} exportResp
// @Failure     503 {object} response.Resp "Service Unavailable - calendar not configured"
// @Router      /api/v1/taskboard/calendar-export [POST]
func (h *handler) ExportDeadlines(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportDeadlines(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportDeadlines: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExportResp(output))
}
