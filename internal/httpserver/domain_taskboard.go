package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskboard-aggregator/internal/middleware"
	taskboardHTTP "taskboard-aggregator/internal/taskboard/delivery/http"
)

// setupTaskboardDomain registers the taskboard routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupTaskboardDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskboardHTTP.New(srv.l, srv.taskboardUC)
	taskboardHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Taskboard domain registered")
	return nil
}
