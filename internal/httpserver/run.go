package httpserver

import (
	"fmt"
)

// Run wires up all routes and serves until the listener fails.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("failed to map handlers: %w", err)
	}

	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
