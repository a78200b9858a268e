package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/hooklinehq/hookline/pkg/database"
)

// healthHandler handles GET /health: liveness only.
func (s *Server) healthHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"status": "ok"})
}

// systemHealthHandler handles GET /api/v1/system/health: DB reachability
// plus dispatch pool state.
func (s *Server) systemHealthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	body := map[string]interface{}{"status": "healthy"}
	status := http.StatusOK

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if s.pool != nil {
		body["dispatch_pool"] = s.pool.Health()
	}

	return c.JSON(status, body)
}
