package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/hooklinehq/hookline/pkg/dispatch"
)

// listDispatchesHandler handles GET /api/v1/dispatches.
func (s *Server) listDispatchesHandler(c *echo.Context) error {
	f := dispatch.ListFilter{
		Status:     c.QueryParam("status"),
		SessionKey: c.QueryParam("session_key"),
		QueueKey:   c.QueryParam("queue_key"),
	}
	if v := c.QueryParam("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}
	rows, err := s.ledger.List(c.Request().Context(), f)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// getDispatchHandler handles GET /api/v1/dispatches/:id.
func (s *Server) getDispatchHandler(c *echo.Context) error {
	row, err := s.ledger.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// cancelDispatchHandler handles POST /api/v1/dispatches/:id/cancel.
func (s *Server) cancelDispatchHandler(c *echo.Context) error {
	id := c.Param("id")
	if err := s.ledger.RequestCancel(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	// Nudge the in-process worker; the control poll catches remote ones.
	if s.pool != nil {
		s.pool.CancelDispatch(id)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"status": "cancel_requested"})
}

// pauseDispatchHandler handles POST /api/v1/dispatches/:id/pause.
func (s *Server) pauseDispatchHandler(c *echo.Context) error {
	if err := s.ledger.RequestPause(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"status": "pause_requested"})
}

// resumeDispatchHandler handles POST /api/v1/dispatches/:id/resume.
func (s *Server) resumeDispatchHandler(c *echo.Context) error {
	if err := s.ledger.ResumePaused(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"status": "queued"})
}
