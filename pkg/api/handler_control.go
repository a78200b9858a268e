package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hooklinehq/hookline/pkg/control"
)

type pauseRequest struct {
	Mode   string `json:"mode"`
	Reason string `json:"reason"`
}

type concurrencyRequest struct {
	MaxConcurrentDispatches int `json:"max_concurrent_dispatches"`
}

// getControlHandler handles GET /api/v1/control.
func (s *Server) getControlHandler(c *echo.Context) error {
	snap, err := s.control.Snapshot(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

// pauseHandler handles POST /api/v1/control/pause.
func (s *Server) pauseHandler(c *echo.Context) error {
	var req pauseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Mode == "" {
		req.Mode = string(control.PauseSoft)
	}
	snap, err := s.control.Pause(c.Request().Context(), control.PauseMode(req.Mode), req.Reason)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

// resumeHandler handles POST /api/v1/control/resume.
func (s *Server) resumeHandler(c *echo.Context) error {
	snap, err := s.control.Resume(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

// emergencyStopHandler handles POST /api/v1/control/emergency-stop.
func (s *Server) emergencyStopHandler(c *echo.Context) error {
	var req pauseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	snap, err := s.control.EmergencyStop(c.Request().Context(), req.Reason)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

// setConcurrencyHandler handles PUT /api/v1/control/concurrency.
func (s *Server) setConcurrencyHandler(c *echo.Context) error {
	var req concurrencyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	snap, err := s.control.SetMaxConcurrent(c.Request().Context(), req.MaxConcurrentDispatches)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snap)
}
