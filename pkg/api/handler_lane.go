package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hooklinehq/hookline/pkg/sessionqueue"
)

type laneModeRequest struct {
	Mode string `json:"mode"`
}

type lanePausedRequest struct {
	Paused bool `json:"paused"`
}

// getLaneHandler handles GET /api/v1/lanes/:queueKey.
func (s *Server) getLaneHandler(c *echo.Context) error {
	lane, err := s.queue.Lane(c.Request().Context(), c.Param("queueKey"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, lane)
}

// setLaneModeHandler handles PUT /api/v1/lanes/:queueKey/mode.
func (s *Server) setLaneModeHandler(c *echo.Context) error {
	var req laneModeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	err := s.queue.SetMode(c.Request().Context(), c.Param("queueKey"), sessionqueue.Mode(req.Mode))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"mode": req.Mode})
}

// setLanePausedHandler handles PUT /api/v1/lanes/:queueKey/paused.
func (s *Server) setLanePausedHandler(c *echo.Context) error {
	var req lanePausedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	err := s.queue.SetPaused(c.Request().Context(), c.Param("queueKey"), req.Paused)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"paused": req.Paused})
}
