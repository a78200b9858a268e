package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/hooklinehq/hookline/pkg/services"
)

// listWorkItemsHandler handles GET /api/v1/work-items.
func (s *Server) listWorkItemsHandler(c *echo.Context) error {
	f := services.ListFilter{
		Status:     c.QueryParam("status"),
		SessionKey: c.QueryParam("session_key"),
	}
	if v := c.QueryParam("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}
	rows, err := s.workItems.List(c.Request().Context(), f)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// getWorkItemHandler handles GET /api/v1/work-items/:id.
func (s *Server) getWorkItemHandler(c *echo.Context) error {
	item, err := s.workItems.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// listWorkItemEventsHandler handles GET /api/v1/work-items/:id/events.
func (s *Server) listWorkItemEventsHandler(c *echo.Context) error {
	rows, err := s.workItems.Events(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
