package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hooklinehq/hookline/pkg/services"
)

type createInstanceRequest struct {
	Type   string                 `json:"type"`
	Name   string                 `json:"name"`
	Config map[string]interface{} `json:"config"`
}

// createInstanceHandler handles POST /api/v1/plugin-instances.
func (s *Server) createInstanceHandler(c *echo.Context) error {
	var req createInstanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	inst, err := s.instances.Create(c.Request().Context(), services.CreateInstanceInput{
		Type:   req.Type,
		Name:   req.Name,
		Config: req.Config,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, inst)
}

// listInstancesHandler handles GET /api/v1/plugin-instances.
func (s *Server) listInstancesHandler(c *echo.Context) error {
	rows, err := s.instances.List(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// getInstanceHandler handles GET /api/v1/plugin-instances/:id.
func (s *Server) getInstanceHandler(c *echo.Context) error {
	inst, err := s.instances.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, inst)
}

// setInstanceEnabledHandler handles PUT /api/v1/plugin-instances/:id/enabled.
// Re-enabling also resets the crash guard's failure window for the plugin:
// the operator is asserting the defect was addressed.
func (s *Server) setInstanceEnabledHandler(c *echo.Context) error {
	var req enabledRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	id := c.Param("id")
	if err := s.instances.SetEnabled(c.Request().Context(), id, req.Enabled); err != nil {
		return mapServiceError(err)
	}
	if req.Enabled && s.guard != nil {
		s.guard.Reenable(id)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"enabled": req.Enabled})
}
