package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/hooklinehq/hookline/pkg/routine"
)

type createRoutineRequest struct {
	AgentID                string                 `json:"agent_id"`
	Name                   string                 `json:"name"`
	TriggerKind            string                 `json:"trigger_kind"`
	CronExpr               string                 `json:"cron_expr"`
	Timezone               string                 `json:"timezone"`
	RuleJSON               string                 `json:"rule_json"`
	ConditionProbe         string                 `json:"condition_probe"`
	ConditionConfig        map[string]interface{} `json:"condition_config"`
	TargetPluginInstanceID string                 `json:"target_plugin_instance_id"`
	TargetSessionKey       string                 `json:"target_session_key"`
	ActionPrompt           string                 `json:"action_prompt"`
	MinIntervalMs          int64                  `json:"min_interval_ms"`
	RunAt                  *time.Time             `json:"run_at"`
}

type enabledRequest struct {
	Enabled bool `json:"enabled"`
}

// createRoutineHandler handles POST /api/v1/routines.
func (s *Server) createRoutineHandler(c *echo.Context) error {
	var req createRoutineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	input := routine.CreateInput{
		AgentID:                req.AgentID,
		Name:                   req.Name,
		TriggerKind:            req.TriggerKind,
		CronExpr:               req.CronExpr,
		Timezone:               req.Timezone,
		RuleJSON:               req.RuleJSON,
		ConditionProbe:         req.ConditionProbe,
		ConditionConfig:        req.ConditionConfig,
		TargetPluginInstanceID: req.TargetPluginInstanceID,
		TargetSessionKey:       req.TargetSessionKey,
		ActionPrompt:           req.ActionPrompt,
		MinInterval:            time.Duration(req.MinIntervalMs) * time.Millisecond,
	}
	if req.RunAt != nil {
		input.RunAt = *req.RunAt
	}

	row, err := s.routines.Create(c.Request().Context(), input)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, row)
}

// listRoutinesHandler handles GET /api/v1/routines.
func (s *Server) listRoutinesHandler(c *echo.Context) error {
	rows, err := s.routines.List(c.Request().Context(), c.QueryParam("agent_id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// getRoutineHandler handles GET /api/v1/routines/:id.
func (s *Server) getRoutineHandler(c *echo.Context) error {
	row, err := s.routines.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// setRoutineEnabledHandler handles PUT /api/v1/routines/:id/enabled.
func (s *Server) setRoutineEnabledHandler(c *echo.Context) error {
	var req enabledRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := s.routines.SetEnabled(c.Request().Context(), c.Param("id"), req.Enabled); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"enabled": req.Enabled})
}

// listRoutineRunsHandler handles GET /api/v1/routines/:id/runs.
func (s *Server) listRoutineRunsHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}
	rows, err := s.routines.Runs(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
