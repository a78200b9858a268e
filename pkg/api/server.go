// Package api exposes the webhook ingress endpoint and the operator
// surface over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/hooklinehq/hookline/pkg/control"
	"github.com/hooklinehq/hookline/pkg/crashguard"
	"github.com/hooklinehq/hookline/pkg/database"
	"github.com/hooklinehq/hookline/pkg/dispatch"
	"github.com/hooklinehq/hookline/pkg/ingress"
	"github.com/hooklinehq/hookline/pkg/routine"
	"github.com/hooklinehq/hookline/pkg/services"
	"github.com/hooklinehq/hookline/pkg/sessionqueue"
)

// Server is the HTTP server for ingress and admin.
type Server struct {
	echo *echo.Echo
	http *http.Server

	db        *database.Client
	ingress   *ingress.Router
	control   *control.Service
	routines  *routine.Service
	instances *services.PluginInstanceService
	workItems *services.WorkItemService
	ledger    *dispatch.Ledger
	queue     *sessionqueue.Manager
	pool      *dispatch.Pool
	guard     *crashguard.Guard
}

// NewServer wires the HTTP surface. pool and guard may be nil in tests.
func NewServer(db *database.Client, ingressRouter *ingress.Router, ctrl *control.Service,
	routines *routine.Service, instances *services.PluginInstanceService,
	workItems *services.WorkItemService, ledger *dispatch.Ledger,
	queue *sessionqueue.Manager, pool *dispatch.Pool, guard *crashguard.Guard) *Server {

	s := &Server{
		db:        db,
		ingress:   ingressRouter,
		control:   ctrl,
		routines:  routines,
		instances: instances,
		workItems: workItems,
		ledger:    ledger,
		queue:     queue,
		pool:      pool,
		guard:     guard,
	}
	s.echo = s.buildEcho()
	return s
}

func (s *Server) buildEcho() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.POST("/hooks/:pluginType/:pluginInstanceID", s.webhookHandler)

	v1 := e.Group("/api/v1")

	v1.GET("/system/health", s.systemHealthHandler)

	v1.GET("/control", s.getControlHandler)
	v1.POST("/control/pause", s.pauseHandler)
	v1.POST("/control/resume", s.resumeHandler)
	v1.POST("/control/emergency-stop", s.emergencyStopHandler)
	v1.PUT("/control/concurrency", s.setConcurrencyHandler)

	v1.POST("/routines", s.createRoutineHandler)
	v1.GET("/routines", s.listRoutinesHandler)
	v1.GET("/routines/:id", s.getRoutineHandler)
	v1.PUT("/routines/:id/enabled", s.setRoutineEnabledHandler)
	v1.GET("/routines/:id/runs", s.listRoutineRunsHandler)

	v1.POST("/plugin-instances", s.createInstanceHandler)
	v1.GET("/plugin-instances", s.listInstancesHandler)
	v1.GET("/plugin-instances/:id", s.getInstanceHandler)
	v1.PUT("/plugin-instances/:id/enabled", s.setInstanceEnabledHandler)

	v1.GET("/work-items", s.listWorkItemsHandler)
	v1.GET("/work-items/:id", s.getWorkItemHandler)
	v1.GET("/work-items/:id/events", s.listWorkItemEventsHandler)

	v1.GET("/dispatches", s.listDispatchesHandler)
	v1.GET("/dispatches/:id", s.getDispatchHandler)
	v1.POST("/dispatches/:id/cancel", s.cancelDispatchHandler)
	v1.POST("/dispatches/:id/pause", s.pauseDispatchHandler)
	v1.POST("/dispatches/:id/resume", s.resumeDispatchHandler)

	v1.GET("/lanes/:queueKey", s.getLaneHandler)
	v1.PUT("/lanes/:queueKey/mode", s.setLaneModeHandler)
	v1.PUT("/lanes/:queueKey/paused", s.setLanePausedHandler)

	return e
}

// Echo exposes the router for handler-level tests.
func (s *Server) Echo() *echo.Echo { return s.echo }

// Start serves until Shutdown. Blocks.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
