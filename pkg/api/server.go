// Package api is the operator-facing HTTP surface: task submission,
// approval and cancel controls, audit and decision inspection, queue
// backlog, and Prometheus metrics.
package api

import (
	stdsql "database/sql"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codeready-toolchain/warden/pkg/decision"
	"github.com/codeready-toolchain/warden/pkg/mcp"
	"github.com/codeready-toolchain/warden/pkg/services"
	"github.com/codeready-toolchain/warden/pkg/supervisor"
)

// RunnerPool is the slice of the runner pool the API needs: interrupt
// a running task and report what is in flight. Nil when no pool is
// attached (tests).
type RunnerPool interface {
	CancelTask(taskID string)
	ActiveTasks() []string
}

// Server holds the service handles the HTTP handlers dispatch to.
type Server struct {
	tasks    *services.TaskService
	audit    *services.AuditService
	warnings *services.SystemWarningsService
	inbox    *supervisor.Inbox
	recorder *decision.Recorder
	db       *stdsql.DB
	mcp      *mcp.HealthMonitor
	pool     RunnerPool
	gatherer prometheus.Gatherer
}

// NewServer creates the API server. mcpMonitor, pool, and gatherer may
// be nil; the matching surfaces degrade gracefully.
func NewServer(
	tasks *services.TaskService,
	audit *services.AuditService,
	warnings *services.SystemWarningsService,
	inbox *supervisor.Inbox,
	recorder *decision.Recorder,
	db *stdsql.DB,
	mcpMonitor *mcp.HealthMonitor,
	pool RunnerPool,
	gatherer prometheus.Gatherer,
) *Server {
	return &Server{
		tasks:    tasks,
		audit:    audit,
		warnings: warnings,
		inbox:    inbox,
		recorder: recorder,
		db:       db,
		mcp:      mcpMonitor,
		pool:     pool,
		gatherer: gatherer,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.healthHandler)
	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/api/v1")
	{
		v1.GET("/queue/backlog", s.backlogHandler)
		v1.POST("/tasks", s.createTaskHandler)
		v1.GET("/tasks/:id", s.getTaskHandler)
		v1.POST("/tasks/:id/approve", s.approveTaskHandler)
		v1.POST("/tasks/:id/cancel", s.cancelTaskHandler)
		v1.GET("/tasks/:id/audit", s.taskAuditHandler)
		v1.GET("/decisions/:id/verify", s.verifyDecisionHandler)
	}
	return r
}
