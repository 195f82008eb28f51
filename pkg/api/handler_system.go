package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/warden/pkg/database"
	"github.com/codeready-toolchain/warden/pkg/decision"
)

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{"status": "healthy"}
	status := http.StatusOK

	dbHealth, err := database.Health(ctx, s.db)
	body["database"] = dbHealth
	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if s.mcp != nil {
		body["mcp"] = s.mcp.Statuses()
		if status == http.StatusOK && !s.mcp.IsHealthy() {
			body["status"] = "degraded"
		}
	}
	if s.pool != nil {
		body["runner_pool"] = gin.H{"active_tasks": len(s.pool.ActiveTasks())}
	}
	if s.warnings != nil {
		body["active_warnings"] = s.warnings.Count()
	}

	c.JSON(status, body)
}

// backlogHandler handles GET /api/v1/queue/backlog.
func (s *Server) backlogHandler(c *gin.Context) {
	metrics, err := s.inbox.Backlog(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// verifyDecisionHandler handles GET /api/v1/decisions/:id/verify. It
// recomputes the record hash and reports whether the sealed decision is
// intact.
func (s *Server) verifyDecisionHandler(c *gin.Context) {
	ctx := c.Request.Context()
	decisionID := c.Param("id")

	rec, err := s.recorder.Get(ctx, decisionID)
	if err != nil {
		if errors.Is(err, decision.ErrDecisionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "decision not found"})
			return
		}
		mapServiceError(c, err)
		return
	}

	if err := s.recorder.VerifyIntegrity(ctx, decisionID); err != nil {
		if errors.Is(err, decision.ErrTampered) {
			c.JSON(http.StatusConflict, gin.H{
				"decision_id": decisionID,
				"verified":    false,
				"error":       "record hash mismatch",
			})
			return
		}
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"decision_id":   decisionID,
		"verified":      true,
		"decision_type": rec.DecisionType,
		"final_verdict": rec.FinalVerdict,
		"status":        rec.Status,
	})
}
