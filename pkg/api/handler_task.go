package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/services"
)

// CreateTaskRequest is the HTTP request body for POST /api/v1/tasks.
type CreateTaskRequest struct {
	TaskID    string         `json:"task_id"`
	Title     string         `json:"title" binding:"required"`
	RunMode   string         `json:"run_mode"`
	Gates     []string       `json:"gates"`
	ProjectID string         `json:"project_id"`
	NLRequest string         `json:"nl_request"`
	Metadata  map[string]any `json:"metadata"`
}

// createTaskHandler handles POST /api/v1/tasks.
func (s *Server) createTaskHandler(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.tasks.CreateTask(c.Request.Context(), services.CreateTaskRequest{
		TaskID:    req.TaskID,
		Title:     req.Title,
		RunMode:   models.RunMode(req.RunMode),
		Gates:     req.Gates,
		ProjectID: req.ProjectID,
		NLRequest: req.NLRequest,
		Metadata:  req.Metadata,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *gin.Context) {
	t, err := s.tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// approveTaskHandler handles POST /api/v1/tasks/:id/approve. Admin
// token gated; resumes a task paused at the open_plan checkpoint.
func (s *Server) approveTaskHandler(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	ctx := c.Request.Context()
	taskID := c.Param("id")

	t, err := s.tasks.GetTask(ctx, taskID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if t.Status != task.StatusAwaitingApproval {
		c.JSON(http.StatusConflict, gin.H{"error": "task is not awaiting approval"})
		return
	}

	if _, err := s.tasks.UpdateMetadata(ctx, taskID, func(m *models.Metadata) error {
		m.Delete(models.MetaKeyPauseState)
		m.Delete(models.MetaKeyPauseReason)
		return nil
	}); err != nil {
		mapServiceError(c, err)
		return
	}

	author := extractAuthor(c)
	approved, err := s.tasks.Transition(ctx, taskID, task.StatusExecuting, map[string]any{
		"approved_by": author,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if err := s.audit.Info(ctx, taskID, "task.approved", map[string]any{
		"approved_by": author,
	}); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, approved)
}

// cancelTaskHandler handles POST /api/v1/tasks/:id/cancel. Sets the
// cooperative cancel signal; the runner terminates the task at its next
// iteration boundary.
func (s *Server) cancelTaskHandler(c *gin.Context) {
	taskID := c.Param("id")
	if err := s.tasks.RequestCancel(c.Request.Context(), taskID); err != nil {
		mapServiceError(c, err)
		return
	}
	if s.pool != nil {
		s.pool.CancelTask(taskID)
	}
	c.JSON(http.StatusAccepted, gin.H{"task_id": taskID, "cancel_requested": true})
}

// taskAuditHandler handles GET /api/v1/tasks/:id/audit.
func (s *Server) taskAuditHandler(c *gin.Context) {
	taskID := c.Param("id")

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	// 404 for unknown tasks rather than an empty trail.
	if _, err := s.tasks.GetTask(c.Request.Context(), taskID); err != nil {
		mapServiceError(c, err)
		return
	}
	entries, err := s.audit.ListForTask(c.Request.Context(), taskID, limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "entries": entries})
}
