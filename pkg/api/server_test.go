package api

import (
	"bytes"
	"context"
	stdsql "database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/inboxevent"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/pkg/bus"
	"github.com/codeready-toolchain/warden/pkg/decision"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/services"
	"github.com/codeready-toolchain/warden/pkg/supervisor"
	testdb "github.com/codeready-toolchain/warden/test/database"
)

type apiFixture struct {
	client   *ent.Client
	tasks    *services.TaskService
	recorder *decision.Recorder
	router   *gin.Engine
	canceled []string
}

func (f *apiFixture) CancelTask(taskID string) { f.canceled = append(f.canceled, taskID) }
func (f *apiFixture) ActiveTasks() []string { return nil }

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	tasks := services.NewTaskService(client, bus.New())
	recorder := decision.NewRecorder(client)

	db, err := stdsql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &apiFixture{client: client, tasks: tasks, recorder: recorder}
	srv := NewServer(
		tasks,
		services.NewAuditService(client),
		services.NewSystemWarningsService(),
		supervisor.NewInbox(client),
		recorder,
		db,
		nil,
		f,
		prometheus.NewRegistry(),
	)
	f.router = srv.Router()
	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndGetTask(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/tasks", CreateTaskRequest{
		TaskID: "t-1", Title: "ship it", RunMode: "autonomous",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/v1/tasks/t-1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ship it", got["title"])
	assert.Equal(t, "created", got["status"])

	t.Run("missing title rejected", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks", map[string]any{"task_id": "t-2"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks", CreateTaskRequest{TaskID: "t-1", Title: "again"}, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown task 404", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/nope", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestApproveTask(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	_, err := f.tasks.CreateTask(ctx, services.CreateTaskRequest{TaskID: "t-appr", Title: "needs approval"})
	require.NoError(t, err)
	for _, st := range []task.Status{task.StatusIntentProcessing, task.StatusPlanning, task.StatusAwaitingApproval} {
		_, err = f.tasks.Transition(ctx, "t-appr", st, nil)
		require.NoError(t, err)
	}
	_, err = f.tasks.UpdateMetadata(ctx, "t-appr", func(m *models.Metadata) error {
		m.SetPauseState(models.PauseState{Checkpoint: "open_plan"})
		return nil
	})
	require.NoError(t, err)

	t.Run("disabled without configured token", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/t-appr/approve", nil, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Setenv(AdminTokenVar, "s3cret")

	t.Run("wrong token unauthorized", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/t-appr/approve", nil, map[string]string{
			adminTokenHeader: "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	rec := f.do(t, http.MethodPost, "/api/v1/tasks/t-appr/approve", nil, map[string]string{
		adminTokenHeader:   "s3cret",
		"X-Forwarded-User": "alex",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	approved, err := f.tasks.GetTask(ctx, "t-appr")
	require.NoError(t, err)
	assert.Equal(t, task.StatusExecuting, approved.Status)
	ps, err := models.TaskMetadataFrom(approved.Metadata).PauseState()
	require.NoError(t, err)
	assert.Nil(t, ps, "pause state cleared on approval")

	t.Run("second approval conflicts", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/t-appr/approve", nil, map[string]string{
			adminTokenHeader: "s3cret",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCancelTask(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	_, err := f.tasks.CreateTask(ctx, services.CreateTaskRequest{TaskID: "t-cxl", Title: "stop me"})
	require.NoError(t, err)

	rec := f.do(t, http.MethodPost, "/api/v1/tasks/t-cxl/cancel", nil, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	reloaded, err := f.tasks.GetTask(ctx, "t-cxl")
	require.NoError(t, err)
	assert.True(t, models.TaskMetadataFrom(reloaded.Metadata).CancelRequested())
	assert.Equal(t, []string{"t-cxl"}, f.canceled, "running runner interrupted")

	t.Run("unknown task 404", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/nope/cancel", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTaskAuditEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	_, err := f.tasks.CreateTask(ctx, services.CreateTaskRequest{TaskID: "t-audit", Title: "audited"})
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/v1/tasks/t-audit/audit", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		TaskID  string           `json:"task_id"`
		Entries []map[string]any `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Entries)
	assert.Equal(t, "task.created", body.Entries[0]["event_type"])

	t.Run("bad limit rejected", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/t-audit/audit?limit=x", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown task 404", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/nope/audit", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestQueueBacklog(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	inbox := supervisor.NewInbox(f.client)
	for _, id := range []string{"e-1", "e-2"} {
		_, err := inbox.Insert(ctx, id, "t-1", models.EventTypeTaskCreated, inboxevent.SourceEventbus, nil)
		require.NoError(t, err)
	}

	rec := f.do(t, http.MethodGet, "/api/v1/queue/backlog", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var metrics supervisor.BacklogMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metrics))
	assert.Equal(t, 2, metrics.Pending)
}

func TestVerifyDecision(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	rec, err := f.recorder.RecordPolicy(ctx, "seed-1",
		map[string]any{"policy": "on_task_created"},
		map[string]any{"action": "ALLOW"})
	require.NoError(t, err)

	resp := f.do(t, http.MethodGet, "/api/v1/decisions/"+rec.ID+"/verify", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, true, body["verified"])

	t.Run("unknown decision 404", func(t *testing.T) {
		resp := f.do(t, http.MethodGet, "/api/v1/decisions/nope/verify", nil, nil)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
