package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codeready-toolchain/warden/pkg/config"
)

// HTTPAdapter talks to a local OpenAI-style chat completion endpoint.
type HTTPAdapter struct {
	name   string
	cfg    *config.ToolAdapterConfig
	client *http.Client
}

// NewHTTPAdapter creates an HTTP adapter from its config.
func NewHTTPAdapter(name string, cfg *config.ToolAdapterConfig) *HTTPAdapter {
	return &HTTPAdapter{
		name: name,
		cfg:  cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout()) * time.Millisecond,
		},
	}
}

func (a *HTTPAdapter) Name() string { return a.name }

func (a *HTTPAdapter) Supports() config.ToolCapabilities { return a.cfg.Capabilities }

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type modelsResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// HealthCheck probes GET /models: 200 with the configured model listed
// is connected; an auth status is invalid_token; an unknown model is
// model_missing.
func (a *HTTPAdapter) HealthCheck(ctx context.Context) HealthReport {
	if a.cfg.Endpoint == "" {
		return HealthReport{Status: HealthNotConfigured, Details: "no endpoint configured", ErrorCategory: CategoryConfig}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.Endpoint+"/models", nil)
	if err != nil {
		return HealthReport{Status: HealthNotConfigured, Details: err.Error(), ErrorCategory: CategoryConfig}
	}
	a.applyAuth(req)

	resp, err := a.client.Do(req)
	if err != nil {
		return HealthReport{Status: HealthUnreachable, Details: err.Error(), ErrorCategory: CategoryNetwork}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return HealthReport{Status: HealthInvalidToken, Details: resp.Status, ErrorCategory: CategoryAuth}
	case resp.StatusCode != http.StatusOK:
		return HealthReport{Status: HealthUnreachable, Details: resp.Status, ErrorCategory: CategoryNetwork}
	}

	if a.cfg.Model != "" {
		var models modelsResponse
		if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
			return HealthReport{Status: HealthSchemaMismatch, Details: err.Error(), ErrorCategory: CategorySchema}
		}
		found := false
		for _, m := range models.Data {
			if m.ID == a.cfg.Model {
				found = true
				break
			}
		}
		if !found {
			return HealthReport{
				Status:        HealthModelMissing,
				Details:       fmt.Sprintf("model %q not served", a.cfg.Model),
				ErrorCategory: CategoryModel,
			}
		}
	}
	return HealthReport{Status: HealthConnected}
}

func (a *HTTPAdapter) applyAuth(req *http.Request) {
	if token, ok := a.cfg.Env["API_TOKEN"]; ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// Run posts a chat completion and returns the first choice's content.
func (a *HTTPAdapter) Run(ctx context.Context, req Request, allowMock bool) (*Result, error) {
	body, err := json.Marshal(chatRequest{
		Model:    a.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: req.Prompt}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.cfg.Endpoint+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	a.applyAuth(httpReq)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded || isTimeout(err) {
			if allowMock {
				return MockResult(a.name, a.cfg, req, "http timeout in gate mode"), nil
			}
			return &Result{
				Status:        StatusTimeout,
				OutputKind:    req.OutputKind,
				ErrorCategory: CategoryNetwork,
				ErrorMessage:  err.Error(),
			}, nil
		}
		return &Result{
			Status:        StatusFailed,
			OutputKind:    req.OutputKind,
			ErrorCategory: CategoryNetwork,
			ErrorMessage:  err.Error(),
		}, nil
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Result{
			Status: StatusFailed, OutputKind: req.OutputKind,
			ErrorCategory: CategoryNetwork, ErrorMessage: err.Error(),
		}, nil
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &Result{
			Status: StatusFailed, OutputKind: req.OutputKind,
			ErrorCategory: CategoryAuth, ErrorMessage: resp.Status,
		}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return &Result{
			Status: StatusFailed, OutputKind: req.OutputKind,
			ErrorCategory: CategoryRuntime,
			ErrorMessage:  fmt.Sprintf("%s: %s", resp.Status, truncate(string(data), 500)),
		}, nil
	}

	var chat chatResponse
	if err := json.Unmarshal(data, &chat); err != nil {
		return &Result{
			Status: StatusFailed, OutputKind: req.OutputKind,
			ErrorCategory: CategorySchema, ErrorMessage: err.Error(),
		}, nil
	}
	if chat.Error != nil {
		return &Result{
			Status: StatusFailed, OutputKind: req.OutputKind,
			ErrorCategory: CategoryModel, ErrorMessage: chat.Error.Message,
		}, nil
	}
	if len(chat.Choices) == 0 {
		return &Result{
			Status: StatusFailed, OutputKind: req.OutputKind,
			ErrorCategory: CategorySchema, ErrorMessage: "no choices in response",
		}, nil
	}

	content := chat.Choices[0].Message.Content
	res := &Result{
		Status:     StatusSuccess,
		OutputKind: req.OutputKind,
		Stdout:     content,
	}
	if req.OutputKind == OutputDiff {
		res.Diff = content
	}
	return res, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	if errors.As(err, &t) {
		return t.Timeout()
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
