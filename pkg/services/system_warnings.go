package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// WarningCategory classifies a system warning.
type WarningCategory string

// Warning categories.
const (
	WarningCategoryMCP       WarningCategory = "mcp"
	WarningCategoryAdapter   WarningCategory = "adapter"
	WarningCategoryRunner    WarningCategory = "runner"
	WarningCategoryRetention WarningCategory = "retention"
)

// SystemWarning is an operator-visible condition surfaced on the ops
// API. Warnings are in-memory only and reset on restart.
type SystemWarning struct {
	ID        string          `json:"warning_id"`
	Category  WarningCategory `json:"category"`
	Message   string          `json:"message"`
	Details   string          `json:"details,omitempty"`
	SourceID  string          `json:"source_id,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// SystemWarningsService collects system warnings for the ops surface.
// A new warning with the same category and source replaces the old one,
// so a flapping MCP server contributes one warning, not hundreds.
type SystemWarningsService struct {
	mu       sync.RWMutex
	warnings []SystemWarning
}

// NewSystemWarningsService creates a new SystemWarningsService.
func NewSystemWarningsService() *SystemWarningsService {
	return &SystemWarningsService{}
}

// Add records a warning, replacing any previous one from the same
// category and source.
func (s *SystemWarningsService) Add(category WarningCategory, message, details, sourceID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	warning := SystemWarning{
		ID:        uuid.New().String(),
		Category:  category,
		Message:   message,
		Details:   details,
		SourceID:  sourceID,
		Timestamp: time.Now(),
	}

	if sourceID != "" {
		for i, w := range s.warnings {
			if w.Category == category && w.SourceID == sourceID {
				s.warnings[i] = warning
				return warning.ID
			}
		}
	}
	s.warnings = append(s.warnings, warning)
	return warning.ID
}

// Resolve removes all warnings for a category and source, typically on
// recovery.
func (s *SystemWarningsService) Resolve(category WarningCategory, sourceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.warnings[:0]
	for _, w := range s.warnings {
		if w.Category == category && w.SourceID == sourceID {
			continue
		}
		kept = append(kept, w)
	}
	s.warnings = kept
}

// List returns a copy of the current warnings.
func (s *SystemWarningsService) List() []SystemWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]SystemWarning, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// Count returns the number of active warnings.
func (s *SystemWarningsService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.warnings)
}
