package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"
)

// HealthStatus reports store reachability and latency.
type HealthStatus struct {
	Reachable bool          `json:"reachable"`
	Latency   time.Duration `json:"latency"`
	Error     string        `json:"error,omitempty"`
}

// Health pings the store and measures round-trip latency.
func Health(ctx context.Context, db *stdsql.DB) (HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return HealthStatus{
			Reachable: false,
			Latency:   time.Since(start),
			Error:     err.Error(),
		}, fmt.Errorf("database ping failed: %w", err)
	}
	return HealthStatus{
		Reachable: true,
		Latency:   time.Since(start),
	}, nil
}
