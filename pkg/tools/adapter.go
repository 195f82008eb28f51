package tools

import (
	"context"

	"github.com/codeready-toolchain/warden/pkg/config"
)

// Adapter is the uniform contract every external tool implements.
// allowMock is only honored when the process-wide gate mode is also
// enabled; the Runtime enforces that pairing.
type Adapter interface {
	Name() string
	HealthCheck(ctx context.Context) HealthReport
	Run(ctx context.Context, req Request, allowMock bool) (*Result, error)
	Supports() config.ToolCapabilities
}
