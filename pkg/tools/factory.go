package tools

import (
	"fmt"

	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/mcp"
)

// RegisterFromConfig instantiates and registers an adapter for every
// configured entry. mcpClient may be nil when no mcp-kind adapters are
// configured.
func (rt *Runtime) RegisterFromConfig(cfg *config.Config, mcpClient *mcp.Client) error {
	for _, name := range cfg.AdapterRegistry.Names() {
		ac, err := cfg.AdapterRegistry.Get(name)
		if err != nil {
			return err
		}
		switch ac.Kind {
		case config.AdapterKindCLI:
			rt.Register(NewCLIAdapter(name, ac))
		case config.AdapterKindHTTP:
			rt.Register(NewHTTPAdapter(name, ac))
		case config.AdapterKindGRPC:
			a, err := NewGRPCAdapter(name, ac)
			if err != nil {
				return err
			}
			rt.Register(a)
		case config.AdapterKindMCP:
			if mcpClient == nil {
				return fmt.Errorf("adapter %q needs an MCP client", name)
			}
			rt.Register(NewMCPAdapter(name, ac, mcpClient))
		default:
			return fmt.Errorf("%w: adapter %q kind %q", config.ErrInvalidValue, name, ac.Kind)
		}
	}
	return nil
}
