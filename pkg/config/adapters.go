package config

import (
	"fmt"
	"sync"
)

// ToolCapabilities is the declared capability set of a tool adapter,
// consumed by the route planner.
type ToolCapabilities struct {
	Chat                bool        `yaml:"chat" json:"chat"`
	JSONMode            bool        `yaml:"json_mode" json:"json_mode"`
	FunctionCall        bool        `yaml:"function_call" json:"function_call"`
	Stream              bool        `yaml:"stream" json:"stream"`
	LongContext         bool        `yaml:"long_context" json:"long_context"`
	DiffQuality         DiffQuality `yaml:"diff_quality" json:"diff_quality"`
	SupportsDiff        bool        `yaml:"supports_diff" json:"supports_diff"`
	SupportsPatch       bool        `yaml:"supports_patch" json:"supports_patch"`
	SupportsHealthCheck bool        `yaml:"supports_health_check" json:"supports_health_check"`
}

// ToolAdapterConfig declares one external tool/model adapter.
type ToolAdapterConfig struct {
	Kind          AdapterKind       `yaml:"kind"`
	ExecutionMode ExecutionMode     `yaml:"execution_mode"`
	Capabilities  ToolCapabilities  `yaml:"capabilities"`
	Model         string            `yaml:"model,omitempty"`
	Endpoint      string            `yaml:"endpoint,omitempty"` // http/grpc adapters
	Command       []string          `yaml:"command,omitempty"`  // cli adapters
	MCPServer     string            `yaml:"mcp_server,omitempty"`
	MCPTool       string            `yaml:"mcp_tool,omitempty"`
	Env           map[string]string `yaml:"env,omitempty"`
	TimeoutMS     int               `yaml:"timeout_ms,omitempty"`
	AllowedPaths  []string          `yaml:"allowed_paths,omitempty"` // diff path allow-list prefixes
}

// Timeout returns the adapter timeout in ms, defaulted.
func (c *ToolAdapterConfig) Timeout() int {
	if c.TimeoutMS <= 0 {
		return DefaultAdapterTimeoutMS
	}
	return c.TimeoutMS
}

// AdapterRegistry stores tool adapter configurations with thread-safe access.
type AdapterRegistry struct {
	adapters map[string]*ToolAdapterConfig
	mu       sync.RWMutex
}

// NewAdapterRegistry creates a registry from the config map.
func NewAdapterRegistry(adapters map[string]ToolAdapterConfig) *AdapterRegistry {
	r := &AdapterRegistry{adapters: make(map[string]*ToolAdapterConfig, len(adapters))}
	for name := range adapters {
		a := adapters[name]
		r.adapters[name] = &a
	}
	return r
}

// Get retrieves an adapter configuration by name.
func (r *AdapterRegistry) Get(name string) (*ToolAdapterConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, exists := r.adapters[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAdapterNotFound, name)
	}
	return a, nil
}

// Names returns all registered adapter names.
func (r *AdapterRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	return names
}
