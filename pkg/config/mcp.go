package config

import (
	"fmt"
	"sync"
)

// MCPServerConfig is one entry of the mcp_servers list in warden.yaml.
type MCPServerConfig struct {
	ID                 string            `yaml:"id"`
	Enabled            *bool             `yaml:"enabled,omitempty"` // default true
	Transport          TransportType     `yaml:"transport,omitempty"`
	Command            []string          `yaml:"command"`
	AllowTools         []string          `yaml:"allow_tools,omitempty"`
	DenySideEffectTags []string          `yaml:"deny_side_effect_tags,omitempty"`
	Env                map[string]string `yaml:"env,omitempty"`
	TimeoutMS          int               `yaml:"timeout_ms,omitempty"`
	PackageID          string            `yaml:"package_id,omitempty"`
}

// IsEnabled reports whether the server should be connected (default true).
func (c *MCPServerConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// ToolAllowed checks a tool name against the allow list (empty = all).
func (c *MCPServerConfig) ToolAllowed(name string) bool {
	if len(c.AllowTools) == 0 {
		return true
	}
	for _, t := range c.AllowTools {
		if t == name {
			return true
		}
	}
	return false
}

// applyDefaults fills zero values with the documented defaults.
func (c *MCPServerConfig) applyDefaults() {
	if c.Transport == "" {
		c.Transport = TransportStdio
	}
	if c.TimeoutMS == 0 {
		c.TimeoutMS = DefaultMCPTimeoutMS
	}
}

// MCPServerRegistry stores MCP server configurations with thread-safe access.
type MCPServerRegistry struct {
	servers map[string]*MCPServerConfig
	order   []string
	mu      sync.RWMutex
}

// NewMCPServerRegistry creates a registry from the config list, keeping
// declaration order.
func NewMCPServerRegistry(servers []MCPServerConfig) *MCPServerRegistry {
	r := &MCPServerRegistry{servers: make(map[string]*MCPServerConfig, len(servers))}
	for i := range servers {
		s := servers[i]
		s.applyDefaults()
		r.servers[s.ID] = &s
		r.order = append(r.order, s.ID)
	}
	return r
}

// Get retrieves an MCP server configuration by ID.
func (r *MCPServerRegistry) Get(serverID string) (*MCPServerConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	server, exists := r.servers[serverID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrMCPServerNotFound, serverID)
	}
	return server, nil
}

// Has checks if an MCP server exists in the registry.
func (r *MCPServerRegistry) Has(serverID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.servers[serverID]
	return exists
}

// ServerIDs returns the IDs of all enabled servers in declaration order.
func (r *MCPServerRegistry) ServerIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.order))
	for _, id := range r.order {
		if s, ok := r.servers[id]; ok && s.IsEnabled() {
			ids = append(ids, id)
		}
	}
	return ids
}
