// Package config loads and validates warden configuration: a single
// warden.yaml (env-expanded, defaults-merged) plus registries for MCP
// servers, tool adapters, gates, and project settings.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// WardenYAMLConfig is the complete warden.yaml file structure.
type WardenYAMLConfig struct {
	MCPServers   []MCPServerConfig            `yaml:"mcp_servers"`
	ToolAdapters map[string]ToolAdapterConfig `yaml:"tool_adapters"`
	Gates        map[string]GateConfig        `yaml:"gates"`
	Projects     map[string]ProjectSettings   `yaml:"projects"`
	Runner       *RunnerConfig                `yaml:"runner"`
	Supervisor   *SupervisorConfig            `yaml:"supervisor"`
	MCPHealth    *MCPHealthConfig             `yaml:"mcp_health"`
}

// Config is the validated, ready-to-use configuration.
type Config struct {
	MCPServerRegistry *MCPServerRegistry
	AdapterRegistry   *AdapterRegistry
	Gates             map[string]GateConfig
	Projects          map[string]ProjectSettings
	Runner            RunnerConfig
	Supervisor        SupervisorConfig
	MCPHealth         MCPHealthConfig
}

// Project resolves project settings by ID; unknown or empty IDs get the
// zero value (no overrides).
func (c *Config) Project(projectID string) ProjectSettings {
	if projectID == "" {
		return ProjectSettings{}
	}
	return c.Projects[projectID]
}

// Initialize loads, validates, and returns ready-to-use configuration.
// configDir must contain warden.yaml.
func Initialize(configDir string) (*Config, error) {
	path := filepath.Join(configDir, "warden.yaml")

	raw, err := load(path)
	if err != nil {
		return nil, err
	}

	cfg, err := build(raw)
	if err != nil {
		return nil, err
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded",
		"path", path,
		"mcp_servers", len(raw.MCPServers),
		"tool_adapters", len(raw.ToolAdapters),
		"gates", len(raw.Gates))
	return cfg, nil
}

// load reads and parses the YAML file with env expansion.
func load(path string) (*WardenYAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	data = ExpandEnv(data)

	var raw WardenYAMLConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}
	return &raw, nil
}

// build merges defaults and constructs registries.
func build(raw *WardenYAMLConfig) (*Config, error) {
	runner := defaultRunnerConfig()
	if raw.Runner != nil {
		if err := mergo.Merge(&runner, *raw.Runner, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge runner config: %w", err)
		}
	}

	supervisor := defaultSupervisorConfig()
	if raw.Supervisor != nil {
		if err := mergo.Merge(&supervisor, *raw.Supervisor, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge supervisor config: %w", err)
		}
	}

	mcpHealth := defaultMCPHealthConfig()
	if raw.MCPHealth != nil {
		if err := mergo.Merge(&mcpHealth, *raw.MCPHealth, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge mcp_health config: %w", err)
		}
	}

	gates := raw.Gates
	if gates == nil {
		gates = map[string]GateConfig{}
	}
	projects := raw.Projects
	if projects == nil {
		projects = map[string]ProjectSettings{}
	}

	return &Config{
		MCPServerRegistry: NewMCPServerRegistry(raw.MCPServers),
		AdapterRegistry:   NewAdapterRegistry(raw.ToolAdapters),
		Gates:             gates,
		Projects:          projects,
		Runner:            runner,
		Supervisor:        supervisor,
		MCPHealth:         mcpHealth,
	}, nil
}
