package config

import "fmt"

// validate checks structural and cross-reference invariants before
// anything starts. All violations are collected into ValidationErrors so
// a broken config is reported in one pass.
func validate(raw *WardenYAMLConfig) error {
	var errs []error

	seen := make(map[string]bool, len(raw.MCPServers))
	for i := range raw.MCPServers {
		s := &raw.MCPServers[i]
		if s.ID == "" {
			errs = append(errs, &ValidationError{
				Component: "mcp_server", ID: fmt.Sprintf("#%d", i),
				Field: "id", Err: ErrMissingRequiredField,
			})
			continue
		}
		if seen[s.ID] {
			errs = append(errs, &ValidationError{
				Component: "mcp_server", ID: s.ID,
				Field: "id", Err: fmt.Errorf("%w: duplicate id", ErrInvalidValue),
			})
		}
		seen[s.ID] = true

		if len(s.Command) == 0 {
			errs = append(errs, &ValidationError{
				Component: "mcp_server", ID: s.ID,
				Field: "command", Err: ErrMissingRequiredField,
			})
		}
		if s.Transport != "" && !s.Transport.IsValid() {
			errs = append(errs, &ValidationError{
				Component: "mcp_server", ID: s.ID,
				Field: "transport", Err: fmt.Errorf("%w: %q", ErrInvalidValue, s.Transport),
			})
		}
		if s.TimeoutMS < 0 {
			errs = append(errs, &ValidationError{
				Component: "mcp_server", ID: s.ID,
				Field: "timeout_ms", Err: fmt.Errorf("%w: must be > 0", ErrInvalidValue),
			})
		}
	}

	for name, a := range raw.ToolAdapters {
		if !a.Kind.IsValid() {
			errs = append(errs, &ValidationError{
				Component: "tool_adapter", ID: name,
				Field: "kind", Err: fmt.Errorf("%w: %q", ErrInvalidValue, a.Kind),
			})
		}
		if !a.ExecutionMode.IsValid() {
			errs = append(errs, &ValidationError{
				Component: "tool_adapter", ID: name,
				Field: "execution_mode", Err: fmt.Errorf("%w: %q", ErrInvalidValue, a.ExecutionMode),
			})
		}
		if a.Capabilities.DiffQuality != "" && !a.Capabilities.DiffQuality.IsValid() {
			errs = append(errs, &ValidationError{
				Component: "tool_adapter", ID: name,
				Field: "capabilities.diff_quality", Err: fmt.Errorf("%w: %q", ErrInvalidValue, a.Capabilities.DiffQuality),
			})
		}
		switch a.Kind {
		case AdapterKindCLI:
			if len(a.Command) == 0 {
				errs = append(errs, &ValidationError{
					Component: "tool_adapter", ID: name,
					Field: "command", Err: ErrMissingRequiredField,
				})
			}
		case AdapterKindHTTP, AdapterKindGRPC:
			if a.Endpoint == "" {
				errs = append(errs, &ValidationError{
					Component: "tool_adapter", ID: name,
					Field: "endpoint", Err: ErrMissingRequiredField,
				})
			}
		case AdapterKindMCP:
			if a.MCPServer == "" || a.MCPTool == "" {
				errs = append(errs, &ValidationError{
					Component: "tool_adapter", ID: name,
					Field: "mcp_server/mcp_tool", Err: ErrMissingRequiredField,
				})
			}
			if a.MCPServer != "" && !seen[a.MCPServer] {
				errs = append(errs, &ValidationError{
					Component: "tool_adapter", ID: name,
					Field: "mcp_server", Err: fmt.Errorf("%w: unknown server %q", ErrInvalidValue, a.MCPServer),
				})
			}
		}
	}

	for name, g := range raw.Gates {
		if len(g.Command) == 0 {
			errs = append(errs, &ValidationError{
				Component: "gate", ID: name,
				Field: "command", Err: ErrMissingRequiredField,
			})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	err := ErrValidationFailed
	for _, e := range errs {
		err = fmt.Errorf("%w\n  %v", err, e)
	}
	return err
}
