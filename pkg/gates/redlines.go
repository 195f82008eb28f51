// Package gates enforces governance: redline validators for
// declarative specs, the pause gate, and the DONE gate runner.
package gates

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// executableFields are keys a role spec may never carry. A role is an
// organisational description, not something that runs.
var executableFields = []string{"command", "exec", "script", "run", "shell", "args", "entrypoint"}

// roleBindingFields are keys a command spec may never carry: commands
// declare behavior, role binding happens elsewhere.
var roleBindingFields = []string{"role", "role_id", "roles"}

// RedlineValidator checks role, command, and rule specs against their
// schemas and semantic red lines before registration.
type RedlineValidator struct {
	role    *jsonschema.Schema
	command *jsonschema.Schema
	rule    *jsonschema.Schema
}

// NewRedlineValidator compiles the embedded schemas. Compilation
// failure is a programming error surfaced at startup.
func NewRedlineValidator() (*RedlineValidator, error) {
	compiler := jsonschema.NewCompiler()
	for _, name := range []string{"role", "command", "rule"} {
		data, err := schemaFS.ReadFile("schemas/" + name + ".schema.json")
		if err != nil {
			return nil, fmt.Errorf("read %s schema: %w", name, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse %s schema: %w", name, err)
		}
		if err := compiler.AddResource(name+".schema.json", doc); err != nil {
			return nil, fmt.Errorf("add %s schema: %w", name, err)
		}
	}

	v := &RedlineValidator{}
	var err error
	if v.role, err = compiler.Compile("role.schema.json"); err != nil {
		return nil, fmt.Errorf("compile role schema: %w", err)
	}
	if v.command, err = compiler.Compile("command.schema.json"); err != nil {
		return nil, fmt.Errorf("compile command schema: %w", err)
	}
	if v.rule, err = compiler.Compile("rule.schema.json"); err != nil {
		return nil, fmt.Errorf("compile rule schema: %w", err)
	}
	return v, nil
}

func specID(spec map[string]any) string {
	if id, ok := spec["id"].(string); ok {
		return id
	}
	return "<unknown>"
}

func structural(kind string, schema *jsonschema.Schema, spec map[string]any) error {
	if err := schema.Validate(normalize(spec)); err != nil {
		return &RedlineViolation{SpecKind: kind, SpecID: specID(spec), Reason: err.Error()}
	}
	return nil
}

// normalize converts a spec to the plain-JSON value shapes the schema
// validator expects (e.g. []string to []any).
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return v
	}
}

// ValidateRole enforces the role red lines: schema shape, no executable
// fields, exactly one category.
func (v *RedlineValidator) ValidateRole(spec map[string]any) error {
	if err := structural("role", v.role, spec); err != nil {
		return err
	}
	for _, field := range executableFields {
		if _, present := spec[field]; present {
			return &RedlineViolation{
				SpecKind: "role", SpecID: specID(spec),
				Reason: fmt.Sprintf("executable field %q is not allowed in a role", field),
			}
		}
	}
	if _, present := spec["categories"]; present {
		return &RedlineViolation{
			SpecKind: "role", SpecID: specID(spec),
			Reason: "a role declares exactly one category",
		}
	}
	return nil
}

// ValidateCommand enforces the command red lines: schema shape
// (side_effects and risk declared), no role binding.
func (v *RedlineValidator) ValidateCommand(spec map[string]any) error {
	if err := structural("command", v.command, spec); err != nil {
		return err
	}
	for _, field := range roleBindingFields {
		if _, present := spec[field]; present {
			return &RedlineViolation{
				SpecKind: "command", SpecID: specID(spec),
				Reason: fmt.Sprintf("a command must not bind a role (found %q)", field),
			}
		}
	}
	return nil
}

// ValidateRule enforces the rule red lines: structured when/then,
// explicit scope, evidence required.
func (v *RedlineValidator) ValidateRule(spec map[string]any) error {
	if err := structural("rule", v.rule, spec); err != nil {
		return err
	}
	if required, ok := spec["evidence_required"].(bool); !ok || !required {
		return &RedlineViolation{
			SpecKind: "rule", SpecID: specID(spec),
			Reason: "rules must require evidence",
		}
	}
	return nil
}
