package gates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRole() map[string]any {
	return map[string]any{
		"id":       "backend-engineer",
		"category": "engineering",
		"titles":   []string{"Backend Engineer", "Server Developer"},
	}
}

func validCommand() map[string]any {
	return map[string]any{
		"id":           "apply-migration",
		"side_effects": []string{"database_write"},
		"risk":         "medium",
	}
}

func validRule() map[string]any {
	return map[string]any{
		"id":                "no-prod-writes",
		"when":              map[string]any{"environment": "production"},
		"then":              map[string]any{"verdict": "BLOCK"},
		"scope":             "deployment",
		"evidence_required": true,
	}
}

func TestValidateRole(t *testing.T) {
	v, err := NewRedlineValidator()
	require.NoError(t, err)

	require.NoError(t, v.ValidateRole(validRole()))

	t.Run("executable field rejected", func(t *testing.T) {
		spec := validRole()
		spec["command"] = []string{"rm", "-rf"}
		err := v.ValidateRole(spec)
		var viol *RedlineViolation
		require.ErrorAs(t, err, &viol)
		assert.Equal(t, "role", viol.SpecKind)
		assert.Equal(t, "backend-engineer", viol.SpecID)
		assert.Contains(t, viol.Reason, "executable")
	})

	t.Run("multiple categories rejected", func(t *testing.T) {
		spec := validRole()
		spec["categories"] = []string{"engineering", "ops"}
		var viol *RedlineViolation
		require.ErrorAs(t, v.ValidateRole(spec), &viol)
	})

	t.Run("empty titles rejected", func(t *testing.T) {
		spec := validRole()
		spec["titles"] = []string{}
		var viol *RedlineViolation
		require.ErrorAs(t, v.ValidateRole(spec), &viol)
	})

	t.Run("missing category rejected", func(t *testing.T) {
		spec := validRole()
		delete(spec, "category")
		var viol *RedlineViolation
		require.ErrorAs(t, v.ValidateRole(spec), &viol)
	})
}

func TestValidateCommand(t *testing.T) {
	v, err := NewRedlineValidator()
	require.NoError(t, err)

	require.NoError(t, v.ValidateCommand(validCommand()))

	t.Run("missing side_effects rejected", func(t *testing.T) {
		spec := validCommand()
		delete(spec, "side_effects")
		var viol *RedlineViolation
		require.ErrorAs(t, v.ValidateCommand(spec), &viol)
	})

	t.Run("missing risk rejected", func(t *testing.T) {
		spec := validCommand()
		delete(spec, "risk")
		var viol *RedlineViolation
		require.ErrorAs(t, v.ValidateCommand(spec), &viol)
	})

	t.Run("invalid risk rejected", func(t *testing.T) {
		spec := validCommand()
		spec["risk"] = "extreme"
		var viol *RedlineViolation
		require.ErrorAs(t, v.ValidateCommand(spec), &viol)
	})

	t.Run("role binding rejected", func(t *testing.T) {
		spec := validCommand()
		spec["role"] = "backend-engineer"
		var viol *RedlineViolation
		require.ErrorAs(t, v.ValidateCommand(spec), &viol)
		assert.Contains(t, viol.Reason, "bind a role")
	})
}

func TestValidateRule(t *testing.T) {
	v, err := NewRedlineValidator()
	require.NoError(t, err)

	require.NoError(t, v.ValidateRule(validRule()))

	t.Run("unstructured when rejected", func(t *testing.T) {
		spec := validRule()
		spec["when"] = "always"
		var viol *RedlineViolation
		require.ErrorAs(t, v.ValidateRule(spec), &viol)
	})

	t.Run("missing scope rejected", func(t *testing.T) {
		spec := validRule()
		delete(spec, "scope")
		var viol *RedlineViolation
		require.ErrorAs(t, v.ValidateRule(spec), &viol)
	})

	t.Run("evidence not required rejected", func(t *testing.T) {
		spec := validRule()
		spec["evidence_required"] = false
		var viol *RedlineViolation
		require.ErrorAs(t, v.ValidateRule(spec), &viol)
		assert.Contains(t, viol.Reason, "evidence")
	})
}
