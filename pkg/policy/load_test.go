package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const validDocument = `{
  "name": "wildcard-demo",
  "scope": "GLOBAL",
  "is_active": true,
  "is_enforced": true,
  "field_rules": [
    {
      "field_path": "incident.affected_users[*].email",
      "strategy": "MASK_BRACKETS",
      "required_clearance": "S",
      "required_compartments": ["HUMINT"]
    }
  ]
}`

func TestLoadValidDocument(t *testing.T) {
	p, err := Load([]byte(validDocument))
	require.NoError(t, err)
	require.Equal(t, "wildcard-demo", p.Name)
	require.Len(t, p.FieldRules, 1)
	require.Equal(t, "incident.affected_users[*].email", p.FieldRules[0].FieldPath.String())
}

func TestLoadRejectsUnknownField(t *testing.T) {
	doc := `{"name":"x","scope":"GLOBAL","is_active":true,"is_enforced":true,"not_a_real_field":1}`
	_, err := Load([]byte(doc))
	require.Error(t, err)
}

func TestLoadRejectsNoOpRule(t *testing.T) {
	doc := `{
    "name": "noop",
    "scope": "GLOBAL",
    "is_active": true,
    "is_enforced": true,
    "field_rules": [{"field_path": "a.b", "strategy": "MASK_BRACKETS"}]
  }`
	_, err := Load([]byte(doc))
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, ErrNoOpRedactionRule, verr.Code)
}

func TestLoadRejectsInvalidScope(t *testing.T) {
	doc := `{"name":"x","scope":"NOT_A_SCOPE","is_active":true,"is_enforced":true}`
	_, err := Load([]byte(doc))
	require.Error(t, err)
}
