package redact

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mindburn-Labs/classguard/pkg/lattice"
	"github.com/Mindburn-Labs/classguard/pkg/policy"
)

type fakeSubject struct {
	clearance    lattice.Level
	compartments lattice.Set
}

func (f fakeSubject) Clearance() lattice.Level    { return f.clearance }
func (f fakeSubject) Compartments() lattice.Set   { return f.compartments }

func wildcardPolicy(t *testing.T) *policy.Policy {
	t.Helper()
	secret := lattice.Secret
	path, err := policy.ParseDottedPath("incident.affected_users[*].email")
	require.NoError(t, err)
	return &policy.Policy{
		Name:       "wildcard-demo",
		Scope:      policy.ScopeGlobal,
		IsActive:   true,
		IsEnforced: true,
		FieldRules: []policy.FieldRedactionRule{
			{
				FieldPath:            path,
				Strategy:             policy.MaskBrackets,
				RequiredClearance:    &secret,
				RequiredCompartments: lattice.NewSet(lattice.HUMINT),
			},
		},
	}
}

func wildcardPayload() map[string]interface{} {
	return map[string]interface{}{
		"incident": map[string]interface{}{
			"affected_users": []interface{}{
				map[string]interface{}{"name": "A", "email": "a@x"},
				map[string]interface{}{"name": "B", "email": "b@x"},
			},
		},
	}
}

// TestWildcardRedactionScenario is spec end-to-end scenario 4.
func TestWildcardRedactionScenario(t *testing.T) {
	e := NewEngine()
	pol := wildcardPolicy(t)

	deficient := fakeSubject{clearance: lattice.Secret, compartments: lattice.NewSet(lattice.NOFORN)}
	redacted := e.Apply(wildcardPayload(), deficient, pol)
	users := redacted["incident"].(map[string]interface{})["affected_users"].([]interface{})
	require.Equal(t, "[REDACTED]", users[0].(map[string]interface{})["email"])
	require.Equal(t, "[REDACTED]", users[1].(map[string]interface{})["email"])
	require.Equal(t, "A", users[0].(map[string]interface{})["name"])
	require.Equal(t, "B", users[1].(map[string]interface{})["name"])

	sufficient := fakeSubject{clearance: lattice.Secret, compartments: lattice.NewSet(lattice.NOFORN, lattice.HUMINT)}
	unredacted := e.Apply(wildcardPayload(), sufficient, pol)
	users2 := unredacted["incident"].(map[string]interface{})["affected_users"].([]interface{})
	require.Equal(t, "a@x", users2[0].(map[string]interface{})["email"])
	require.Equal(t, "b@x", users2[1].(map[string]interface{})["email"])
}

func TestApplyDoesNotMutateOriginalPayload(t *testing.T) {
	e := NewEngine()
	pol := wildcardPolicy(t)
	original := wildcardPayload()
	deficient := fakeSubject{clearance: lattice.Secret, compartments: lattice.NewSet(lattice.NOFORN)}

	e.Apply(original, deficient, pol)

	users := original["incident"].(map[string]interface{})["affected_users"].([]interface{})
	require.Equal(t, "a@x", users[0].(map[string]interface{})["email"])
}

func TestApplySkipsNonListWildcardTarget(t *testing.T) {
	e := NewEngine()
	pol := wildcardPolicy(t)
	payload := map[string]interface{}{
		"incident": map[string]interface{}{"affected_users": "not-a-list"},
	}
	deficient := fakeSubject{clearance: lattice.Unclassified}
	require.NotPanics(t, func() { e.Apply(payload, deficient, pol) })
}

func TestComputeObligationsOrSemantics(t *testing.T) {
	e := NewEngine()
	pol := wildcardPolicy(t)

	// Satisfies compartments but not clearance.
	subj := fakeSubject{clearance: lattice.Confidential, compartments: lattice.NewSet(lattice.HUMINT)}
	obligations := e.ComputeObligations(subj, pol)
	require.Len(t, obligations, 1)
	require.Equal(t, policy.ObligationMaskField, obligations[0].Type)
}
