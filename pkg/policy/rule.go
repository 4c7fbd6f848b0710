package policy

import "github.com/Mindburn-Labs/classguard/pkg/lattice"

// FieldRedactionRule targets a single dotted field path for redaction
// when the evaluating subject lacks the required clearance and/or
// compartments.
type FieldRedactionRule struct {
	FieldPath            DottedPath
	FieldType            string
	Strategy             Strategy
	RequiredClearance    *lattice.Level
	RequiredCompartments lattice.Set
	Description          string
	Tags                 []string
}

// Validate enforces §3's invariant: at least one of RequiredClearance
// or RequiredCompartments must be set, else the rule can never fire
// and is a no-op.
func (r FieldRedactionRule) Validate() error {
	if r.RequiredClearance == nil && len(r.RequiredCompartments) == 0 {
		return newValidationError(ErrNoOpRedactionRule, r.FieldPath.String(),
			"field redaction rule sets neither required_clearance nor required_compartments")
	}
	return nil
}

// PortionRedactionRule targets a named document portion (identified by
// its portion marking) for redaction.
type PortionRedactionRule struct {
	PortionName          string
	PortionMarking        string
	MinimumClearance      *lattice.Level
	RequiredCompartments  lattice.Set
	Strategy              Strategy
}

// Validate applies the same no-op invariant as FieldRedactionRule.
func (r PortionRedactionRule) Validate() error {
	if r.MinimumClearance == nil && len(r.RequiredCompartments) == 0 {
		return newValidationError(ErrNoOpRedactionRule, r.PortionName,
			"portion redaction rule sets neither minimum_clearance nor required_compartments")
	}
	return nil
}
