package policy

// Policy is a long-lived, caller-owned policy document. Per §3, the
// engine holds a read-only reference and never mutates it.
type Policy struct {
	Name            string
	Description     string
	FieldRules      []FieldRedactionRule
	PortionRules    []PortionRedactionRule
	Obligations     []string
	Scope           Scope
	ApplicableRoles []string
	IsActive        bool
	IsEnforced      bool
	AuditMetadata   map[string]string
}

// Validate checks every rule's invariants and the policy's own enum
// fields. It is called once at load time (see Load/LoadFile); the PDP
// and Redaction Engine trust an already-validated *Policy and never
// re-validate on every request.
func (p *Policy) Validate() error {
	if p.Name == "" {
		return newValidationError(ErrMissingField, "name", "policy name is required")
	}
	if _, err := ParseScope(string(p.Scope)); err != nil {
		return newValidationError(ErrInvalidEnumValue, "scope", err.Error())
	}
	for _, rule := range p.FieldRules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	for _, rule := range p.PortionRules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	return nil
}
