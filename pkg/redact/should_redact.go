package redact

import "github.com/Mindburn-Labs/classguard/pkg/policy"

// ShouldRedact implements §4.2's should_redact: true iff the subject's
// clearance is insufficient OR its compartments are insufficient. This
// is OR, not AND — per §9's design note, any single missing credential
// triggers redaction, and to avoid it the subject must satisfy both
// conditions.
func ShouldRedact(rule policy.FieldRedactionRule, subject Authorizer) bool {
	if rule.RequiredClearance != nil && !subject.Clearance().Dominates(*rule.RequiredClearance) {
		return true
	}
	if len(rule.RequiredCompartments) > 0 && !rule.RequiredCompartments.IsSubsetOf(subject.Compartments()) {
		return true
	}
	return false
}

func portionShouldRedact(rule policy.PortionRedactionRule, subject Authorizer) bool {
	if rule.MinimumClearance != nil && !subject.Clearance().Dominates(*rule.MinimumClearance) {
		return true
	}
	if len(rule.RequiredCompartments) > 0 && !rule.RequiredCompartments.IsSubsetOf(subject.Compartments()) {
		return true
	}
	return false
}
