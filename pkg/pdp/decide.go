package pdp

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mindburn-Labs/classguard/pkg/lattice"
	"github.com/Mindburn-Labs/classguard/pkg/policy"
)

// check is one step of the fixed-order evaluation pipeline. It
// returns ok=false and a denial reason when the step fails; the
// pipeline halts at the first failing check.
type check func(subject *SubjectContext, resource *ResourceDescriptor) (ok bool, reason string)

// checks is the fixed, ordered pipeline from §4.1. Reordering this
// slice changes the security semantics of the system — do not do it
// without re-reading §4.1 and P3.
var checks = []check{
	checkAccountStatus,
	checkSessionStatus,
	checkClearanceDominance,
	checkCompartmentContainment,
	checkNeedToKnow,
}

func checkAccountStatus(subject *SubjectContext, _ *ResourceDescriptor) (bool, string) {
	if subject.AccountSuspended() {
		return false, "User account is suspended"
	}
	return true, ""
}

func checkSessionStatus(subject *SubjectContext, _ *ResourceDescriptor) (bool, string) {
	if !subject.SessionActive() {
		return false, "Session is not active"
	}
	return true, ""
}

func checkClearanceDominance(subject *SubjectContext, resource *ResourceDescriptor) (bool, string) {
	if !subject.Clearance().Dominates(resource.Classification()) {
		return false, fmt.Sprintf("Insufficient clearance: user has %s, resource requires %s",
			subject.Clearance().Code(), resource.Classification().Code())
	}
	return true, ""
}

func checkCompartmentContainment(subject *SubjectContext, resource *ResourceDescriptor) (bool, string) {
	missing := subject.Compartments().Missing(resource.Compartments())
	if len(missing) == 0 {
		return true, ""
	}
	codes := make([]string, len(missing))
	for i, c := range missing {
		codes[i] = string(c)
	}
	return false, fmt.Sprintf("Missing compartments: %s", strings.Join(codes, ", "))
}

func checkNeedToKnow(subject *SubjectContext, resource *ResourceDescriptor) (bool, string) {
	requiredRoles, ok := resource.RequiredRoles()
	if !ok || len(requiredRoles) == 0 {
		return true, ""
	}
	if subject.HasAnyRole(requiredRoles) {
		return true, ""
	}
	return false, fmt.Sprintf("User does not meet need-to-know requirement: requires one of [%s]", strings.Join(requiredRoles, ", "))
}

// Decide runs the fixed-order, fail-secure evaluation pipeline and
// returns exactly one Decision. It is a pure function of its inputs:
// identical inputs yield identical decisions modulo DecisionID and
// DecidedAt.
func Decide(subject *SubjectContext, resource *ResourceDescriptor, pol *policy.Policy) *Decision {
	decision := &Decision{
		DecisionID: newDecisionID(),
		DecidedAt:  time.Now(),
		Subject:    subject,
		Resource:   resource,
	}

	for _, c := range checks {
		if ok, reason := c(subject, resource); !ok {
			decision.Allowed = false
			decision.Reason = reason
			return decision
		}
	}

	decision.Allowed = true
	decision.Reason = "All access control checks passed"
	highest := resource.Classification()
	decision.HighestClassification = &highest
	decision.PortionMarkings = resource.PortionMarkings()
	decision.Obligations = deriveObligations(subject, resource)
	return decision
}

// deriveObligations implements §4.1's independent obligation
// derivation pass, in the fixed emission order: device-posture MFA,
// then mfa-missing MFA, then audit. These are derived from
// subject/resource state alone, not from the policy's field/portion
// rules, so they run regardless of Policy.IsEnforced — that flag only
// gates rule-derived obligations in pkg/redact.Engine.ComputeObligations.
// Obligations derived from field/portion redaction rules are a
// separate query and are not merged here.
func deriveObligations(subject *SubjectContext, resource *ResourceDescriptor) []policy.DecisionObligation {
	var obligations []policy.DecisionObligation

	if subject.DevicePosture() == DeviceUntrusted && resource.Classification().Dominates(lattice.Secret) {
		obligations = append(obligations, policy.DecisionObligation{
			Type:   policy.ObligationRequireMFA,
			Reason: "Device is untrusted; Secret+ data requires additional MFA",
		})
	}

	if resource.Classification().Dominates(lattice.Secret) && !subject.MFAVerified() {
		obligations = append(obligations, policy.DecisionObligation{
			Type:   policy.ObligationRequireMFA,
			Reason: "Secret+ data requires MFA verification",
		})
	}

	if resource.Classification().Dominates(lattice.CUI) {
		obligations = append(obligations, policy.DecisionObligation{
			Type:   policy.ObligationAuditAccess,
			Reason: fmt.Sprintf("Accessing %s data", resource.Classification().Code()),
		})
	}

	return obligations
}
