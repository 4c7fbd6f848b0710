package redact

import (
	"fmt"

	"github.com/Mindburn-Labs/classguard/pkg/policy"
)

// Engine walks tree-shaped payloads against a Policy's redaction
// rules. It holds no state of its own; every method is a pure
// function of its arguments, matching §5's stateless concurrency
// model.
type Engine struct{}

// NewEngine constructs a redaction Engine.
func NewEngine() *Engine { return &Engine{} }

// Apply returns a redacted copy of payload. The caller's original
// payload is never observably mutated: Apply deep-copies before
// walking, per §4.2's in-place-vs-copy contract.
func (e *Engine) Apply(payload map[string]interface{}, subject Authorizer, pol *policy.Policy) map[string]interface{} {
	out := deepCopyMap(payload)
	if pol == nil || !pol.IsEnforced {
		return out
	}
	// §4.2: rules are applied in policy declaration order; a later
	// rule may observe a value already rewritten by an earlier one.
	for _, rule := range pol.FieldRules {
		if !ShouldRedact(rule, subject) {
			continue
		}
		walkAndApply(out, rule.FieldPath.Segments(), rule.Strategy)
	}
	return out
}

// ComputeObligations returns the redaction-derived obligations for
// subject under pol, independent of any payload shape, per §4.2's
// compute_obligations(subject, policy) contract.
func (e *Engine) ComputeObligations(subject Authorizer, pol *policy.Policy) []policy.DecisionObligation {
	var obligations []policy.DecisionObligation
	if pol == nil || !pol.IsEnforced {
		return obligations
	}
	for _, rule := range pol.FieldRules {
		if !ShouldRedact(rule, subject) {
			continue
		}
		oblType := policy.ObligationMaskField
		obligations = append(obligations, policy.DecisionObligation{
			Type:              oblType,
			ResourceField:     rule.FieldPath.String(),
			RedactionStrategy: rule.Strategy,
			Reason:            fmt.Sprintf("subject lacks clearance or compartments required by field rule on %s", rule.FieldPath.String()),
		})
	}
	for _, rule := range pol.PortionRules {
		if !portionShouldRedact(rule, subject) {
			continue
		}
		obligations = append(obligations, policy.DecisionObligation{
			Type:              policy.ObligationRedactPortion,
			ResourceField:     rule.PortionName,
			RedactionStrategy: rule.Strategy,
			Reason:            fmt.Sprintf("subject lacks clearance or compartments required by portion %s", rule.PortionMarking),
		})
	}
	return obligations
}

// walkAndApply resolves segments against node and applies strategy to
// every matched leaf. Any segment that fails to resolve — missing key
// or wrong type — causes the rule to be silently skipped for that
// path, per §4.2.
func walkAndApply(node interface{}, segments []policy.Segment, strategy policy.Strategy) {
	if len(segments) == 0 {
		return
	}
	m, ok := node.(map[string]interface{})
	if !ok {
		return
	}
	seg := segments[0]
	val, exists := m[seg.Key]
	if !exists {
		return
	}

	if seg.Wildcard {
		list, ok := val.([]interface{})
		if !ok {
			return
		}
		for _, item := range list {
			walkAndApply(item, segments[1:], strategy)
		}
		return
	}

	if len(segments) == 1 {
		replacement, remove := applyStrategy(strategy, val)
		if remove {
			delete(m, seg.Key)
		} else {
			m[seg.Key] = replacement
		}
		return
	}

	walkAndApply(val, segments[1:], strategy)
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	if src == nil {
		return nil
	}
	out := make(map[string]interface{}, len(src))
	for k, v := range src {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return deepCopyMap(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return val
	}
}
