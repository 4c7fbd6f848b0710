package pdp

import (
	"strings"

	"github.com/Mindburn-Labs/classguard/pkg/aggregate"
	"github.com/Mindburn-Labs/classguard/pkg/lattice"
	"github.com/Mindburn-Labs/classguard/pkg/policy"
	"github.com/Mindburn-Labs/classguard/pkg/redact"
)

// RenderResult is the (allowed, reason, headers, body) tuple §6's
// evaluate_and_render returns.
type RenderResult struct {
	Allowed bool
	Reason  string
	Headers map[string]string
	Body    map[string]interface{}
}

// EvaluateAndRender composes the PDP, the Redaction Engine, and the
// Classification Aggregator into the single convenience call §6
// describes. On allow it emits X-Classification, X-Portion-Markings,
// and (when signingKey is supplied) X-Classification-Signature. On
// deny it emits no headers and a body of {"error": reason}.
func EvaluateAndRender(subject *SubjectContext, resource *ResourceDescriptor, pol *policy.Policy, payload map[string]interface{}, signingKey []byte) RenderResult {
	decision := Decide(subject, resource, pol)
	if !decision.Allowed {
		return RenderResult{
			Allowed: false,
			Reason:  decision.Reason,
			Body:    map[string]interface{}{"error": decision.Reason},
		}
	}

	engine := redact.NewEngine()
	redacted := engine.Apply(payload, subject, pol)

	entities := []aggregate.ClassifiedEntity{
		{
			Classification:  resource.Classification(),
			PortionMarkings: resource.PortionMarkings(),
			Compartments:    resource.Compartments(),
		},
	}
	entities = append(entities, payloadEntities(redacted)...)
	banner := aggregate.Aggregate(entities, signingKey)

	headers := map[string]string{
		"X-Classification":    banner.HighestClassification.Code(),
		"X-Portion-Markings": strings.Join(banner.AllPortionMarkings, ","),
	}
	if len(signingKey) > 0 {
		headers["X-Classification-Signature"] = banner.Signature
	}

	redacted["access_obligations"] = decision.Obligations

	return RenderResult{
		Allowed: true,
		Reason:  decision.Reason,
		Headers: headers,
		Body:    redacted,
	}
}

// payloadEntities extracts classified sub-entities carried inside the
// redacted response payload itself: the payload's own top-level
// classification fields (if present) plus every item of a
// "related_alerts" list, each read the same way. A resource's banner
// must reflect the highest classification across all of these, not
// just the resource descriptor's own marking — a payload can embed
// sub-entities classified higher than the resource that contains them.
func payloadEntities(payload map[string]interface{}) []aggregate.ClassifiedEntity {
	var entities []aggregate.ClassifiedEntity
	if e, ok := entityFromMap(payload); ok {
		entities = append(entities, e)
	}
	if related, ok := payload["related_alerts"].([]interface{}); ok {
		for _, item := range related {
			if m, ok := item.(map[string]interface{}); ok {
				if e, ok := entityFromMap(m); ok {
					entities = append(entities, e)
				}
			}
		}
	}
	return entities
}

// entityFromMap reads classification/portion_markings/compartments
// out of a generic map, the same three keys the payload-embedded
// sub-entity convention uses. A map whose "classification" is missing,
// not a string, or not a known level code is not a classified
// sub-entity and is skipped; unknown compartment codes are dropped.
func entityFromMap(m map[string]interface{}) (aggregate.ClassifiedEntity, bool) {
	raw, ok := m["classification"].(string)
	if !ok {
		return aggregate.ClassifiedEntity{}, false
	}
	level, err := lattice.ParseLevel(raw)
	if err != nil {
		return aggregate.ClassifiedEntity{}, false
	}

	var portions []string
	if list, ok := m["portion_markings"].([]interface{}); ok {
		for _, p := range list {
			if s, ok := p.(string); ok {
				portions = append(portions, s)
			}
		}
	}

	compartments := make(lattice.Set)
	if list, ok := m["compartments"].([]interface{}); ok {
		for _, c := range list {
			if s, ok := c.(string); ok {
				if parsed, err := lattice.ParseCompartment(s); err == nil {
					compartments[parsed] = struct{}{}
				}
			}
		}
	}

	return aggregate.ClassifiedEntity{
		Classification:  level,
		PortionMarkings: portions,
		Compartments:    compartments,
	}, true
}
