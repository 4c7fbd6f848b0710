package pdp

import "github.com/Mindburn-Labs/classguard/pkg/lattice"

// ResourceDescriptor describes the resource being accessed: its own
// classification marking plus an optional need-to-know attribute map.
type ResourceDescriptor struct {
	marking          lattice.Marking
	needToKnowAttrs  map[string]interface{}
}

// ResourceDescriptorInput is the constructor argument for
// NewResourceDescriptor.
type ResourceDescriptorInput struct {
	Classification  lattice.Level
	Compartments    lattice.Set
	PortionMarkings []string
	NeedToKnowAttrs map[string]interface{}
}

// NewResourceDescriptor builds an immutable ResourceDescriptor.
func NewResourceDescriptor(in ResourceDescriptorInput) *ResourceDescriptor {
	attrs := make(map[string]interface{}, len(in.NeedToKnowAttrs))
	for k, v := range in.NeedToKnowAttrs {
		attrs[k] = v
	}
	return &ResourceDescriptor{
		marking:         lattice.NewMarking(in.Classification, in.Compartments, in.PortionMarkings),
		needToKnowAttrs: attrs,
	}
}

func (r *ResourceDescriptor) Classification() lattice.Level    { return r.marking.Level() }
func (r *ResourceDescriptor) Compartments() lattice.Set         { return r.marking.Compartments() }
func (r *ResourceDescriptor) PortionMarkings() []string          { return r.marking.PortionMarkings() }
func (r *ResourceDescriptor) NeedToKnowAttrs() map[string]interface{} {
	out := make(map[string]interface{}, len(r.needToKnowAttrs))
	for k, v := range r.needToKnowAttrs {
		out[k] = v
	}
	return out
}

// RequiredRoles extracts the optional "required_roles" extension key
// from need_to_know_attrs. Any other extension key (sectors, programs,
// mission tags) is intentionally left unread: §9's open question says
// these must not be silently ignored but also must not have semantics
// invented for them, so this core reads only the one key §3 names.
func (r *ResourceDescriptor) RequiredRoles() ([]string, bool) {
	raw, ok := r.needToKnowAttrs["required_roles"]
	if !ok {
		return nil, false
	}
	list, ok := raw.([]string)
	if ok {
		return list, true
	}
	if generic, ok := raw.([]interface{}); ok {
		out := make([]string, 0, len(generic))
		for _, v := range generic {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}
