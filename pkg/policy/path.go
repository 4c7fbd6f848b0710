package policy

import (
	"fmt"
	"strings"
)

// Segment is one element of a DottedPath: either a literal map key or
// a list-wildcard key[*] that fans out over every element of the list
// stored at that key.
type Segment struct {
	Key      string
	Wildcard bool
}

// DottedPath is a pre-parsed field-path, produced once at policy-load
// time per §9's design note ("pre-parse each rule's field_path at
// policy load time into a vector of segments") rather than re-parsed
// on every redaction call.
type DottedPath struct {
	raw      string
	segments []Segment
}

// String returns the original dotted-path string the DottedPath was
// parsed from.
func (p DottedPath) String() string { return p.raw }

// Segments returns the parsed segment vector.
func (p DottedPath) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// ParseDottedPath parses a dotted field path such as
// "incident.affected_users[*].email" into a Segment vector. An empty
// path is invalid per §3.
func ParseDottedPath(raw string) (DottedPath, error) {
	if raw == "" {
		return DottedPath{}, fmt.Errorf("policy: empty dotted path")
	}
	parts := strings.Split(raw, ".")
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return DottedPath{}, fmt.Errorf("policy: dotted path %q has an empty segment", raw)
		}
		if strings.HasSuffix(part, "[*]") {
			key := strings.TrimSuffix(part, "[*]")
			if key == "" {
				return DottedPath{}, fmt.Errorf("policy: dotted path %q has an empty wildcard key", raw)
			}
			segments = append(segments, Segment{Key: key, Wildcard: true})
			continue
		}
		segments = append(segments, Segment{Key: part})
	}
	return DottedPath{raw: raw, segments: segments}, nil
}

// MarshalJSON renders a DottedPath as its original dotted string.
func (p DottedPath) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.raw + `"`), nil
}

// UnmarshalJSON parses a DottedPath from a JSON string, re-running the
// same validation ParseDottedPath performs.
func (p *DottedPath) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("policy: dotted path must be a JSON string, got %s", data)
	}
	parsed, err := ParseDottedPath(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
