package lattice

import (
	"fmt"
	"sort"
)

// Compartment is a closed enumeration of compartment tags.
type Compartment string

const (
	NOFORN     Compartment = "NOFORN"
	HUMINT     Compartment = "HUMINT"
	SIGINT     Compartment = "SIGINT"
	TK         Compartment = "TK"
	NOCONTRACT Compartment = "NOCONTRACT"
)

var validCompartments = map[Compartment]struct{}{
	NOFORN:     {},
	HUMINT:     {},
	SIGINT:     {},
	TK:         {},
	NOCONTRACT: {},
}

// ParseCompartment validates a compartment code against the closed
// enumeration. Unknown codes are rejected at this boundary rather than
// silently admitted as free-form strings.
func ParseCompartment(code string) (Compartment, error) {
	c := Compartment(code)
	if _, ok := validCompartments[c]; !ok {
		return "", fmt.Errorf("lattice: unknown compartment code %q", code)
	}
	return c, nil
}

// Set is an unordered collection of Compartments with subset algebra.
type Set map[Compartment]struct{}

// NewSet builds a Set from a slice of compartments.
func NewSet(compartments ...Compartment) Set {
	s := make(Set, len(compartments))
	for _, c := range compartments {
		s[c] = struct{}{}
	}
	return s
}

// Contains reports whether c is a member of the set.
func (s Set) Contains(c Compartment) bool {
	_, ok := s[c]
	return ok
}

// IsSubsetOf reports whether every member of s is also a member of other.
func (s Set) IsSubsetOf(other Set) bool {
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Missing returns the members of required that are absent from s,
// sorted lexicographically by code — the deterministic ordering the
// PDP's denial message depends on.
func (s Set) Missing(required Set) []Compartment {
	var missing []Compartment
	for c := range required {
		if !s.Contains(c) {
			missing = append(missing, c)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}

// Union returns a new Set containing every member of s and other.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for c := range s {
		out[c] = struct{}{}
	}
	for c := range other {
		out[c] = struct{}{}
	}
	return out
}

// SortedCodes returns the set's members as a lexicographically sorted
// slice of their string codes.
func (s Set) SortedCodes() []string {
	codes := make([]string, 0, len(s))
	for c := range s {
		codes = append(codes, string(c))
	}
	sort.Strings(codes)
	return codes
}

// MarshalJSON renders the set as a sorted JSON array of codes, making
// encoded output deterministic regardless of map iteration order.
func (s Set) MarshalJSON() ([]byte, error) {
	codes := s.SortedCodes()
	buf := []byte("[")
	for i, c := range codes {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '"')
		buf = append(buf, c...)
		buf = append(buf, '"')
	}
	buf = append(buf, ']')
	return buf, nil
}

// UnmarshalJSON parses a set from a JSON array of codes, validating
// each one against the closed enumeration.
func (s *Set) UnmarshalJSON(data []byte) error {
	var codes []string
	if err := unmarshalStringSlice(data, &codes); err != nil {
		return err
	}
	out := make(Set, len(codes))
	for _, code := range codes {
		c, err := ParseCompartment(code)
		if err != nil {
			return err
		}
		out[c] = struct{}{}
	}
	*s = out
	return nil
}
