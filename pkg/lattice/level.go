// Package lattice implements the totally ordered classification level
// enumeration and compartment set algebra that every other package in
// this module builds on.
package lattice

import "fmt"

// Level is a classification level. A Level's rank is its numeric
// value: higher rank dominates lower rank.
type Level int

const (
	Unclassified Level = iota
	CUI
	Confidential
	Secret
	TopSecret
	TSSCI
)

// Code returns the external short code for a Level, e.g. "S" for Secret.
func (l Level) Code() string {
	switch l {
	case Unclassified:
		return "U"
	case CUI:
		return "CUI"
	case Confidential:
		return "C"
	case Secret:
		return "S"
	case TopSecret:
		return "TS"
	case TSSCI:
		return "TS//SCI"
	default:
		panic(fmt.Sprintf("lattice: invalid Level value %d", int(l)))
	}
}

func (l Level) String() string {
	return l.Code()
}

// Dominates reports whether l dominates other, i.e. l's rank is >= other's.
func (l Level) Dominates(other Level) bool {
	return int(l) >= int(other)
}

// ParseLevel converts an external code into a Level. It returns an
// error rather than a Level for any code outside the closed set
// defined in §3 — this is the deserialization boundary that keeps
// unknown codes from ever reaching the PDP.
func ParseLevel(code string) (Level, error) {
	switch code {
	case "U":
		return Unclassified, nil
	case "CUI":
		return CUI, nil
	case "C":
		return Confidential, nil
	case "S":
		return Secret, nil
	case "TS":
		return TopSecret, nil
	case "TS//SCI":
		return TSSCI, nil
	default:
		return 0, fmt.Errorf("lattice: unknown classification code %q", code)
	}
}

// MarshalJSON renders a Level using its external short code.
func (l Level) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.Code() + `"`), nil
}

// UnmarshalJSON parses a Level from its external short code, rejecting
// anything outside the closed enumeration.
func (l *Level) UnmarshalJSON(data []byte) error {
	s, err := unquoteJSONString(data)
	if err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func unquoteJSONString(data []byte) (string, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return "", fmt.Errorf("lattice: expected a JSON string, got %s", data)
	}
	return string(data[1 : len(data)-1]), nil
}
