// Package redact walks structured payloads against a Policy's field
// and portion redaction rules, masking or removing values the
// evaluating subject is not entitled to see.
package redact

import "github.com/Mindburn-Labs/classguard/pkg/lattice"

// Authorizer is the minimal view of a subject the Redaction Engine
// needs. pdp.SubjectContext implements this; keeping the dependency
// this narrow avoids an import cycle between pkg/pdp and pkg/redact.
type Authorizer interface {
	Clearance() lattice.Level
	Compartments() lattice.Set
}
