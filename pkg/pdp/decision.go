package pdp

import (
	"time"

	"github.com/google/uuid"

	"github.com/Mindburn-Labs/classguard/pkg/lattice"
	"github.com/Mindburn-Labs/classguard/pkg/policy"
)

// Decision is emitted exactly once per Decide call and is immutable
// thereafter.
type Decision struct {
	DecisionID             string
	Allowed                bool
	Reason                 string
	Obligations            []policy.DecisionObligation
	HighestClassification  *lattice.Level
	PortionMarkings        []string
	DecidedAt              time.Time
	Subject                *SubjectContext
	Resource               *ResourceDescriptor
}

func newDecisionID() string {
	return uuid.NewString()
}
