// Package pdp implements the Access Decision Point: a fixed-order,
// fail-secure evaluation pipeline over a subject, a resource, and a
// policy, plus the convenience EvaluateAndRender entry point that
// composes the PDP with redaction and aggregation.
package pdp

import (
	"sort"

	"github.com/Mindburn-Labs/classguard/pkg/lattice"
)

// DevicePosture is the trust state of the device a subject is
// connecting from.
type DevicePosture string

const (
	DeviceTrusted   DevicePosture = "trusted"
	DeviceUntrusted DevicePosture = "untrusted"
	DeviceUnknown   DevicePosture = "unknown"
)

// SubjectContext is built per request and never persisted by the
// core. It is immutable once constructed via NewSubjectContext.
type SubjectContext struct {
	userID            string
	clearance         lattice.Level
	compartments      lattice.Set
	roles             map[string]struct{}
	mfaVerified       bool
	accountSuspended  bool
	sessionActive     bool
	devicePosture     DevicePosture
}

// SubjectContextInput is the plain-struct constructor argument for
// NewSubjectContext.
type SubjectContextInput struct {
	UserID           string
	Clearance        lattice.Level
	Compartments     lattice.Set
	Roles            []string
	MFAVerified      bool
	AccountSuspended bool
	SessionActive    bool
	DevicePosture    DevicePosture
}

// NewSubjectContext builds an immutable SubjectContext. Roles and
// Compartments are copied so later caller mutation of the input
// slices/sets cannot leak into the constructed value.
func NewSubjectContext(in SubjectContextInput) *SubjectContext {
	roles := make(map[string]struct{}, len(in.Roles))
	for _, r := range in.Roles {
		roles[r] = struct{}{}
	}
	compartments := make(lattice.Set, len(in.Compartments))
	for c := range in.Compartments {
		compartments[c] = struct{}{}
	}
	posture := in.DevicePosture
	if posture == "" {
		posture = DeviceUnknown
	}
	return &SubjectContext{
		userID:           in.UserID,
		clearance:        in.Clearance,
		compartments:     compartments,
		roles:            roles,
		mfaVerified:      in.MFAVerified,
		accountSuspended: in.AccountSuspended,
		sessionActive:    in.SessionActive,
		devicePosture:    posture,
	}
}

func (s *SubjectContext) UserID() string                 { return s.userID }
func (s *SubjectContext) Clearance() lattice.Level        { return s.clearance }
func (s *SubjectContext) Compartments() lattice.Set       { return s.compartments.Union(nil) }
func (s *SubjectContext) MFAVerified() bool               { return s.mfaVerified }
func (s *SubjectContext) AccountSuspended() bool          { return s.accountSuspended }
func (s *SubjectContext) SessionActive() bool             { return s.sessionActive }
func (s *SubjectContext) DevicePosture() DevicePosture    { return s.devicePosture }

// HasAnyRole reports whether the subject holds any role in candidates.
func (s *SubjectContext) HasAnyRole(candidates []string) bool {
	for _, c := range candidates {
		if _, ok := s.roles[c]; ok {
			return true
		}
	}
	return false
}

// Roles returns the subject's roles as a sorted slice for stable
// logging/snapshotting.
func (s *SubjectContext) Roles() []string {
	out := make([]string, 0, len(s.roles))
	for r := range s.roles {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
