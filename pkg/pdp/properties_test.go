//go:build property
// +build property

package pdp

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Mindburn-Labs/classguard/pkg/lattice"
)

func levelGen() gopter.Gen {
	return gen.IntRange(int(lattice.Unclassified), int(lattice.TSSCI)).Map(func(i int) lattice.Level {
		return lattice.Level(i)
	})
}

// TestClearanceDenialReason encodes P1.
func TestClearanceDenialReason(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("insufficient clearance always denies with the right reason prefix", prop.ForAll(
		func(subjectLevel, resourceLevel lattice.Level) bool {
			subject := NewSubjectContext(SubjectContextInput{Clearance: subjectLevel, SessionActive: true})
			resource := NewResourceDescriptor(ResourceDescriptorInput{Classification: resourceLevel})
			decision := Decide(subject, resource, nil)
			if subjectLevel.Dominates(resourceLevel) {
				return true
			}
			return !decision.Allowed && strings.HasPrefix(decision.Reason, "Insufficient clearance")
		},
		levelGen(), levelGen(),
	))

	properties.TestingRun(t)
}

// TestSuspensionWinsOverEveryOtherCheck encodes P3.
func TestSuspensionWinsOverEveryOtherCheck(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("suspension denies regardless of clearance", prop.ForAll(
		func(clearance lattice.Level) bool {
			subject := NewSubjectContext(SubjectContextInput{
				Clearance:        clearance,
				AccountSuspended: true,
				SessionActive:    true,
				MFAVerified:      true,
			})
			resource := NewResourceDescriptor(ResourceDescriptorInput{Classification: lattice.Unclassified})
			decision := Decide(subject, resource, nil)
			return !decision.Allowed && decision.Reason == "User account is suspended"
		},
		levelGen(),
	))

	properties.TestingRun(t)
}
