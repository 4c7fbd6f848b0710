//go:build property
// +build property

package aggregate

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Mindburn-Labs/classguard/pkg/lattice"
)

func entityGen() gopter.Gen {
	return gen.IntRange(int(lattice.Unclassified), int(lattice.TSSCI)).Map(func(i int) ClassifiedEntity {
		return ClassifiedEntity{Classification: lattice.Level(i)}
	})
}

func entitySliceGen() gopter.Gen {
	return gen.SliceOf(entityGen())
}

// TestHighestClassificationDominatesEveryEntity encodes P4.
func TestHighestClassificationDominatesEveryEntity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("highest classification dominates every entity's rank", prop.ForAll(
		func(entities []ClassifiedEntity) bool {
			result := Aggregate(entities, nil)
			for _, e := range entities {
				if !result.HighestClassification.Dominates(e.Classification) {
					return false
				}
			}
			if len(entities) == 0 {
				return result.HighestClassification == lattice.Unclassified
			}
			return true
		},
		entitySliceGen(),
	))

	properties.TestingRun(t)
}

// TestSignaturePermutationInvariance encodes P5: permuting entities
// without changing the underlying multiset yields identical signatures.
func TestSignaturePermutationInvariance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	key := []byte("property-test-key")

	properties.Property("signature is stable under permutation", prop.ForAll(
		func(entities []ClassifiedEntity) bool {
			shuffled := make([]ClassifiedEntity, len(entities))
			copy(shuffled, entities)
			rand.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			return Aggregate(entities, key).Signature == Aggregate(shuffled, key).Signature
		},
		entitySliceGen(),
	))

	properties.TestingRun(t)
}
