// Package aggregate computes a deterministic classification banner
// from a list of classified entities and optionally signs it.
package aggregate

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"

	"github.com/Mindburn-Labs/classguard/pkg/canonicalize"
	"github.com/Mindburn-Labs/classguard/pkg/lattice"
)

// ClassifiedEntity is one input to Aggregate: a classification level
// plus its portion markings and compartments.
type ClassifiedEntity struct {
	Classification  lattice.Level
	PortionMarkings []string
	Compartments    lattice.Set
}

// Result is the AggregationResult of §3: a deterministic banner
// reduction over a list of ClassifiedEntity values.
type Result struct {
	HighestClassification  lattice.Level
	AllClassifications     []lattice.Level
	AllPortionMarkings     []string
	AllCompartments        []string
	ComputedAt             time.Time
	ComputedFromEntityCount int
	Signature              string
	SignatureAlgorithm     string
}

// Aggregate reduces entities to a single Result. When signingKey is
// non-empty, the result's Signature is an HMAC-SHA256 hex digest over
// the canonical signing payload defined in §4.3.
func Aggregate(entities []ClassifiedEntity, signingKey []byte) Result {
	result := Result{
		HighestClassification: lattice.Unclassified,
		AllClassifications:    make([]lattice.Level, 0, len(entities)),
		ComputedAt:            time.Now(),
		ComputedFromEntityCount: len(entities),
	}

	portionSet := make(map[string]struct{})
	compartmentSet := make(lattice.Set)

	for _, e := range entities {
		result.AllClassifications = append(result.AllClassifications, e.Classification)
		if e.Classification.Dominates(result.HighestClassification) {
			result.HighestClassification = e.Classification
		}
		for _, pm := range e.PortionMarkings {
			portionSet[pm] = struct{}{}
		}
		for c := range e.Compartments {
			compartmentSet[c] = struct{}{}
		}
	}

	result.AllPortionMarkings = sortedStringSet(portionSet)
	result.AllCompartments = compartmentSet.SortedCodes()

	if len(signingKey) > 0 {
		result.SignatureAlgorithm = "hmac-sha256"
		result.Signature = sign(signingKey, result.HighestClassification, result.AllPortionMarkings, result.AllCompartments, len(entities))
	}

	return result
}

// sign computes the HMAC-SHA256 hex digest over the canonical signing
// payload of §4.3, which deliberately excludes timestamps and input
// order so the signature is stable for cacheability (P5).
func sign(key []byte, highest lattice.Level, portionMarkings, compartments []string, count int) string {
	payload := map[string]interface{}{
		"all_compartments":      toInterfaceSlice(compartments),
		"all_portion_markings":  toInterfaceSlice(portionMarkings),
		"count":                 count,
		"highest_classification": highest.Code(),
	}
	canonical, err := canonicalize.JCS(payload)
	if err != nil {
		// payload is built entirely from strings/ints above and can
		// never fail to canonicalize.
		panic(err)
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(canonical)
	return hex.EncodeToString(mac.Sum(nil))
}

func sortedStringSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func toInterfaceSlice(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
