package main

import (
	"encoding/json"
	"fmt"

	"github.com/Mindburn-Labs/classguard/pkg/lattice"
	"github.com/Mindburn-Labs/classguard/pkg/pdp"
)

// wireSubject and wireResource mirror the on-disk JSON shape for
// SubjectContext and ResourceDescriptor. The core types hold
// unexported fields to stay immutable after construction (§3), so the
// CLI decodes into these plain wire structs and builds the real types
// through their constructors.
type wireSubject struct {
	UserID           string   `json:"user_id"`
	Clearance        string   `json:"clearance"`
	Compartments     []string `json:"compartments"`
	Roles            []string `json:"roles"`
	MFAVerified      bool     `json:"mfa_verified"`
	AccountSuspended bool     `json:"account_suspended"`
	SessionActive    bool     `json:"session_active"`
	DevicePosture    string   `json:"device_posture"`
}

type wireResource struct {
	Classification  string                 `json:"classification"`
	Compartments    []string               `json:"compartments"`
	PortionMarkings []string               `json:"portion_markings"`
	NeedToKnowAttrs map[string]interface{} `json:"need_to_know_attrs"`
}

func decodeSubject(data []byte) (*pdp.SubjectContext, error) {
	var w wireSubject
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding subject: %w", err)
	}
	clearance, err := lattice.ParseLevel(w.Clearance)
	if err != nil {
		return nil, fmt.Errorf("subject.clearance: %w", err)
	}
	compartments, err := decodeCompartments(w.Compartments)
	if err != nil {
		return nil, fmt.Errorf("subject.compartments: %w", err)
	}
	posture := pdp.DevicePosture(w.DevicePosture)
	if posture == "" {
		posture = pdp.DeviceUnknown
	}
	return pdp.NewSubjectContext(pdp.SubjectContextInput{
		UserID:           w.UserID,
		Clearance:        clearance,
		Compartments:     compartments,
		Roles:            w.Roles,
		MFAVerified:      w.MFAVerified,
		AccountSuspended: w.AccountSuspended,
		SessionActive:    w.SessionActive,
		DevicePosture:    posture,
	}), nil
}

func decodeResource(data []byte) (*pdp.ResourceDescriptor, error) {
	var w wireResource
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding resource: %w", err)
	}
	classification, err := lattice.ParseLevel(w.Classification)
	if err != nil {
		return nil, fmt.Errorf("resource.classification: %w", err)
	}
	compartments, err := decodeCompartments(w.Compartments)
	if err != nil {
		return nil, fmt.Errorf("resource.compartments: %w", err)
	}
	return pdp.NewResourceDescriptor(pdp.ResourceDescriptorInput{
		Classification:  classification,
		Compartments:    compartments,
		PortionMarkings: w.PortionMarkings,
		NeedToKnowAttrs: w.NeedToKnowAttrs,
	}), nil
}

func decodeCompartments(codes []string) (lattice.Set, error) {
	set := make(lattice.Set, len(codes))
	for _, code := range codes {
		c, err := lattice.ParseCompartment(code)
		if err != nil {
			return nil, err
		}
		set[c] = struct{}{}
	}
	return set, nil
}
