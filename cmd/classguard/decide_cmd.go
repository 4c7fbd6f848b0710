package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Mindburn-Labs/classguard/pkg/pdp"
	"github.com/Mindburn-Labs/classguard/pkg/policy"
)

func runDecide(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(stderr, "usage: classguard decide <subject.json> <resource.json> [policy.json]")
		return 2
	}

	subjectData, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	resourceData, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	subject, err := decodeSubject(subjectData)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	resource, err := decodeResource(resourceData)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var pol *policy.Policy
	if len(args) >= 3 {
		pol, err = policy.LoadFile(args[2])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	decision := pdp.Decide(subject, resource, pol)
	return printDecision(decision, stdout)
}

func printDecision(decision *pdp.Decision, stdout io.Writer) int {
	type obligationView struct {
		Type          string `json:"type"`
		ResourceField string `json:"resource_field,omitempty"`
		Reason        string `json:"reason"`
	}
	view := struct {
		DecisionID  string            `json:"decision_id"`
		Allowed     bool              `json:"allowed"`
		Reason      string            `json:"reason"`
		Obligations []obligationView  `json:"obligations"`
	}{
		DecisionID: decision.DecisionID,
		Allowed:    decision.Allowed,
		Reason:     decision.Reason,
	}
	for _, o := range decision.Obligations {
		view.Obligations = append(view.Obligations, obligationView{
			Type:          string(o.Type),
			ResourceField: o.ResourceField,
			Reason:        o.Reason,
		})
	}

	encoded, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	fmt.Fprintln(stdout, string(encoded))
	if !decision.Allowed {
		return 1
	}
	return 0
}
