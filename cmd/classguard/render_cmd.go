package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Mindburn-Labs/classguard/pkg/audit"
	"github.com/Mindburn-Labs/classguard/pkg/pdp"
	"github.com/Mindburn-Labs/classguard/pkg/policy"
)

func runRender(args []string, stdout, stderr io.Writer) int {
	if len(args) < 4 {
		fmt.Fprintln(stderr, "usage: classguard render <subject.json> <resource.json> <policy.json> <payload.json> [config.yaml]")
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
	pol, err := policy.LoadFile(args[2])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	payloadData, err := os.ReadFile(args[3])
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

	var payload map[string]interface{}
	if err := json.Unmarshal(payloadData, &payload); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var cfg *Config
	if len(args) >= 5 {
		cfg, err = LoadConfig(args[4])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	signingKey, err := readSigningKey(cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer clear(signingKey)

	result := pdp.EvaluateAndRender(subject, resource, pol, payload, signingKey)

	if cfg != nil && cfg.AuditEnabled && result.Allowed {
		decision := pdp.Decide(subject, resource, pol)
		if audit.HasAuditObligation(decision.Obligations) {
			audit.NewSlogLogger(slog.Default()).Record(context.Background(), audit.Event{
				DecisionID: decision.DecisionID,
				UserID:     subject.UserID(),
				Reason:     decision.Reason,
			})
		}
	}

	for k, v := range result.Headers {
		fmt.Fprintf(stdout, "%s: %s\n", k, v)
	}
	encoded, err := json.MarshalIndent(result.Body, "", "  ")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, string(encoded))

	if !result.Allowed {
		return 1
	}
	return 0
}
