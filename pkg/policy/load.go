package policy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Mindburn-Labs/classguard/pkg/lattice"
)

var compiledSchema = compileDocumentSchema()

func compileDocumentSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("policy.json", bytes.NewReader([]byte(documentSchema))); err != nil {
		panic(fmt.Sprintf("policy: invalid embedded schema: %v", err))
	}
	schema, err := compiler.Compile("policy.json")
	if err != nil {
		panic(fmt.Sprintf("policy: invalid embedded schema: %v", err))
	}
	return schema
}

type wireFieldRule struct {
	FieldPath            string   `json:"field_path"`
	FieldType            string   `json:"field_type"`
	Strategy             string   `json:"strategy"`
	RequiredClearance    *string  `json:"required_clearance"`
	RequiredCompartments []string `json:"required_compartments"`
	Description          string   `json:"description"`
	Tags                 []string `json:"tags"`
}

type wirePortionRule struct {
	PortionName          string   `json:"portion_name"`
	PortionMarking       string   `json:"portion_marking"`
	MinimumClearance     *string  `json:"minimum_clearance"`
	RequiredCompartments []string `json:"required_compartments"`
	Strategy             string   `json:"strategy"`
}

type wirePolicy struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Scope           string            `json:"scope"`
	ApplicableRoles []string          `json:"applicable_roles"`
	IsActive        bool              `json:"is_active"`
	IsEnforced      bool              `json:"is_enforced"`
	Obligations     []string          `json:"obligations"`
	AuditMetadata   map[string]string `json:"audit_metadata"`
	FieldRules      []wireFieldRule   `json:"field_rules"`
	PortionRules    []wirePortionRule `json:"portion_rules"`
}

// Load parses and strictly validates a policy document from raw JSON
// bytes. The document is first validated against the embedded JSON
// Schema (rejecting unknown fields), then decoded and checked against
// the domain invariants in Policy.Validate.
func Load(data []byte) (*Policy, error) {
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, newValidationError(ErrSchemaViolation, "", fmt.Sprintf("invalid JSON: %v", err))
	}
	if err := compiledSchema.Validate(generic); err != nil {
		return nil, newValidationError(ErrUnknownField, "", err.Error())
	}

	var w wirePolicy
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, newValidationError(ErrSchemaViolation, "", fmt.Sprintf("invalid JSON: %v", err))
	}

	p, err := w.toPolicy()
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFile reads a policy document from disk and parses it via Load,
// grounded on the teacher's policyloader.Loader.LoadFile.
func LoadFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("policy: reading %s: %w", path, err)
	}
	return Load(data)
}

func (w wirePolicy) toPolicy() (*Policy, error) {
	scope, err := ParseScope(w.Scope)
	if err != nil {
		return nil, newValidationError(ErrInvalidEnumValue, "scope", err.Error())
	}

	fieldRules := make([]FieldRedactionRule, 0, len(w.FieldRules))
	for _, wfr := range w.FieldRules {
		rule, err := wfr.toRule()
		if err != nil {
			return nil, err
		}
		fieldRules = append(fieldRules, rule)
	}

	portionRules := make([]PortionRedactionRule, 0, len(w.PortionRules))
	for _, wpr := range w.PortionRules {
		rule, err := wpr.toRule()
		if err != nil {
			return nil, err
		}
		portionRules = append(portionRules, rule)
	}

	return &Policy{
		Name:            w.Name,
		Description:     w.Description,
		FieldRules:      fieldRules,
		PortionRules:    portionRules,
		Obligations:     w.Obligations,
		Scope:           scope,
		ApplicableRoles: w.ApplicableRoles,
		IsActive:        w.IsActive,
		IsEnforced:      w.IsEnforced,
		AuditMetadata:   w.AuditMetadata,
	}, nil
}

func (w wireFieldRule) toRule() (FieldRedactionRule, error) {
	path, err := ParseDottedPath(w.FieldPath)
	if err != nil {
		return FieldRedactionRule{}, newValidationError(ErrInvalidDottedPath, "field_path", err.Error())
	}
	strategy, err := ParseStrategy(w.Strategy)
	if err != nil {
		return FieldRedactionRule{}, newValidationError(ErrInvalidEnumValue, "strategy", err.Error())
	}
	clearance, err := parseOptionalLevel(w.RequiredClearance)
	if err != nil {
		return FieldRedactionRule{}, newValidationError(ErrInvalidEnumValue, "required_clearance", err.Error())
	}
	compartments, err := parseCompartmentSlice(w.RequiredCompartments)
	if err != nil {
		return FieldRedactionRule{}, newValidationError(ErrInvalidEnumValue, "required_compartments", err.Error())
	}
	return FieldRedactionRule{
		FieldPath:            path,
		FieldType:            w.FieldType,
		Strategy:             strategy,
		RequiredClearance:    clearance,
		RequiredCompartments: compartments,
		Description:          w.Description,
		Tags:                 w.Tags,
	}, nil
}

func (w wirePortionRule) toRule() (PortionRedactionRule, error) {
	strategy, err := ParseStrategy(w.Strategy)
	if err != nil {
		return PortionRedactionRule{}, newValidationError(ErrInvalidEnumValue, "strategy", err.Error())
	}
	clearance, err := parseOptionalLevel(w.MinimumClearance)
	if err != nil {
		return PortionRedactionRule{}, newValidationError(ErrInvalidEnumValue, "minimum_clearance", err.Error())
	}
	compartments, err := parseCompartmentSlice(w.RequiredCompartments)
	if err != nil {
		return PortionRedactionRule{}, newValidationError(ErrInvalidEnumValue, "required_compartments", err.Error())
	}
	return PortionRedactionRule{
		PortionName:          w.PortionName,
		PortionMarking:       w.PortionMarking,
		MinimumClearance:     clearance,
		RequiredCompartments: compartments,
		Strategy:             strategy,
	}, nil
}

func parseOptionalLevel(code *string) (*lattice.Level, error) {
	if code == nil {
		return nil, nil
	}
	lvl, err := lattice.ParseLevel(*code)
	if err != nil {
		return nil, err
	}
	return &lvl, nil
}

func parseCompartmentSlice(codes []string) (lattice.Set, error) {
	if len(codes) == 0 {
		return nil, nil
	}
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
