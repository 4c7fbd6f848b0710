package policy

import "fmt"

// Strategy names a redaction transform applied to a matched leaf.
type Strategy string

const (
	MaskBrackets Strategy = "MASK_BRACKETS"
	MaskAsterisk Strategy = "MASK_ASTERISKS"
	MaskHash     Strategy = "MASK_HASH"
	RemoveField  Strategy = "REMOVE_FIELD"
	Truncate     Strategy = "TRUNCATE"
)

var validStrategies = map[Strategy]struct{}{
	MaskBrackets: {},
	MaskAsterisk: {},
	MaskHash:     {},
	RemoveField:  {},
	Truncate:     {},
}

// ParseStrategy validates a strategy code against the closed set
// defined in §4.2's strategy table.
func ParseStrategy(code string) (Strategy, error) {
	s := Strategy(code)
	if _, ok := validStrategies[s]; !ok {
		return "", fmt.Errorf("policy: unknown redaction strategy %q", code)
	}
	return s, nil
}

// Scope names the applicability scope of a Policy.
type Scope string

const (
	ScopeGlobal         Scope = "GLOBAL"
	ScopeRoleBased      Scope = "ROLE_BASED"
	ScopeAttributeBased Scope = "ATTRIBUTE_BASED"
	ScopeResourceBased  Scope = "RESOURCE_BASED"
)

var validScopes = map[Scope]struct{}{
	ScopeGlobal:         {},
	ScopeRoleBased:      {},
	ScopeAttributeBased: {},
	ScopeResourceBased:  {},
}

// ParseScope validates a scope code against the closed enumeration.
func ParseScope(code string) (Scope, error) {
	s := Scope(code)
	if _, ok := validScopes[s]; !ok {
		return "", fmt.Errorf("policy: unknown scope %q", code)
	}
	return s, nil
}
