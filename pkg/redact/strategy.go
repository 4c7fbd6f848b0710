package redact

import (
	"fmt"

	"github.com/Mindburn-Labs/classguard/pkg/policy"
)

// applyStrategy returns the replacement value for a masked leaf, or
// (nil, true) when the strategy instead removes the key from its
// parent (REMOVE_FIELD), per §4.2's strategy table.
func applyStrategy(strategy policy.Strategy, leaf interface{}) (replacement interface{}, remove bool) {
	switch strategy {
	case policy.MaskBrackets:
		return "[REDACTED]", false
	case policy.MaskAsterisk:
		return "****", false
	case policy.MaskHash:
		return "#####", false
	case policy.RemoveField:
		return nil, true
	case policy.Truncate:
		return truncate(leaf), false
	default:
		panic(fmt.Sprintf("redact: unknown strategy %q", strategy))
	}
}

// truncate implements §4.2's TRUNCATE rule: for strings longer than 6
// characters, "{first 3}...{last 3}"; otherwise "[REDACTED]".
func truncate(leaf interface{}) interface{} {
	s, ok := leaf.(string)
	if !ok {
		return "[REDACTED]"
	}
	r := []rune(s)
	if len(r) <= 6 {
		return "[REDACTED]"
	}
	return string(r[:3]) + "..." + string(r[len(r)-3:])
}
