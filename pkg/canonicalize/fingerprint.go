package canonicalize

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// alwaysExcluded are appended to every StableFingerprint exclude set
// per §4.4: timestamps must never affect a stable fingerprint.
var alwaysExcluded = []string{"created_at", "updated_at"}

// StableFingerprint hashes entity after removing excludeFields plus
// created_at/updated_at (always appended), returning "sha256:" + hex.
// It is distinct from ComputeHash and the two must not be conflated.
func StableFingerprint(entity interface{}, excludeFields []string) (string, error) {
	generic, err := toGenericMap(entity)
	if err != nil {
		return "", err
	}
	exclude := make(map[string]struct{}, len(excludeFields)+len(alwaysExcluded))
	for _, f := range excludeFields {
		exclude[f] = struct{}{}
	}
	for _, f := range alwaysExcluded {
		exclude[f] = struct{}{}
	}
	for f := range exclude {
		delete(generic, f)
	}
	canonical, err := JCS(generic)
	if err != nil {
		return "", err
	}
	return "sha256:" + HashBytes(canonical), nil
}

// ComputeHash hashes the full dump of entity, including timestamps.
// Unlike StableFingerprint, nothing is excluded.
func ComputeHash(entity interface{}) (string, error) {
	canonical, err := JCS(entity)
	if err != nil {
		return "", err
	}
	return "sha256:" + HashBytes(canonical), nil
}

func toGenericMap(entity interface{}) (map[string]interface{}, error) {
	if m, ok := entity.(map[string]interface{}); ok {
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	}
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: marshaling %T: %w", entity, err)
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var generic map[string]interface{}
	if err := decoder.Decode(&generic); err != nil {
		return nil, fmt.Errorf("canonicalize: entity %T does not decode to an object: %w", entity, err)
	}
	return generic, nil
}
