// Package canonicalize implements the single canonicalization rule
// every hash or signature in this module relies on: JSON with keys
// sorted at every nesting level, no whitespace, and UTF-8 encoding,
// following RFC 8785 (JSON Canonicalization Scheme) in spirit.
package canonicalize

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
)

// JCS canonicalizes an arbitrary JSON-shaped value (as produced by
// encoding/json's default decoding: map[string]interface{},
// []interface{}, string, bool, nil, and json.Number/float64) into its
// canonical byte form.
func JCS(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := marshalRecursive(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JCSString is a convenience wrapper returning the canonical form as
// a string.
func JCSString(v interface{}) (string, error) {
	b, err := JCS(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func marshalRecursive(buf *bytes.Buffer, v interface{}) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
		return nil
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case json.Number:
		buf.WriteString(val.String())
		return nil
	case float64:
		return marshalScalar(buf, val)
	case string:
		return marshalScalar(buf, val)
	case []interface{}:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshalRecursive(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshalScalar(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := marshalRecursive(buf, val[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return marshalViaJSON(buf, v)
	}
}

// marshalScalar encodes a string or float64 leaf using encoding/json
// with HTML-escaping disabled, matching JCS's ASCII-safe-but-literal
// escape rules rather than Go's default HTML-safe escaping.
func marshalScalar(buf *bytes.Buffer, v interface{}) error {
	var enc bytes.Buffer
	encoder := json.NewEncoder(&enc)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("canonicalize: encoding scalar: %w", err)
	}
	buf.Write(bytes.TrimRight(enc.Bytes(), "\n"))
	return nil
}

// marshalViaJSON handles any value not already in JSON-decoded shape
// (e.g. a struct) by round-tripping it through encoding/json into the
// generic shape first, then canonicalizing that.
func marshalViaJSON(buf *bytes.Buffer, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("canonicalize: marshaling %T: %w", v, err)
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var generic interface{}
	if err := decoder.Decode(&generic); err != nil {
		return fmt.Errorf("canonicalize: re-decoding %T: %w", v, err)
	}
	return marshalRecursive(buf, generic)
}

// CanonicalHash returns the sha256 digest of the JCS canonical form.
func CanonicalHash(v interface{}) ([32]byte, error) {
	canonical, err := JCS(v)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(canonical), nil
}

// HashBytes returns the lowercase hex sha256 digest of b.
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%x", sum)
}
