package lattice

import "encoding/json"

// unmarshalStringSlice decodes a JSON array of strings, reused by
// Set.UnmarshalJSON. Kept separate so the encoding/json import is
// isolated to this one file.
func unmarshalStringSlice(data []byte, out *[]string) error {
	return json.Unmarshal(data, out)
}
