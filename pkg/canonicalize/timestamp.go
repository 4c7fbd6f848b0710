package canonicalize

import "time"

// FormatTimestamp renders t as RFC 3339 UTC with a literal Z suffix,
// the timestamp format every serialized entity in this module uses.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000Z")
}
