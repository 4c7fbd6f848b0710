package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDottedPathWithWildcard(t *testing.T) {
	p, err := ParseDottedPath("incident.affected_users[*].email")
	require.NoError(t, err)
	require.Equal(t, []Segment{
		{Key: "incident"},
		{Key: "affected_users", Wildcard: true},
		{Key: "email"},
	}, p.Segments())
}

func TestParseDottedPathRejectsEmpty(t *testing.T) {
	_, err := ParseDottedPath("")
	require.Error(t, err)
}

func TestParseDottedPathRejectsEmptySegment(t *testing.T) {
	_, err := ParseDottedPath("a..b")
	require.Error(t, err)
}

func TestParseDottedPathRejectsEmptyWildcardKey(t *testing.T) {
	_, err := ParseDottedPath("[*]")
	require.Error(t, err)
}
