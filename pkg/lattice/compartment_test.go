package lattice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetIsSubsetOf(t *testing.T) {
	subject := NewSet(NOFORN, HUMINT)
	resource := NewSet(NOFORN)
	require.True(t, resource.IsSubsetOf(subject))
	require.False(t, subject.IsSubsetOf(resource))
}

func TestSetMissingSortedByCode(t *testing.T) {
	subject := NewSet(NOFORN)
	resource := NewSet(NOFORN, HUMINT, SIGINT)
	missing := subject.Missing(resource)
	require.Equal(t, []Compartment{HUMINT, SIGINT}, missing)
}

func TestSetUnion(t *testing.T) {
	a := NewSet(NOFORN)
	b := NewSet(HUMINT)
	union := a.Union(b)
	require.True(t, union.Contains(NOFORN))
	require.True(t, union.Contains(HUMINT))
}

func TestSetSortedCodes(t *testing.T) {
	s := NewSet(SIGINT, HUMINT, NOFORN)
	require.Equal(t, []string{"HUMINT", "NOFORN", "SIGINT"}, s.SortedCodes())
}

func TestParseCompartmentRejectsUnknown(t *testing.T) {
	_, err := ParseCompartment("NOT_A_TAG")
	require.Error(t, err)
}

func TestSetJSONRoundTrip(t *testing.T) {
	s := NewSet(HUMINT, NOFORN)
	data, err := s.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `["HUMINT","NOFORN"]`, string(data))

	var parsed Set
	require.NoError(t, parsed.UnmarshalJSON(data))
	require.Equal(t, s, parsed)
}
