package canonicalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJCSSortsKeysAtEveryLevel(t *testing.T) {
	v := map[string]interface{}{
		"b": map[string]interface{}{"z": 1, "a": 2},
		"a": 1,
	}
	out, err := JCSString(v)
	require.NoError(t, err)
	require.Equal(t, `{"a":1,"b":{"a":2,"z":1}}`, out)
}

func TestJCSIsOrderIndependent(t *testing.T) {
	v1 := map[string]interface{}{"x": 1, "y": 2}
	v2 := map[string]interface{}{"y": 2, "x": 1}
	out1, err := JCSString(v1)
	require.NoError(t, err)
	out2, err := JCSString(v2)
	require.NoError(t, err)
	require.Equal(t, out1, out2)
}

func TestJCSArraysPreserveOrder(t *testing.T) {
	out, err := JCSString([]interface{}{3, 1, 2})
	require.NoError(t, err)
	require.Equal(t, `[3,1,2]`, out)
}

func TestJCSDisablesHTMLEscaping(t *testing.T) {
	out, err := JCSString(map[string]interface{}{"url": "a&b<c>"})
	require.NoError(t, err)
	require.Equal(t, `{"url":"a&b<c>"}`, out)
}
