package hashtables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLinear_Layout(t *testing.T) {
	tt := NewSplitLinear[string, int](WithHashFunc[string](func(k string) uint64 {
		return uint64(len(k))
	}))

	tt.Insert("abc", 3)
	tt.Insert("xyz", 4) // collides with "abc"

	assert.Equal(t, slotMeta{hash: 3, state: Filled}, tt.meta[3])
	assert.Equal(t, keyValue[string, int]{key: "abc", value: 3}, tt.kvs[3])
	assert.Equal(t, slotMeta{hash: 3, state: Filled}, tt.meta[4])
	assert.Equal(t, keyValue[string, int]{key: "xyz", value: 4}, tt.kvs[4])

	require.True(t, tt.Remove("abc"))
	assert.Equal(t, slotMeta{state: Removed}, tt.meta[3])
	assert.Zero(t, tt.kvs[3])

	v := tt.Lookup("xyz")
	require.NotNil(t, v)
	assert.Same(t, &tt.kvs[4].value, v)
}

func TestSplitLinear_HashMismatchSkipsPayload(t *testing.T) {
	tt := NewSplitLinear[int, int](WithHashFunc[int](func(k int) uint64 {
		// Same home slot, different cached hashes.
		return uint64(k) << 4
	}))

	for i := range 5 {
		tt.Insert(i, i*i)
	}

	for i := range 5 {
		require.Equal(t, uint64(i)<<4, tt.meta[i].hash)
		v := tt.Lookup(i)
		require.NotNil(t, v)
		assert.Equal(t, i*i, *v)
	}
}
