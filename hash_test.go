package hashtables

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeDefaultHash(t *testing.T) {
	v := "foo"
	s := maphash.MakeSeed()

	h1 := MakeDefaultHashFunc[string](s)(v)
	h2 := maphash.Comparable(s, v)

	require.Equal(t, h2, h1)
}

func TestBuildHashFunc(t *testing.T) {
	t.Run("Shared seed", func(t *testing.T) {
		seed := maphash.MakeSeed()
		a := buildHashFunc([]Option[int]{WithSeed[int](seed)})
		b := buildHashFunc([]Option[int]{WithSeed[int](seed)})

		for k := range 100 {
			require.Equal(t, a(k), b(k))
		}
	})

	t.Run("Custom hash wins over seed", func(t *testing.T) {
		h := buildHashFunc([]Option[int]{
			WithHashFunc[int](func(k int) uint64 { return uint64(k * 31) }),
			WithSeed[int](maphash.MakeSeed()),
		})

		assert.Equal(t, uint64(62), h(2))
	})

	t.Run("Default", func(t *testing.T) {
		h := buildHashFunc[string](nil)
		require.NotNil(t, h)

		assert.Equal(t, h("foo"), h("foo"))
	})
}

func TestTable_WithHashFunc(t *testing.T) {
	customHash := func(k int) uint64 {
		return uint64(k * 31)
	}

	for _, e := range testEngines[int, int]() {
		t.Run(e.name, func(t *testing.T) {
			tt := e.new(WithHashFunc[int](customHash))

			tt.Insert(1, 100)
			v := tt.Lookup(1)
			require.NotNil(t, v)
			assert.Equal(t, 100, *v)
		})
	}
}
