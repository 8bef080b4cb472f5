package hashtables

import (
	"strconv"
	"testing"

	"github.com/homier/hashtables/internal/workload"
)

var sizes = []int{
	// 1 << 10,
	1 << 16,
	1 << 20,
}

type benchEngine struct {
	name string
	new  func() Table[uint32, uint32]
}

func benchEngines() []benchEngine {
	engines := []benchEngine{
		{"Builtin", func() Table[uint32, uint32] { return NewBuiltin[uint32, uint32]() }},
	}

	for _, e := range testEngines[uint32, uint32]() {
		engines = append(engines, benchEngine{e.name, func() Table[uint32, uint32] { return e.new() }})
	}

	return engines
}

func BenchmarkTable_LookupHit(b *testing.B) {
	benchEachEngine(b, benchmarkLookupHit)
}

func BenchmarkTable_LookupMiss(b *testing.B) {
	benchEachEngine(b, benchmarkLookupMiss)
}

func BenchmarkTable_Insert(b *testing.B) {
	benchEachEngine(b, benchmarkInsert)
}

func BenchmarkTable_Remove(b *testing.B) {
	benchEachEngine(b, benchmarkRemove)
}

func benchmarkLookupHit(b *testing.B, e benchEngine, size int) {
	keys := workload.ShuffledKeys(size, workload.TimingSeed)
	t := filled(e, keys)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Lookup(keys[i%len(keys)])
	}
}

func benchmarkLookupMiss(b *testing.B, e benchEngine, size int) {
	keys := workload.ShuffledKeys(size, workload.TimingSeed)
	misses := workload.MissingKeys(size)
	t := filled(e, keys)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Lookup(misses[i%len(misses)])
	}
}

func benchmarkInsert(b *testing.B, e benchEngine, size int) {
	keys := workload.ShuffledKeys(size, workload.TimingSeed)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := e.new()
		b.StartTimer()

		for _, k := range keys {
			t.Insert(k, k)
		}
	}
}

func benchmarkRemove(b *testing.B, e benchEngine, size int) {
	keys := workload.ShuffledKeys(size, workload.TimingSeed)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := filled(e, keys)
		b.StartTimer()

		for _, k := range keys[:len(keys)/2] {
			_ = t.Remove(k)
		}
	}
}

func filled(e benchEngine, keys []uint32) Table[uint32, uint32] {
	t := e.new()
	for _, k := range keys {
		t.Insert(k, k)
	}

	return t
}

func benchEachEngine(b *testing.B, benchFunc func(b *testing.B, e benchEngine, size int)) {
	for _, e := range benchEngines() {
		b.Run("variant="+e.name, func(b *testing.B) {
			for _, size := range sizes {
				b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
					benchFunc(b, e, size)
				})
			}
		})
	}
}
