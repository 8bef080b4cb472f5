package bench

import (
	"time"

	"github.com/homier/hashtables"
	"github.com/homier/hashtables/internal/workload"
)

// Timer accumulates the time spent between Start and Stop calls.
type Timer struct {
	start   time.Time
	elapsed time.Duration
}

func (t *Timer) Start() {
	t.start = time.Now()
}

func (t *Timer) Stop() {
	t.elapsed += time.Since(t.start)
}

func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Keeps lookup results observable.
var sink int

// Runs measure reps times and keeps the fastest run.
func fastest(reps int, measure func(t *Timer)) time.Duration {
	best := time.Duration(-1)
	for range reps {
		var t Timer
		measure(&t)

		if best < 0 || t.Elapsed() < best {
			best = t.Elapsed()
		}
	}

	return best
}

// Presized table holding keys with zero values, built outside the timer.
func filled[V any](e Engine[uint32, V], keys []uint32) hashtables.Table[uint32, V] {
	t := e.New()
	t.Reserve(len(keys))

	var zero V
	for _, k := range keys {
		t.Insert(k, zero)
	}

	return t
}

// Fill times inserting keys into an empty table, optionally reserving room
// for all of them first.
func Fill[V any](e Engine[uint32, V], keys []uint32, presize bool, reps int) time.Duration {
	var zero V

	return fastest(reps, func(t *Timer) {
		tbl := e.New()

		t.Start()
		if presize {
			tbl.Reserve(len(keys))
		}
		for _, k := range keys {
			tbl.Insert(k, zero)
		}
		t.Stop()
	})
}

// LookupHit times lookups of keys drawn from the filled range.
func LookupHit[V any](e Engine[uint32, V], keys []uint32, lookups, reps int) time.Duration {
	probes := workload.SampleKeys(lookups, len(keys), 0, workload.LookupSeed)
	return timeLookups(e, keys, probes, reps)
}

// LookupMiss times lookups of keys none of which is in the table.
func LookupMiss[V any](e Engine[uint32, V], keys []uint32, lookups, reps int) time.Duration {
	probes := workload.SampleKeys(lookups, len(keys), len(keys), workload.LookupSeed)
	return timeLookups(e, keys, probes, reps)
}

func timeLookups[V any](e Engine[uint32, V], keys, probes []uint32, reps int) time.Duration {
	return fastest(reps, func(t *Timer) {
		tbl := filled(e, keys)
		found := 0

		t.Start()
		for _, k := range probes {
			if tbl.Lookup(k) != nil {
				found++
			}
		}
		t.Stop()

		sink += found
	})
}

// RemoveHalf times len(keys)/2 removals of random keys from the filled
// range. Keys may repeat, so some removals miss.
func RemoveHalf[V any](e Engine[uint32, V], keys []uint32, reps int) time.Duration {
	victims := workload.SampleKeys(len(keys)/2, len(keys), 0, workload.RemoveSeed)

	return fastest(reps, func(t *Timer) {
		tbl := filled(e, keys)

		t.Start()
		for _, k := range victims {
			tbl.Remove(k)
		}
		t.Stop()
	})
}

// Destruct times releasing a filled table.
func Destruct[V any](e Engine[uint32, V], keys []uint32, reps int) time.Duration {
	return fastest(reps, func(t *Timer) {
		tbl := filled(e, keys)

		t.Start()
		tbl.Reset()
		t.Stop()
	})
}
