package bench

import (
	"errors"
	"fmt"

	"github.com/homier/hashtables/internal/workload"
)

var (
	ErrLookupMissing = errors.New("failed to lookup previously-inserted key")
	ErrWrongValue    = errors.New("lookup returned wrong value")
	ErrRemoveMissing = errors.New("failed to remove previously-inserted key")
	ErrStillPresent  = errors.New("key still findable after being removed")
	ErrTooFewKeys    = errors.New("too few keys")
)

const checkRounds = 10

// ConformanceData returns the keys and values Check runs on: n unique keys
// shuffled with workload.TestSeed, and n random values.
func ConformanceData(n int) (keys, values []uint32) {
	keys = workload.ShuffledKeys(n, workload.TestSeed)
	values = workload.RandomValues(n, workload.NewXorShift(workload.TestSeed))

	return keys, values
}

// Check runs both conformance scenarios against a fresh table of engine e.
// keys must be unique.
func Check(e Engine[uint32, uint32], keys, values []uint32) error {
	if len(keys) < checkRounds {
		return fmt.Errorf("%w: need at least %d, got %d", ErrTooFewKeys, checkRounds, len(keys))
	}

	if err := checkInsertLookup(e, keys, values); err != nil {
		return fmt.Errorf("%s: insert and lookup: %w", e.Name, err)
	}

	if err := checkRemoveRounds(e, keys, values); err != nil {
		return fmt.Errorf("%s: remove and insert rounds: %w", e.Name, err)
	}

	return nil
}

func checkInsertLookup(e Engine[uint32, uint32], keys, values []uint32) error {
	t := e.New()
	for i, k := range keys {
		t.Insert(k, values[i])
	}

	for i, k := range keys {
		if err := expect(t.Lookup(k), k, values[i]); err != nil {
			return err
		}
	}

	return nil
}

// Inserts two rounds' worth of keys, then per round removes the oldest
// round and inserts a new one. Only the last two rounds survive.
func checkRemoveRounds(e Engine[uint32, uint32], keys, values []uint32) error {
	t := e.New()
	perRound := len(keys) / checkRounds

	for i := range 2 * perRound {
		t.Insert(keys[i], values[i])
	}

	for round := 2; round < checkRounds; round++ {
		for _, k := range keys[perRound*(round-2) : perRound*(round-1)] {
			if !t.Remove(k) {
				return fmt.Errorf("key %d: %w", k, ErrRemoveMissing)
			}
		}

		for j := perRound * round; j < perRound*(round+1); j++ {
			t.Insert(keys[j], values[j])
		}
	}

	kept := perRound * (checkRounds - 2)
	for _, k := range keys[:kept] {
		if t.Lookup(k) != nil {
			return fmt.Errorf("key %d: %w", k, ErrStillPresent)
		}
	}

	for i := kept; i < kept+2*perRound; i++ {
		if err := expect(t.Lookup(keys[i]), keys[i], values[i]); err != nil {
			return fmt.Errorf("after removes: %w", err)
		}
	}

	return nil
}

func expect(got *uint32, key, want uint32) error {
	if got == nil {
		return fmt.Errorf("key %d: %w", key, ErrLookupMissing)
	}

	if *got != want {
		return fmt.Errorf("key %d: got %d, want %d: %w", key, *got, want, ErrWrongValue)
	}

	return nil
}
