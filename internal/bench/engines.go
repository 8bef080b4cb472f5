// Package bench drives the hash table engines: a registry in report order,
// the conformance driver and the timing harness.
package bench

import (
	"errors"
	"fmt"

	"github.com/homier/hashtables"
)

var ErrUnknownEngine = errors.New("unknown engine")

// Engine is a named constructor for one table implementation.
type Engine[K comparable, V any] struct {
	Name        string
	Short       string
	Description string
	New         func(opts ...hashtables.Option[K]) hashtables.Table[K, V]
}

// Engines returns every engine in report column order.
func Engines[K comparable, V any]() []Engine[K, V] {
	return []Engine[K, V]{
		{
			Name: "Builtin", Short: "UM",
			Description: "Go map, the baseline",
			New:         func(opts ...hashtables.Option[K]) hashtables.Table[K, V] { return hashtables.NewBuiltin[K, V](opts...) },
		},
		{
			Name: "Chained", Short: "Ch",
			Description: "separate chaining with an element pool and free-list",
			New:         func(opts ...hashtables.Option[K]) hashtables.Table[K, V] { return hashtables.NewChained[K, V](opts...) },
		},
		{
			Name: "InlineChained", Short: "Ch1",
			Description: "separate chaining with the first entry of each bucket stored inline",
			New:         func(opts ...hashtables.Option[K]) hashtables.Table[K, V] { return hashtables.NewInlineChained[K, V](opts...) },
		},
		{
			Name: "Linear", Short: "OL",
			Description: "open addressing with linear probing",
			New:         func(opts ...hashtables.Option[K]) hashtables.Table[K, V] { return hashtables.NewLinear[K, V](opts...) },
		},
		{
			Name: "Quadratic", Short: "OQ",
			Description: "open addressing with quadratic probing",
			New:         func(opts ...hashtables.Option[K]) hashtables.Table[K, V] { return hashtables.NewQuadratic[K, V](opts...) },
		},
		{
			Name: "SplitLinear", Short: "DO1",
			Description: `"data-oriented": OA, linear, with hashes stored separately from keys and values`,
			New:         func(opts ...hashtables.Option[K]) hashtables.Table[K, V] { return hashtables.NewSplitLinear[K, V](opts...) },
		},
		{
			Name: "ColumnLinear", Short: "DO2",
			Description: `"data-oriented": OA, linear, with hashes, keys, and values all separate`,
			New:         func(opts ...hashtables.Option[K]) hashtables.Table[K, V] { return hashtables.NewColumnLinear[K, V](opts...) },
		},
		{
			Name: "IndexChained", Short: "D0",
			Description: "separate chaining with index links and a pool grown in place",
			New:         func(opts ...hashtables.Option[K]) hashtables.Table[K, V] { return hashtables.NewIndexChained[K, V](opts...) },
		},
		{
			Name: "StateLinear", Short: "D1",
			Description: "open addressing, linear, with values apart from keys and no cached hash",
			New:         func(opts ...hashtables.Option[K]) hashtables.Table[K, V] { return hashtables.NewStateLinear[K, V](opts...) },
		},
	}
}

// ShortNames lists the short names of all engines in report order.
func ShortNames() []string {
	engines := Engines[int, int]()
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = e.Short
	}

	return names
}

// Select returns the engines whose short names are listed, in report order.
// An empty list selects everything.
func Select[K comparable, V any](shorts []string) ([]Engine[K, V], error) {
	all := Engines[K, V]()
	if len(shorts) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(shorts))
	for _, s := range shorts {
		want[s] = true
	}

	selected := make([]Engine[K, V], 0, len(shorts))
	for _, e := range all {
		if want[e.Short] {
			selected = append(selected, e)
			delete(want, e.Short)
		}
	}

	for _, s := range shorts {
		if want[s] {
			return nil, fmt.Errorf("%q: %w", s, ErrUnknownEngine)
		}
	}

	return selected, nil
}
