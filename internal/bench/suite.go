package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/homier/hashtables/internal/config"
	"github.com/homier/hashtables/internal/report"
	"github.com/homier/hashtables/internal/workload"
)

type timingKind int

const (
	timeFill timingKind = iota
	timePresizedFill
	timeLookup
	timeFailedLookup
	timeRemove
	timeDestruct
)

// Progress is told about every row before it is measured.
type Progress func(section string, numKeys int)

// Suite runs the timings selected by Config over every element count,
// payload and engine.
type Suite struct {
	Config   config.Config
	Progress Progress
}

func (s *Suite) sections() []timingKind {
	t := s.Config.Timings

	var kinds []timingKind
	for kind, on := range []bool{t.Fill, t.PresizedFill, t.Lookup, t.FailedLookup, t.Remove, t.Destruct} {
		if on {
			kinds = append(kinds, timingKind(kind))
		}
	}

	return kinds
}

func (s *Suite) title(kind timingKind) string {
	switch kind {
	case timeFill:
		return "Fill time (ms)"
	case timePresizedFill:
		return "Presized fill time (ms)"
	case timeLookup:
		return fmt.Sprintf("Time for %s lookups (ms)", countLabel(s.Config.Lookups))
	case timeFailedLookup:
		return fmt.Sprintf("Time for %s failed lookups (ms)", countLabel(s.Config.Lookups))
	case timeRemove:
		return "Time to remove half the elements (ms)"
	default:
		return "Destruction time (ms)"
	}
}

// 100000 -> 100K
func countLabel(n int) string {
	if n >= 1000 && n%1000 == 0 {
		return fmt.Sprintf("%dK", n/1000)
	}

	return fmt.Sprint(n)
}

// Run measures every selected section and returns the report. It stops
// between rows once ctx is done.
func (s *Suite) Run(ctx context.Context) (*report.Report, error) {
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}

	engines, err := Select[uint32, uint32](s.Config.Engines)
	if err != nil {
		return nil, err
	}

	r := &report.Report{}
	shorts := make([]string, len(engines))
	for i, e := range engines {
		shorts[i] = e.Short
		r.Legend = append(r.Legend, report.LegendEntry{Short: e.Short, Description: e.Description})
	}

	labels := make([]string, len(s.Config.Payloads))
	for i, p := range s.Config.Payloads {
		labels[i] = p + " bytes"
	}

	for _, kind := range s.sections() {
		sec := report.Section{
			Name:     s.title(kind),
			Payloads: labels,
			Engines:  shorts,
		}

		for _, n := range s.Config.NumKeys() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			if s.Progress != nil {
				s.Progress(sec.Name, n)
			}

			keys := workload.ShuffledKeys(n, workload.TimingSeed)
			row := report.Row{NumKeys: n}
			for _, p := range s.Config.Payloads {
				millis, err := payloadRow(p)(kind, keys, s.Config.Engines, &s.Config)
				if err != nil {
					return nil, err
				}
				row.Millis = append(row.Millis, millis)
			}

			sec.Rows = append(sec.Rows, row)
		}

		r.Sections = append(r.Sections, sec)
	}

	return r, nil
}

type rowFunc func(kind timingKind, keys []uint32, shorts []string, c *config.Config) ([]float64, error)

// Payload names are checked by config.Validate.
func payloadRow(payload string) rowFunc {
	switch payload {
	case "32":
		return timeRow[workload.Payload32]
	case "128":
		return timeRow[workload.Payload128]
	case "1K":
		return timeRow[workload.Payload1K]
	case "4K":
		return timeRow[workload.Payload4K]
	default:
		return timeRow[uint32]
	}
}

func timeRow[V any](kind timingKind, keys []uint32, shorts []string, c *config.Config) ([]float64, error) {
	engines, err := Select[uint32, V](shorts)
	if err != nil {
		return nil, err
	}

	millis := make([]float64, len(engines))
	for i, e := range engines {
		var d time.Duration
		switch kind {
		case timeFill:
			d = Fill(e, keys, false, c.Reps)
		case timePresizedFill:
			d = Fill(e, keys, true, c.Reps)
		case timeLookup:
			d = LookupHit(e, keys, c.Lookups, c.Reps)
		case timeFailedLookup:
			d = LookupMiss(e, keys, c.Lookups, c.Reps)
		case timeRemove:
			d = RemoveHalf(e, keys, c.Reps)
		case timeDestruct:
			d = Destruct(e, keys, c.Reps)
		}

		millis[i] = float64(d) / float64(time.Millisecond)
	}

	return millis, nil
}
