// Package config holds the benchmark configuration. Values come from the
// defaults, then an optional YAML file, then command line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalid        = errors.New("invalid config")
	ErrUnknownPayload = errors.New("unknown payload")
	ErrUnknownTiming  = errors.New("unknown timing")
)

// Payloads are the known entry sizes, smallest first.
var Payloads = []string{"8", "32", "128", "1K", "4K"}

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	MaxKeys  int      `yaml:"max_keys"`
	Steps    int      `yaml:"steps"`
	Reps     int      `yaml:"reps"`
	Lookups  int      `yaml:"lookups"`
	Payloads []string `yaml:"payloads"`
	// Engine short names; empty means all of them.
	Engines []string `yaml:"engines"`
	Timings Timings  `yaml:"timings"`
	Format  string   `yaml:"format"`
	// Report file, "-" for stdout.
	Output string `yaml:"output"`
}

// Timings switches individual timing sections on or off.
type Timings struct {
	Fill         bool `yaml:"fill"`
	PresizedFill bool `yaml:"presized_fill"`
	Lookup       bool `yaml:"lookup"`
	FailedLookup bool `yaml:"failed_lookup"`
	Remove       bool `yaml:"remove"`
	Destruct     bool `yaml:"destruct"`
}

// Names of the timings as accepted by --timings.
var timingNames = []string{"fill", "presized-fill", "lookup", "failed-lookup", "remove", "destruct"}

func (t *Timings) fields() []*bool {
	return []*bool{&t.Fill, &t.PresizedFill, &t.Lookup, &t.FailedLookup, &t.Remove, &t.Destruct}
}

// Default returns the stock run: ten steps up to 10000 keys, five
// repetitions each, small and medium payloads, every timing.
func Default() Config {
	return Config{
		MaxKeys:  10000,
		Steps:    10,
		Reps:     5,
		Lookups:  100000,
		Payloads: []string{"8", "32", "128"},
		Timings: Timings{
			Fill:         true,
			PresizedFill: true,
			Lookup:       true,
			FailedLookup: true,
			Remove:       true,
			Destruct:     true,
		},
		Format: FormatText,
		Output: "results.txt",
	}
}

// Load reads the YAML file at path over the defaults. Unknown fields are
// rejected.
func Load(path string) (Config, error) {
	c := Default()

	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// NumKeys returns the element counts to time: every step up to MaxKeys.
func (c *Config) NumKeys() []int {
	step := c.MaxKeys / c.Steps

	var counts []int
	for n := step; n <= c.MaxKeys; n += step {
		counts = append(counts, n)
	}

	return counts
}

func (c *Config) Validate() error {
	switch {
	case c.MaxKeys <= 0:
		return fmt.Errorf("%w: max_keys must be positive, got %d", ErrInvalid, c.MaxKeys)
	case c.Steps <= 0 || c.Steps > c.MaxKeys:
		return fmt.Errorf("%w: steps must be in [1, %d], got %d", ErrInvalid, c.MaxKeys, c.Steps)
	case c.Reps <= 0:
		return fmt.Errorf("%w: reps must be positive, got %d", ErrInvalid, c.Reps)
	case c.Lookups <= 0:
		return fmt.Errorf("%w: lookups must be positive, got %d", ErrInvalid, c.Lookups)
	case len(c.Payloads) == 0:
		return fmt.Errorf("%w: no payloads", ErrInvalid)
	case c.Format != FormatText && c.Format != FormatJSON:
		return fmt.Errorf("%w: format must be %s or %s, got %q", ErrInvalid, FormatText, FormatJSON, c.Format)
	}

	for _, p := range c.Payloads {
		if !slices.Contains(Payloads, p) {
			return fmt.Errorf("%q: %w", p, ErrUnknownPayload)
		}
	}

	return nil
}

// Flag names.
const (
	flagKeys     = "keys"
	flagSteps    = "steps"
	flagReps     = "reps"
	flagLookups  = "lookups"
	flagPayloads = "payloads"
	flagEngines  = "engines"
	flagTimings  = "timings"
	flagFormat   = "format"
	flagOut      = "out"
)

// AddFlags registers the flags ApplyFlags reads. Their defaults are the
// built-in ones.
func AddFlags(f *pflag.FlagSet) {
	d := Default()

	f.Int(flagKeys, d.MaxKeys, "largest element count to time")
	f.Int(flagSteps, d.Steps, "number of element counts, evenly spaced up to --keys")
	f.Int(flagReps, d.Reps, "repetitions per timing; the minimum is reported")
	f.Int(flagLookups, d.Lookups, "lookups per lookup timing")
	f.StringSlice(flagPayloads, d.Payloads, "entry sizes to time (8|32|128|1K|4K)")
	f.StringSlice(flagEngines, nil, "engine short names to time (default all)")
	f.StringSlice(flagTimings, timingNames, "timings to run")
	f.String(flagFormat, d.Format, "report format (text|json)")
	f.StringP(flagOut, "o", d.Output, "report file, or - for stdout")
}

// ApplyFlags copies every flag set on the command line into c.
func (c *Config) ApplyFlags(f *pflag.FlagSet) error {
	var err error
	get := func(name string, apply func() error) {
		if err == nil && f.Changed(name) {
			err = apply()
		}
	}

	get(flagKeys, func() (e error) { c.MaxKeys, e = f.GetInt(flagKeys); return })
	get(flagSteps, func() (e error) { c.Steps, e = f.GetInt(flagSteps); return })
	get(flagReps, func() (e error) { c.Reps, e = f.GetInt(flagReps); return })
	get(flagLookups, func() (e error) { c.Lookups, e = f.GetInt(flagLookups); return })
	get(flagPayloads, func() (e error) { c.Payloads, e = f.GetStringSlice(flagPayloads); return })
	get(flagEngines, func() (e error) { c.Engines, e = f.GetStringSlice(flagEngines); return })
	get(flagFormat, func() (e error) { c.Format, e = f.GetString(flagFormat); return })
	get(flagOut, func() (e error) { c.Output, e = f.GetString(flagOut); return })
	get(flagTimings, func() error {
		names, err := f.GetStringSlice(flagTimings)
		if err != nil {
			return err
		}

		return c.Timings.enable(names)
	})

	return err
}

// enable switches on exactly the named timings.
func (t *Timings) enable(names []string) error {
	fields := t.fields()
	for _, p := range fields {
		*p = false
	}

	for _, name := range names {
		i := slices.Index(timingNames, name)
		if i < 0 {
			return fmt.Errorf("%q: %w", name, ErrUnknownTiming)
		}
		*fields[i] = true
	}

	return nil
}
