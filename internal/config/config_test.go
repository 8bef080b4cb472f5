package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/pflag"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hashbench.yaml")
	qt.Assert(t, qt.IsNil(os.WriteFile(path, []byte(content), 0o644)))

	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	qt.Assert(t, qt.IsNil(c.Validate()))
	qt.Assert(t, qt.DeepEquals(c.NumKeys(), []int{1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000}))
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
max_keys: 500
steps: 5
payloads: ["8", 1K]
timings:
  destruct: false
`)

	c, err := Load(path)
	qt.Assert(t, qt.IsNil(err))

	want := Default()
	want.MaxKeys = 500
	want.Steps = 5
	want.Payloads = []string{"8", "1K"}
	want.Timings.Destruct = false
	qt.Assert(t, qt.CmpEquals(c, want, cmpopts.EquateEmpty()))
	qt.Assert(t, qt.DeepEquals(c.NumKeys(), []int{100, 200, 300, 400, 500}))
}

func TestLoadEmptyFile(t *testing.T) {
	c, err := Load(writeFile(t, ""))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(c, Default()))
}

func TestLoadUnknownField(t *testing.T) {
	_, err := Load(writeFile(t, "max_key: 5\n"))
	qt.Assert(t, qt.ErrorMatches(err, `(?s).*field max_key not found.*`))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{"zero keys", func(c *Config) { c.MaxKeys = 0 }, ErrInvalid},
		{"too many steps", func(c *Config) { c.MaxKeys, c.Steps = 5, 6 }, ErrInvalid},
		{"zero reps", func(c *Config) { c.Reps = 0 }, ErrInvalid},
		{"negative lookups", func(c *Config) { c.Lookups = -1 }, ErrInvalid},
		{"no payloads", func(c *Config) { c.Payloads = nil }, ErrInvalid},
		{"bad format", func(c *Config) { c.Format = "csv" }, ErrInvalid},
		{"bad payload", func(c *Config) { c.Payloads = []string{"8", "64"} }, ErrUnknownPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			qt.Assert(t, qt.ErrorIs(c.Validate(), tt.err))
		})
	}
}

func TestApplyFlags(t *testing.T) {
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(f)
	qt.Assert(t, qt.IsNil(f.Parse([]string{
		"--keys=2000", "--engines=OL,D1", "--timings=fill,remove", "-o", "-",
	})))

	c := Default()
	c.Reps = 3 // as if from a file; no flag overrides it
	qt.Assert(t, qt.IsNil(c.ApplyFlags(f)))

	qt.Assert(t, qt.Equals(c.MaxKeys, 2000))
	qt.Assert(t, qt.Equals(c.Reps, 3))
	qt.Assert(t, qt.DeepEquals(c.Engines, []string{"OL", "D1"}))
	qt.Assert(t, qt.Equals(c.Output, "-"))
	qt.Assert(t, qt.DeepEquals(c.Timings, Timings{Fill: true, Remove: true}))
	qt.Assert(t, qt.DeepEquals(c.Payloads, Default().Payloads))
}

func TestApplyFlagsUnknownTiming(t *testing.T) {
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(f)
	qt.Assert(t, qt.IsNil(f.Parse([]string{"--timings=fill,insert"})))

	c := Default()
	qt.Assert(t, qt.ErrorIs(c.ApplyFlags(f), ErrUnknownTiming))
}
