// Command hashbench checks the hash table engines for correctness and times
// them against each other.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const (
	flagConfig  = "config"
	flagVerbose = "verbose"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hashbench",
		Short: "hashbench compares hash table implementations.",
		Long: `hashbench runs a conformance check and a timing suite over a set of hash
table engines: separate chaining with element pools, open addressing with
linear and quadratic probing, and data-oriented layouts, with Go's map as
the baseline.

Timings are written as tab-separated text or JSON, one section per
measurement with a column per payload size and engine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.PersistentFlags()
	f.StringP(flagConfig, "c", "", "YAML configuration file")
	f.BoolP(flagVerbose, "v", false, "log progress")

	cmd.AddCommand(
		newCheckCmd(),
		newRunCmd(),
		newEnginesCmd(),
	)

	return cmd
}

// Progress goes to stderr; debug level with --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool(flagVerbose); v {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// Main runs hashbench and returns the code for passing to os.Exit.
func Main() int {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(Main())
}
