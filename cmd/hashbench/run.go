package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/homier/hashtables/internal/bench"
	"github.com/homier/hashtables/internal/config"
	"github.com/homier/hashtables/internal/report"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "time the engines and write a report",
		Long: `run times filling, presized filling, successful and failed lookups,
removing half the elements and destruction, for growing element counts and
each payload size. Every number is the fastest of --reps repetitions, in
milliseconds.

Settings come from the defaults, then the --config file, then flags.`,
		Args: cobra.NoArgs,
		RunE: runRun,
	}

	config.AddFlags(cmd.Flags())

	return cmd
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	c := config.Default()

	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return c, err
	}

	if path != "" {
		if c, err = config.Load(path); err != nil {
			return c, err
		}
	}

	if err := c.ApplyFlags(cmd.Flags()); err != nil {
		return c, err
	}

	return c, c.Validate()
}

func runRun(cmd *cobra.Command, _ []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	suite := bench.Suite{
		Config: c,
		Progress: func(section string, n int) {
			logger.Debug("measuring", "section", section, "keys", n)
		},
	}

	start := time.Now()
	r, err := suite.Run(cmd.Context())
	if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), c, r); err != nil {
		return err
	}

	if c.Output != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", c.Output)
	}
	logger.Info("done", "elapsed", time.Since(start).Round(time.Millisecond))

	return nil
}

// Writes r to c.Output, or to stdout for "-". A failed Close is reported
// like a failed write.
func writeReport(stdout io.Writer, c config.Config, r *report.Report) (err error) {
	if c.Output == "-" {
		return encodeReport(stdout, c.Format, r)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return encodeReport(f, c.Format, r)
}

func encodeReport(w io.Writer, format string, r *report.Report) error {
	if format == config.FormatJSON {
		return report.WriteJSON(w, r)
	}

	return report.WriteText(w, r)
}
