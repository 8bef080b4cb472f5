package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homier/hashtables/internal/bench"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "check every engine for correctness",
		Long: `check inserts shuffled unique keys into every engine and looks them all up,
then runs ten rounds of removals and insertions and verifies which keys
remain. An engine that fails reports the step and the key.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	cmd.Flags().Int("keys", 1000, "number of keys")

	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	n, err := cmd.Flags().GetInt("keys")
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	keys, values := bench.ConformanceData(n)

	var errs []error
	for _, e := range bench.Engines[uint32, uint32]() {
		logger.Debug("checking", "engine", e.Name, "keys", n)

		if err := bench.Check(e, keys, values); err != nil {
			errs = append(errs, err)
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: all tests passed\n", e.Name)
	}

	return errors.Join(errs...)
}
