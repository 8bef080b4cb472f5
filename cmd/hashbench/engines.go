package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homier/hashtables/internal/bench"
)

func newEnginesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "list the engines and their short names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, e := range bench.Engines[uint32, uint32]() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %-14s %s\n", e.Short, e.Name, e.Description)
			}

			return nil
		},
	}
}
