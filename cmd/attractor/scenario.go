package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/attractor/internal/automation"
	"github.com/san-kum/attractor/internal/storage"
)

func newScenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every step of a yaml scenario and save the runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := automation.LoadScenario(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			results, err := automation.RunScenario(ctx, sc, storage.New(dataDir), logger)
			if len(results) > 0 {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "STEP\tRUN\tSAMPLES\tMEAN Z\tSTD Z")
				for _, r := range results {
					fmt.Fprintf(w, "%s\t%s\t%d\t%.3f\t%.3f\n", r.Step, r.RunID, r.Summary.Samples, r.Summary.Z.Mean, r.Summary.Z.StdDev)
				}
				w.Flush()
			}
			return err
		},
	}
}
