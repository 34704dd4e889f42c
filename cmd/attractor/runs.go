package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/attractor/internal/analysis"
	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/export"
	"github.com/san-kum/attractor/internal/storage"
	"github.com/san-kum/attractor/internal/vecmath"
)

var axisNames = [3]string{"x", "y", "z"}

func printSummary(s analysis.Summary) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "AXIS\tMEAN\tSTD\tMIN\tMAX")
	for i, a := range []analysis.AxisSummary{s.X, s.Y, s.Z} {
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\t%.3f\n", axisNames[i], a.Mean, a.StdDev, a.Min, a.Max)
	}
	return w.Flush()
}

// loadRun returns a run's metadata and the samples of one trajectory.
func loadRun(runID string, trajectory int) (*storage.RunMetadata, []storage.Sample, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return nil, nil, err
	}
	series := trace.Series(trajectory)
	if len(series) == 0 {
		return nil, nil, fmt.Errorf("run %s has no samples for trajectory %d", runID, trajectory)
	}
	return meta, series, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := storage.New(dataDir).List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no runs found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLABEL\tTIME\tPOINTS\tTICKS\tDT\tSCALE\tRHO\tSEED")
			for _, run := range runs {
				label := run.Label
				if label == "" {
					label = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.4fs\t%.2f\t%.2f\t%d\n",
					run.ID,
					label,
					run.Timestamp.Format("2006-01-02 15:04:05"),
					run.Population,
					run.Ticks,
					run.Dt,
					run.PhysicsScale,
					run.Params.Rho,
					run.Seed,
				)
			}
			return w.Flush()
		},
	}
}

func newPlotCmd() *cobra.Command {
	var trajectory int
	cmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot x, y and z of one trajectory over time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, series, err := loadRun(args[0], trajectory)
			if err != nil {
				return err
			}

			fmt.Printf("run: %s\n", meta.ID)
			fmt.Printf("trajectory: %d  samples: %d\n\n", trajectory, len(series))
			for axis, name := range axisNames {
				graph := asciigraph.Plot(storage.Axis(series, axis),
					asciigraph.Height(10),
					asciigraph.Width(80),
					asciigraph.Caption(name+" vs time"),
				)
				fmt.Println(graph)
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&trajectory, "trajectory", 0, "trajectory index")
	return cmd
}

func newPhaseCmd() *cobra.Command {
	var (
		trajectory   int
		xAxis, yAxis int
		section      float64
	)
	cmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase portrait and Poincaré section of one trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if xAxis < 0 || xAxis > 2 || yAxis < 0 || yAxis > 2 {
				return fmt.Errorf("axes must be 0 (x), 1 (y) or 2 (z)")
			}
			meta, series, err := loadRun(args[0], trajectory)
			if err != nil {
				return err
			}

			fmt.Printf("%s vs %s\n", axisNames[yAxis], axisNames[xAxis])
			fmt.Println(analysis.PhasePortraitToASCII(analysis.PhasePortrait(series, xAxis, yAxis), 80, 30))

			threshold := section
			if !cmd.Flags().Changed("section") {
				threshold = float64(meta.Params.Rho) - 1
			}
			fmt.Printf("poincaré section at z = %.2f (x vs y)\n", threshold)
			fmt.Println(analysis.PoincareSectionToASCII(analysis.PoincareSectionOf(series, threshold), 60, 20))
			return nil
		},
	}
	cmd.Flags().IntVar(&trajectory, "trajectory", 0, "trajectory index")
	cmd.Flags().IntVar(&xAxis, "x-axis", 0, "axis for the horizontal direction")
	cmd.Flags().IntVar(&yAxis, "y-axis", 2, "axis for the vertical direction")
	cmd.Flags().Float64Var(&section, "section", 0, "z plane of the Poincaré section (default rho - 1)")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var (
		trajectory int
		lyapSteps  int
	)
	cmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "statistics, spectrum and Lyapunov estimate of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, series, err := loadRun(args[0], trajectory)
			if err != nil {
				return err
			}

			fmt.Printf("analysis: %s (trajectory %d)\n\n", meta.ID, trajectory)
			if err := printSummary(analysis.Summarize(series)); err != nil {
				return err
			}
			fmt.Println()

			// frequencies are per unit of simulated time
			step := meta.Dt * float64(meta.SampleEvery) * float64(meta.PhysicsScale)
			if step <= 0 {
				return fmt.Errorf("run %s has no usable sample interval", meta.ID)
			}
			rate := 1 / step

			z := storage.Axis(series, 2)
			ps := analysis.PowerSpectrum(z)
			if len(ps) > 8 {
				fmt.Println(asciigraph.Plot(ps[1:len(ps)/4+1],
					asciigraph.Height(12),
					asciigraph.Width(80),
					asciigraph.Caption("power spectrum (z)"),
				))
				fmt.Println()
			}
			for axis, name := range axisNames {
				freq, _ := analysis.DominantFrequency(storage.Axis(series, axis), rate)
				fmt.Printf("dominant frequency %s: %.4f", name, freq)
				if freq > 0 {
					fmt.Printf("  (period %.3f)", 1/freq)
				}
				fmt.Println()
			}

			a, err := attractor.New(1, meta.Params, attractor.WithPhysicsScale(meta.PhysicsScale))
			if err != nil {
				return err
			}
			lambda := analysis.LyapunovExponent(a, series[0].Position, float32(meta.Dt), lyapSteps, 1e-3)
			fmt.Printf("\nlargest lyapunov exponent: %.4f", lambda)
			if lambda > 0 {
				fmt.Print("  (chaotic)")
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().IntVar(&trajectory, "trajectory", 0, "trajectory index")
	cmd.Flags().IntVar(&lyapSteps, "lyapunov-steps", 20000, "steps for the Lyapunov estimate")
	return cmd
}

func newExportJSONCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run and its samples as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			if out == "" {
				return st.ExportJSON(os.Stdout, args[0])
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := st.ExportJSON(f, args[0]); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			logger.Info("exported", "run", args[0], "path", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newExportSVGCmd() *cobra.Command {
	var (
		out    string
		stroke string
		size   int
	)
	cmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw every sampled trajectory of a run in the x-z plane",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trace, err := storage.New(dataDir).LoadTrace(args[0])
			if err != nil {
				return err
			}

			series := make([][]vecmath.Vector3, trace.Trajectories())
			for _, s := range trace.Samples {
				series[s.Trajectory] = append(series[s.Trajectory], s.Position)
			}
			if err := os.WriteFile(out, []byte(export.PathsToSVG(series, size, size, stroke)), 0644); err != nil {
				return err
			}
			logger.Info("exported", "run", args[0], "path", out, "trajectories", len(series))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "trace.svg", "output file")
	cmd.Flags().StringVar(&stroke, "stroke", "#00ff88", "path colour")
	cmd.Flags().IntVar(&size, "size", 800, "image width and height")
	return cmd
}
