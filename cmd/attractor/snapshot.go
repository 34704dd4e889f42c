package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/attractor/internal/analysis"
	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/driver"
	"github.com/san-kum/attractor/internal/export"
	"github.com/san-kum/attractor/internal/vecmath"
)

// writeSnapshot draws the current frame of a through the config's renderer
// into an SVG file.
func writeSnapshot(path string, cfg *config.Config, a *attractor.Attractor) error {
	r, err := cfg.Renderer()
	if err != nil {
		return err
	}
	svg := export.NewSVG(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	r.Draw(svg, a)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := svg.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newSnapshotCmd() *cobra.Command {
	var (
		sim      simFlags
		headless headlessFlags
		out      string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run headless and save the final frame as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sim.resolve(cmd)
			if err != nil {
				return err
			}
			pinSeed(cfg)
			hc := headless.config(cfg)
			hc.SampleEvery = max(hc.Ticks, 1)

			a, err := cfg.NewAttractor()
			if err != nil {
				return err
			}
			if err := driver.RunHeadless(context.Background(), a, hc, nil); err != nil {
				return err
			}
			if err := writeSnapshot(out, cfg, a); err != nil {
				return err
			}
			logger.Info("snapshot written", "path", out, "ticks", a.Ticks(), "seed", cfg.Simulation.Seed)
			return nil
		},
	}
	sim.register(cmd)
	headless.register(cmd, 500)
	cmd.Flags().StringVarP(&out, "out", "o", "attractor.svg", "output file")
	return cmd
}

func newBifurcateCmd() *cobra.Command {
	var (
		rhoMin, rhoMax float64
		steps          int
		transient      int
		record         int
		dt             float64
	)
	cmd := &cobra.Command{
		Use:   "bifurcate",
		Short: "plot z maxima against rho",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rhoMax <= rhoMin {
				return fmt.Errorf("--rho-max must exceed --rho-min")
			}
			logger.Debug("sweeping rho", "min", rhoMin, "max", rhoMax, "steps", steps)
			points := analysis.RhoSweep(attractor.DefaultParams(), 1, analysis.SweepConfig{
				RhoMin:    float32(rhoMin),
				RhoMax:    float32(rhoMax),
				Steps:     steps,
				Dt:        float32(dt),
				Transient: transient,
				Record:    record,
				Start:     vecmath.New(1, 1, 1),
			})
			fmt.Printf("z maxima for rho in [%.1f, %.1f]\n", rhoMin, rhoMax)
			fmt.Println(analysis.BifurcationToASCII(points, 80, 24))
			return nil
		},
	}
	cmd.Flags().Float64Var(&rhoMin, "rho-min", 10, "first rho")
	cmd.Flags().Float64Var(&rhoMax, "rho-max", 40, "last rho")
	cmd.Flags().IntVar(&steps, "steps", 80, "rho values")
	cmd.Flags().IntVar(&transient, "transient", 5000, "steps discarded per rho")
	cmd.Flags().IntVar(&record, "record", 5000, "steps recorded per rho")
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "simulated time per step")
	return cmd
}
