package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/driver"
	"github.com/san-kum/attractor/internal/gui"
	"github.com/san-kum/attractor/internal/viz"
)

type interactiveFunc func(cfg *config.Config, d *driver.Driver) error

type backend struct {
	run interactiveFunc
	// ownsTerminal backends discard logs unless --log-file is set.
	ownsTerminal bool
}

var (
	guiBackend = backend{run: runGUI}
	tuiBackend = backend{run: runTUI, ownsTerminal: true}
)

type interactiveFlags struct {
	sim     simFlags
	display displayFlags
}

func newInteractiveCmd(use, short string, b backend) (*cobra.Command, *interactiveFlags) {
	flags := &interactiveFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.sim.resolve(cmd)
			if err != nil {
				return err
			}
			flags.display.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			l := logger
			if b.ownsTerminal && logFile == "" {
				l = log.New(io.Discard)
			}
			d, err := newDriver(cfg, l)
			if err != nil {
				return err
			}
			return b.run(cfg, d)
		},
	}
	flags.sim.register(cmd)
	flags.display.register(cmd)
	return cmd, flags
}

func newDriver(cfg *config.Config, l *log.Logger) (*driver.Driver, error) {
	a, err := cfg.NewAttractor()
	if err != nil {
		return nil, err
	}
	r, err := cfg.Renderer()
	if err != nil {
		return nil, err
	}
	l.Debug("simulation ready",
		"population", a.Len(),
		"trail", a.TrailLength(),
		"scale", a.PhysicsScale(),
		"interval", cfg.RefreshInterval(),
	)
	return driver.New(a, r, driver.WithInterval(cfg.RefreshInterval()), driver.WithLogger(l)), nil
}

func runGUI(cfg *config.Config, d *driver.Driver) error {
	gui.Run(d, logger, gui.Options{Title: "attractor", FPS: cfg.Display.FPS})
	return nil
}

func runTUI(cfg *config.Config, d *driver.Driver) error {
	return viz.Run(d, cfg.Display.Theme, cfg.Display.FPS)
}
