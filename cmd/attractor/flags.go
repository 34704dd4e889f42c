package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/attractor/internal/config"
)

// simFlags are the simulation overrides shared by every command that builds
// an attractor.
type simFlags struct {
	population   int
	trail        int
	sigma        float64
	rho          float64
	beta         float64
	physicsScale float64
	refresh      float64
	seed         uint64
	hidePaths    bool
	preset       string
	configFile   string
}

func (f *simFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.population, "population", config.DefaultPopulation, "number of points")
	fs.IntVar(&f.trail, "trail", config.DefaultTrailLength, "points kept per trail")
	fs.Float64Var(&f.sigma, "sigma", config.DefaultSigma, "Lorenz sigma")
	fs.Float64Var(&f.rho, "rho", config.DefaultRho, "Lorenz rho")
	fs.Float64Var(&f.beta, "beta", config.DefaultBeta, "Lorenz beta")
	fs.Float64Var(&f.physicsScale, "physics-scale", config.DefaultPhysicsScale, "simulated seconds per wall-clock second")
	fs.Float64Var(&f.refresh, "refresh", config.DefaultRefreshHz, "physics updates per second")
	fs.Uint64Var(&f.seed, "seed", 0, "random seed for initial points (0 = random)")
	fs.BoolVar(&f.hidePaths, "hide-paths", false, "draw only the current point of each trail")
	fs.StringVar(&f.preset, "preset", "", "start from a preset ("+strings.Join(config.ListPresets(), ", ")+")")
	fs.StringVar(&f.configFile, "config", "", "config file path (yaml)")
}

// resolve builds the effective config: defaults, then the preset, then the
// config file, then flags the user set explicitly.
func (f *simFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.preset != "" {
		cfg = config.GetPreset(f.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", f.preset, config.ListPresets())
		}
	}

	if f.configFile != "" {
		loaded, err := config.LoadOver(f.configFile, cfg)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	s := &cfg.Simulation
	if fs.Changed("population") {
		s.Population = f.population
	}
	if fs.Changed("trail") {
		s.TrailLength = f.trail
	}
	if fs.Changed("sigma") {
		s.Sigma = f.sigma
	}
	if fs.Changed("rho") {
		s.Rho = f.rho
	}
	if fs.Changed("beta") {
		s.Beta = f.beta
	}
	if fs.Changed("physics-scale") {
		s.PhysicsScale = f.physicsScale
	}
	if fs.Changed("refresh") {
		s.RefreshHz = f.refresh
	}
	if fs.Changed("seed") {
		s.Seed = f.seed
	}
	if fs.Changed("hide-paths") {
		s.ShowPath = !f.hidePaths
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// displayFlags apply to the interactive backends only.
type displayFlags struct {
	fps   int
	theme string
}

func (f *displayFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.fps, "fps", config.DefaultFPS, "frames drawn per second")
	cmd.Flags().StringVar(&f.theme, "theme", config.DefaultTheme, "terminal colour theme")
}

func (f *displayFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("fps") {
		cfg.Display.FPS = f.fps
	}
	if cmd.Flags().Changed("theme") {
		cfg.Display.Theme = f.theme
	}
}
