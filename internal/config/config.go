package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/render"
)

const (
	DefaultPopulation   = 100
	DefaultTrailLength  = attractor.DefaultTrailLength
	DefaultSigma        = 10.0
	DefaultRho          = 28.0
	DefaultBeta         = 8.0 / 3.0
	DefaultPhysicsScale = attractor.DefaultPhysicsScale
	DefaultRefreshHz    = 240.0
	DefaultScreenSize   = 800
	DefaultScaleFactor  = 8.0
	DefaultBallRadius   = 3.0
	DefaultBackground   = "#000000"
	DefaultTrailColor   = "#ffffff"
	DefaultTheme        = "cyberpunk"
	DefaultFPS          = 60
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Display    DisplayConfig    `yaml:"display"`
}

type SimulationConfig struct {
	Population   int     `yaml:"population"`
	TrailLength  int     `yaml:"trail_length"`
	Sigma        float64 `yaml:"sigma"`
	Rho          float64 `yaml:"rho"`
	Beta         float64 `yaml:"beta"`
	PhysicsScale float64 `yaml:"physics_scale"`
	RefreshHz    float64 `yaml:"refresh_hz"`
	Seed         uint64  `yaml:"seed"`
	ShowPath     bool    `yaml:"show_path"`
}

type DisplayConfig struct {
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	ScaleFactor  float64 `yaml:"scale_factor"`
	BallRadius   float64 `yaml:"ball_radius"`
	Background   string  `yaml:"background"`
	TrailColor   string  `yaml:"trail_color"`
	Theme        string  `yaml:"theme"`
	FPS          int     `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Population:   DefaultPopulation,
			TrailLength:  DefaultTrailLength,
			Sigma:        DefaultSigma,
			Rho:          DefaultRho,
			Beta:         DefaultBeta,
			PhysicsScale: DefaultPhysicsScale,
			RefreshHz:    DefaultRefreshHz,
			ShowPath:     true,
		},
		Display: DisplayConfig{
			ScreenWidth:  DefaultScreenSize,
			ScreenHeight: DefaultScreenSize,
			ScaleFactor:  DefaultScaleFactor,
			BallRadius:   DefaultBallRadius,
			Background:   DefaultBackground,
			TrailColor:   DefaultTrailColor,
			Theme:        DefaultTheme,
			FPS:          DefaultFPS,
		},
	}
}

// Load reads a yaml file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a yaml file over base, which is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	s, d := c.Simulation, c.Display

	if s.Population < 1 {
		errs = append(errs, fmt.Errorf("population must be at least 1, got %d", s.Population))
	}
	if s.TrailLength < 1 {
		errs = append(errs, fmt.Errorf("trail_length must be at least 1, got %d", s.TrailLength))
	}
	if s.PhysicsScale <= 0 {
		errs = append(errs, fmt.Errorf("physics_scale must be positive, got %g", s.PhysicsScale))
	}
	if s.RefreshHz <= 0 {
		errs = append(errs, fmt.Errorf("refresh_hz must be positive, got %g", s.RefreshHz))
	}
	if d.ScreenWidth < 1 || d.ScreenHeight < 1 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", d.ScreenWidth, d.ScreenHeight))
	}
	if d.ScaleFactor <= 0 {
		errs = append(errs, fmt.Errorf("scale_factor must be positive, got %g", d.ScaleFactor))
	}
	if d.BallRadius <= 0 {
		errs = append(errs, fmt.Errorf("ball_radius must be positive, got %g", d.BallRadius))
	}
	if d.FPS < 1 {
		errs = append(errs, fmt.Errorf("fps must be at least 1, got %d", d.FPS))
	}
	if _, err := ParseColor(d.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := ParseColor(d.TrailColor); err != nil {
		errs = append(errs, fmt.Errorf("trail_color: %w", err))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// RefreshInterval is the fixed-timestep gate threshold.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.Simulation.RefreshHz)
}

func (c *Config) Params() attractor.Params {
	return attractor.Params{
		Sigma: float32(c.Simulation.Sigma),
		Rho:   float32(c.Simulation.Rho),
		Beta:  float32(c.Simulation.Beta),
	}
}

// AttractorOptions translates the simulation section; a zero seed leaves
// seeding random.
func (c *Config) AttractorOptions() []attractor.Option {
	opts := []attractor.Option{
		attractor.WithTrailLength(c.Simulation.TrailLength),
		attractor.WithPhysicsScale(float32(c.Simulation.PhysicsScale)),
		attractor.WithShowPath(c.Simulation.ShowPath),
	}
	if c.Simulation.Seed != 0 {
		opts = append(opts, attractor.WithSeed(c.Simulation.Seed))
	}
	return opts
}

// NewAttractor builds the population described by the simulation section.
func (c *Config) NewAttractor() (*attractor.Attractor, error) {
	return attractor.New(c.Simulation.Population, c.Params(), c.AttractorOptions()...)
}

func (c *Config) Renderer() (render.Renderer, error) {
	bg, err := ParseColor(c.Display.Background)
	if err != nil {
		return render.Renderer{}, err
	}
	trail, err := ParseColor(c.Display.TrailColor)
	if err != nil {
		return render.Renderer{}, err
	}
	return render.Renderer{
		Width:      float32(c.Display.ScreenWidth),
		Height:     float32(c.Display.ScreenHeight),
		Scale:      float32(c.Display.ScaleFactor),
		Radius:     float32(c.Display.BallRadius),
		Trail:      trail,
		Background: bg,
	}, nil
}

// ParseColor accepts #rgb or #rrggbb and returns an opaque colour.
func ParseColor(hex string) (color.RGBA, error) {
	// colorful.Hex scans with Sscanf, which tolerates short or trailing fields.
	if (len(hex) != 4 && len(hex) != 7) || hex[0] != '#' ||
		strings.Trim(hex[1:], "0123456789abcdefABCDEF") != "" {
		return color.RGBA{}, fmt.Errorf("bad colour %q: want #rgb or #rrggbb", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
