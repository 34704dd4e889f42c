// Package automation runs scripted sequences of headless simulations.
package automation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/attractor/internal/analysis"
	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/driver"
	"github.com/san-kum/attractor/internal/storage"
)

const (
	defaultTicks       = 5000
	defaultSampleEvery = 10
)

// Scenario defines a scripted simulation sequence
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Seed        uint64         `yaml:"seed"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one headless run. Simulation holds overrides that are
// decoded over the preset, so omitted keys keep the preset's values.
type ScenarioStep struct {
	Name        string        `yaml:"name"`
	Preset      string        `yaml:"preset"`
	Simulation  yaml.Node     `yaml:"simulation"`
	Ticks       int           `yaml:"ticks"`
	Dt          time.Duration `yaml:"dt"`
	SampleEvery int           `yaml:"sample_every"`
}

// Result is the outcome of one step.
type Result struct {
	Step    string
	RunID   string
	Summary analysis.Summary
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s: no steps", path)
	}
	return &scenario, nil
}

// Config resolves the step's simulation settings. seed is used when
// neither the preset nor the overrides pin one.
func (s ScenarioStep) Config(seed uint64) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		if cfg = config.GetPreset(s.Preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if !s.Simulation.IsZero() {
		if err := s.Simulation.Decode(&cfg.Simulation); err != nil {
			return nil, err
		}
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s ScenarioStep) headless(cfg *config.Config) driver.HeadlessConfig {
	hc := driver.HeadlessConfig{Ticks: s.Ticks, Dt: s.Dt, SampleEvery: s.SampleEvery}
	if hc.Ticks == 0 {
		hc.Ticks = defaultTicks
	}
	if hc.Dt == 0 {
		hc.Dt = cfg.RefreshInterval()
	}
	if hc.SampleEvery == 0 {
		hc.SampleEvery = defaultSampleEvery
	}
	return hc
}

// RunScenario executes all steps in order and saves each run to st. It
// stops at the first failing step and returns the results so far.
func RunScenario(ctx context.Context, scenario *Scenario, st *storage.Store, logger *log.Logger) ([]Result, error) {
	if err := st.Init(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(scenario.Seed, scenario.Seed))
	if scenario.Seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	results := make([]Result, 0, len(scenario.Steps))
	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step-%d", i+1)
		}
		logger.Info("running step", "step", name, "n", i+1, "of", len(scenario.Steps))

		cfg, err := step.Config(rng.Uint64() | 1)
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, name, err)
		}
		hc := step.headless(cfg)

		a, err := cfg.NewAttractor()
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, name, err)
		}

		trace := &storage.Trace{}
		if err := driver.RunHeadless(ctx, a, hc, trace.Capture); err != nil {
			return results, fmt.Errorf("step %d (%s) run: %w", i+1, name, err)
		}

		summary := analysis.Summarize(trace.Samples)
		runID, err := st.Save(storage.RunMetadata{
			Label:        scenario.Name + "/" + name,
			Seed:         cfg.Simulation.Seed,
			Population:   a.Len(),
			TrailLength:  a.TrailLength(),
			Params:       a.Params(),
			PhysicsScale: a.PhysicsScale(),
			Dt:           hc.Dt.Seconds(),
			Ticks:        hc.Ticks,
			SampleEvery:  hc.SampleEvery,
			Metrics:      summary.Metrics(),
		}, trace)
		if err != nil {
			return results, fmt.Errorf("step %d (%s) save: %w", i+1, name, err)
		}
		logger.Debug("step saved", "step", name, "run", runID)

		results = append(results, Result{Step: name, RunID: runID, Summary: summary})
	}
	return results, nil
}
