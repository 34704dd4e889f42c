package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/attractor/internal/attractor"
)

// HeadlessConfig drives a run without a clock: every tick uses the same dt.
type HeadlessConfig struct {
	Ticks       int
	Dt          time.Duration
	SampleEvery int
}

// Observer is called with the attractor after the initial state and after
// every SampleEvery-th tick.
type Observer func(tick uint64, elapsed time.Duration, a *attractor.Attractor)

func (c HeadlessConfig) validate() error {
	if c.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", c.Ticks)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %v", c.Dt)
	}
	if c.SampleEvery <= 0 {
		return fmt.Errorf("sample interval must be positive, got %d", c.SampleEvery)
	}
	return nil
}

// RunHeadless steps a at a fixed dt, honouring ctx between ticks.
func RunHeadless(ctx context.Context, a *attractor.Attractor, cfg HeadlessConfig, obs Observer) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	dt := float32(cfg.Dt.Seconds())
	if obs != nil {
		obs(a.Ticks(), 0, a)
	}
	for i := 1; i <= cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		a.Update(dt)
		if obs != nil && i%cfg.SampleEvery == 0 {
			obs(a.Ticks(), time.Duration(i)*cfg.Dt, a)
		}
	}
	return nil
}
