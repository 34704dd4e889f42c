package config

import "sort"

// Presets capture the reference variants: the dense 100-point swarm, the
// sparse 25-point one, and the unscaled integration that runs at raw
// wall-clock speed.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"sparse": func(c *Config) {
		c.Simulation.Population = 25
	},
	"raw": func(c *Config) {
		c.Simulation.PhysicsScale = 1
	},
	"long": func(c *Config) {
		c.Simulation.Population = 40
		c.Simulation.TrailLength = 200
		c.Display.BallRadius = 1.5
	},
	"calm": func(c *Config) {
		// below the chaotic threshold every point spirals into a fixed point
		c.Simulation.Rho = 14
	},
	"dots": func(c *Config) {
		c.Simulation.ShowPath = false
		c.Display.BallRadius = 2
	},
}

// GetPreset returns a fresh config with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
