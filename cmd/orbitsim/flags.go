package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/san-kum/orbitsim/internal/config"
)

// orbitFlags are the initial-condition and stepping flags shared by run,
// compare and live.
type orbitFlags struct {
	configFile string
	preset     string

	law           string
	integrator    string
	mass          float64
	radius        float64
	speedFactor   float64
	speedLaw      string
	inclination   float64
	dt            float64
	dtFraction    float64
	steps         int
	recordEvery   int
	stopOnAbsorb  bool
	validateState bool
	seed          int64
}

func bindOrbitFlags(cmd *cobra.Command) *orbitFlags {
	f := &orbitFlags{}
	d := config.DefaultConfig()
	fs := cmd.Flags()
	fs.StringVar(&f.configFile, "config", "", "config file path (yaml)")
	fs.StringVar(&f.preset, "preset", "", "use preset configuration")
	fs.StringVar(&f.law, "law", d.Law, "acceleration law (newtonian, pw)")
	fs.StringVar(&f.integrator, "integrator", d.Integrator, "integrator (verlet, leapfrog, euler, rk4)")
	fs.Float64Var(&f.mass, "mass", d.MassSolar, "black hole mass in solar masses")
	fs.Float64Var(&f.radius, "radius", d.Orbit.RadiusRs, "initial radius in Schwarzschild radii")
	fs.Float64Var(&f.speedFactor, "speed-factor", d.Orbit.SpeedFactor, "initial speed as a multiple of the circular speed")
	fs.StringVar(&f.speedLaw, "speed-law", "", "law used for the circular speed (default: --law)")
	fs.Float64Var(&f.inclination, "inclination", d.Orbit.InclinationDeg, "tilt of the initial velocity out of the x-y plane, degrees")
	fs.Float64Var(&f.dt, "dt", 0, "timestep in seconds (overrides --dt-fraction)")
	fs.Float64Var(&f.dtFraction, "dt-fraction", d.Run.DtFraction, "timestep as a fraction of r0/v0")
	fs.IntVar(&f.steps, "steps", d.Run.Steps, "number of steps")
	fs.IntVar(&f.recordEvery, "record-every", d.Run.RecordEvery, "record every n-th state")
	fs.BoolVar(&f.stopOnAbsorb, "stop-on-absorb", d.Run.StopOnAbsorb, "stop once the particle is absorbed")
	fs.BoolVar(&f.validateState, "validate", d.Run.ValidateState, "fail on non-finite state")
	fs.Int64Var(&f.seed, "seed", 0, "seed recorded with the run")
	return f
}

// resolve builds the run config in layers: defaults, preset, keys present in
// the config file, then any flag set explicitly on the command line.
func (f *orbitFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if f.preset != "" {
		p := config.GetPreset(f.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", f.preset, config.ListPresets())
		}
		cfg = p
	}

	if f.configFile != "" {
		loaded, err := config.LoadOver(f.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("law") {
		cfg.Law = f.law
	}
	if fs.Changed("integrator") {
		cfg.Integrator = f.integrator
	}
	if fs.Changed("mass") {
		cfg.MassSolar = f.mass
	}
	if fs.Changed("radius") {
		cfg.Orbit.RadiusRs = f.radius
	}
	if fs.Changed("speed-factor") {
		cfg.Orbit.SpeedFactor = f.speedFactor
	}
	if fs.Changed("speed-law") {
		cfg.Orbit.SpeedLaw = f.speedLaw
	}
	if fs.Changed("inclination") {
		cfg.Orbit.InclinationDeg = f.inclination
	}
	if fs.Changed("dt") {
		cfg.Run.Dt = f.dt
	}
	if fs.Changed("dt-fraction") {
		cfg.Run.DtFraction = f.dtFraction
		if !fs.Changed("dt") {
			cfg.Run.Dt = 0
		}
	}
	if fs.Changed("steps") {
		cfg.Run.Steps = f.steps
	}
	if fs.Changed("record-every") {
		cfg.Run.RecordEvery = f.recordEvery
	}
	if fs.Changed("stop-on-absorb") {
		cfg.Run.StopOnAbsorb = f.stopOnAbsorb
	}
	if fs.Changed("validate") {
		cfg.Run.ValidateState = f.validateState
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func sortedMetricNames(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
