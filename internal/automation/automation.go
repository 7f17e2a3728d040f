package automation

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/logging"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/vec"
)

// Scenario defines a scripted sequence of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep starts from a preset (or the defaults) and overrides any
// field that is set.
type ScenarioStep struct {
	Name         string   `yaml:"name"`
	Preset       string   `yaml:"preset"`
	Law          string   `yaml:"law"`
	Integrator   string   `yaml:"integrator"`
	MassSolar    float64  `yaml:"mass_solar"`
	RadiusRs     float64  `yaml:"radius_rs"`
	SpeedFactor  *float64 `yaml:"speed_factor"`
	SpeedLaw     string   `yaml:"speed_law"`
	DtFraction   float64  `yaml:"dt_fraction"`
	Steps        int      `yaml:"steps"`
	RecordEvery  int      `yaml:"record_every"`
	StopOnAbsorb *bool    `yaml:"stop_on_absorb"`
	Save         bool     `yaml:"save"`
}

// StepResult pairs a scenario step with the config it resolved to.
type StepResult struct {
	Name   string
	Config *config.Config
	Result *sim.Result
	Dt     float64
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Config resolves the step against its preset.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		if cfg = config.GetPreset(s.Preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}

	if s.Law != "" {
		cfg.Law = s.Law
	}
	if s.Integrator != "" {
		cfg.Integrator = s.Integrator
	}
	if s.MassSolar != 0 {
		cfg.MassSolar = s.MassSolar
	}
	if s.RadiusRs != 0 {
		cfg.Orbit.RadiusRs = s.RadiusRs
	}
	if s.SpeedFactor != nil {
		cfg.Orbit.SpeedFactor = *s.SpeedFactor
	}
	if s.SpeedLaw != "" {
		cfg.Orbit.SpeedLaw = s.SpeedLaw
	}
	if s.DtFraction != 0 {
		cfg.Run.DtFraction = s.DtFraction
		cfg.Run.Dt = 0
	}
	if s.Steps != 0 {
		cfg.Run.Steps = s.Steps
	}
	if s.RecordEvery != 0 {
		cfg.Run.RecordEvery = s.RecordEvery
	}
	if s.StopOnAbsorb != nil {
		cfg.Run.StopOnAbsorb = *s.StopOnAbsorb
	}
	return cfg, nil
}

// RunScenario executes all steps in a scenario
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, logger *logging.Logger) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step-%d", i+1)
		}
		logger.Info(ctx, "scenario step", "scenario", scenario.Name, "step", i+1, "of", len(scenario.Steps), "name", name)

		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		exp := experiment.New(cfg)
		if err := exp.Setup(registry, logger); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Name: name, Config: cfg, Result: result, Dt: exp.Dt()})
	}

	return results, nil
}

// MonteCarloConfig perturbs the launch speed of Base by a uniform relative
// amount in [-Perturbation, Perturbation].
type MonteCarloConfig struct {
	Base         *config.Config
	Perturbation float64
	NumTrials    int
	Seed         int64
}

// MonteCarloResult is one perturbed launch.
type MonteCarloResult struct {
	TrialID     int
	SpeedFactor float64
	InitState   integrators.State
	FinalState  integrators.State
	Absorbed    bool
}

// RunMonteCarlo integrates all trials concurrently with the base config's
// law, integrator and step. A zero seed uses the base config's seed, then
// the clock.
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig, registry *experiment.Registry, logger *logging.Logger) ([]MonteCarloResult, error) {
	if cfg.NumTrials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", cfg.NumTrials)
	}

	exp := experiment.New(cfg.Base)
	if err := exp.Setup(registry, logger); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = cfg.Base.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	base := exp.InitialState()
	v0 := base.Vel.Norm()
	dir := base.Vel.Normalized()
	if v0 == 0 {
		dir = vec.New(0, 1, 0)
	}
	circ := 0.0
	if cfg.Base.Orbit.SpeedFactor != 0 {
		circ = v0 / cfg.Base.Orbit.SpeedFactor
	}

	factors := make([]float64, cfg.NumTrials)
	x0s := make([]integrators.State, cfg.NumTrials)
	for trial := range x0s {
		f := cfg.Base.Orbit.SpeedFactor * (1 + (rng.Float64()-0.5)*2*cfg.Perturbation)
		factors[trial] = f
		x0s[trial] = integrators.NewState(base.Pos, dir.Mul(f*circ))
	}

	simCfg := cfg.Base.SimConfig(exp.Dt())
	simCfg.StopOnAbsorb = true
	simCfg.RecordEvery = max(cfg.Base.Run.Steps, 1)

	ens := sim.NewEnsemble(exp.GetSimulator(), nil)
	runs, err := ens.Run(ctx, x0s, simCfg)
	if err != nil {
		return nil, err
	}

	results := make([]MonteCarloResult, len(runs))
	for i, r := range runs {
		results[i] = MonteCarloResult{
			TrialID:     i,
			SpeedFactor: factors[i],
			InitState:   x0s[i],
			FinalState:  r.Final,
			Absorbed:    r.Absorbed,
		}
	}
	logger.Info(ctx, "monte carlo finished", "trials", len(results), "seed", seed)
	return results, nil
}

// MonteCarloStats counts captured and surviving trials.
func MonteCarloStats(results []MonteCarloResult) (captured int, survived int) {
	for _, r := range results {
		if r.Absorbed {
			captured++
		} else {
			survived++
		}
	}
	return
}
