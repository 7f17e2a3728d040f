package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/logging"
	"github.com/san-kum/orbitsim/internal/sim"
)

// Experiment binds a validated config to a simulator.
type Experiment struct {
	cfg       *config.Config
	simulator *sim.Simulator
	bh        gravity.BlackHole
	x0        integrators.State
	dt        float64
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup validates the config, resolves law and integrator, and attaches the
// default metrics.
func (e *Experiment) Setup(reg *Registry, logger *logging.Logger) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	law, err := reg.GetLaw(e.cfg.Law)
	if err != nil {
		return err
	}
	integ, err := reg.GetIntegrator(e.cfg.Integrator)
	if err != nil {
		return err
	}

	x0, err := e.cfg.InitialState()
	if err != nil {
		return err
	}

	e.bh = e.cfg.Body()
	e.x0 = x0
	e.dt = e.cfg.TimeStep(x0)
	e.simulator = sim.New(e.bh, law, integ)
	e.simulator.SetLogger(logger)
	for _, m := range reg.DefaultMetrics(law, e.bh) {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, e.x0, e.cfg.SimConfig(e.dt))
}

// GetSimulator returns the underlying simulator for adding observers.
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

func (e *Experiment) Config() *config.Config          { return e.cfg }
func (e *Experiment) Body() gravity.BlackHole         { return e.bh }
func (e *Experiment) InitialState() integrators.State { return e.x0 }
func (e *Experiment) Dt() float64                     { return e.dt }
