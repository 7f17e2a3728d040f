// Package sim drives a single test particle through a fixed number of steps,
// feeding metrics and observers and reporting horizon absorption.
package sim

import (
	"context"

	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/logging"
)

type Simulator struct {
	bh        gravity.BlackHole
	law       gravity.Law
	stepper   integrators.Stepper
	metrics   []Metric
	observers []Observer
	logger    *logging.Logger
}

func New(bh gravity.BlackHole, law gravity.Law, stepper integrators.Stepper) *Simulator {
	return &Simulator{
		bh:        bh,
		law:       law,
		stepper:   stepper,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logging.Discard(),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) SetLogger(l *logging.Logger) {
	if l != nil {
		s.logger = l
	}
}

func (s *Simulator) Body() gravity.BlackHole      { return s.bh }
func (s *Simulator) Law() gravity.Law             { return s.law }
func (s *Simulator) Stepper() integrators.Stepper { return s.stepper }

// Run integrates x0 for cfg.Steps steps. The caller's x0 is not modified.
// On cancellation or a non-finite state the partial result is returned with
// the error.
func (s *Simulator) Run(ctx context.Context, x0 integrators.State, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	every := cfg.RecordEvery
	if every < 1 {
		every = 1
	}

	result := &Result{
		States:       make([]integrators.State, 0, cfg.Steps/every+2),
		Times:        make([]float64, 0, cfg.Steps/every+2),
		Metrics:      make(map[string]float64),
		AbsorbedStep: -1,
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.logger.Debug(ctx, "run started",
		"law", s.law.Name(), "integrator", s.stepper.Name(),
		"dt", cfg.Dt, "steps", cfg.Steps, "r0", x0.Pos.Norm())

	x := x0
	t := 0.0
	s.notify(0, t, x)
	result.States = append(result.States, x)
	result.Times = append(result.Times, t)
	s.checkAbsorbed(ctx, result, 0, t, x)

	for i := 1; i <= cfg.Steps; i++ {
		if result.Absorbed && cfg.StopOnAbsorb {
			break
		}

		select {
		case <-ctx.Done():
			s.finish(result, x)
			return result, &SimulationError{Step: i, Time: t, State: x, Wrapped: ctx.Err()}
		default:
		}

		s.stepper.Step(&x, cfg.Dt, s.bh, s.law)
		t = float64(i) * cfg.Dt
		result.StepsTaken = i

		if cfg.ValidateState && !x.IsFinite() {
			s.finish(result, x)
			err := &SimulationError{Step: i, Time: t, State: x, Wrapped: ErrNonFinite}
			s.logger.Warn(ctx, "run aborted", "step", i, "error", err.Error())
			return result, err
		}

		s.notify(i, t, x)
		s.checkAbsorbed(ctx, result, i, t, x)

		if i%every == 0 || i == cfg.Steps || (result.AbsorbedStep == i && cfg.StopOnAbsorb) {
			result.States = append(result.States, x)
			result.Times = append(result.Times, t)
		}
	}

	s.finish(result, x)
	s.logger.Debug(ctx, "run finished", "steps", result.StepsTaken, "absorbed", result.Absorbed)
	return result, nil
}

func (s *Simulator) notify(step int, t float64, x integrators.State) {
	for _, m := range s.metrics {
		m.Observe(step, t, x)
	}
	for _, obs := range s.observers {
		obs.OnStep(step, t, x)
	}
}

func (s *Simulator) checkAbsorbed(ctx context.Context, result *Result, step int, t float64, x integrators.State) {
	if result.Absorbed || !gravity.Absorbed(x.Pos, s.bh) {
		return
	}
	result.Absorbed = true
	result.AbsorbedStep = step
	result.AbsorbedTime = t
	s.logger.Info(ctx, "particle absorbed", "step", step, "t", t, "r_over_rs", x.Pos.Norm()/s.bh.SchwarzschildRadius())
}

func (s *Simulator) finish(result *Result, x integrators.State) {
	result.Final = x
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
