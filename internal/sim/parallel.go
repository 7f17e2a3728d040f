package sim

import (
	"context"
	"sync"

	"github.com/san-kum/orbitsim/internal/integrators"
)

// Ensemble integrates independent particles around the same body
// concurrently, one goroutine per particle.
type Ensemble struct {
	base      *Simulator
	metricsFn func() []Metric
}

// NewEnsemble copies body, law and stepper from s. metricsFn, if non-nil,
// supplies a fresh metric set for each particle.
func NewEnsemble(s *Simulator, metricsFn func() []Metric) *Ensemble {
	return &Ensemble{base: s, metricsFn: metricsFn}
}

// Run returns one result per initial state, in input order. The first error
// encountered is returned alongside whatever results completed.
func (e *Ensemble) Run(ctx context.Context, x0s []integrators.State, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(x0s))
	errs := make([]error, len(x0s))

	var wg sync.WaitGroup
	for i := range x0s {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			s := New(e.base.bh, e.base.law, e.base.stepper)
			s.SetLogger(e.base.logger)
			if e.metricsFn != nil {
				for _, m := range e.metricsFn() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, x0s[idx], cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
