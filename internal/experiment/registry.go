package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/sim"
)

type Registry struct {
	laws        map[string]func() gravity.Law
	integrators map[string]func() integrators.Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		laws:        make(map[string]func() gravity.Law),
		integrators: make(map[string]func() integrators.Stepper),
	}

	r.laws[gravity.NameNewtonian] = func() gravity.Law { return gravity.Newtonian{} }
	r.laws[gravity.NamePaczynskiWiita] = func() gravity.Law { return gravity.PaczynskiWiita{} }

	r.integrators["verlet"] = func() integrators.Stepper { return integrators.NewVelocityVerlet() }
	r.integrators["leapfrog"] = func() integrators.Stepper { return integrators.NewLeapfrog() }
	r.integrators["euler"] = func() integrators.Stepper { return integrators.NewSymplecticEuler() }
	r.integrators["rk4"] = func() integrators.Stepper { return integrators.NewRK4() }

	return r
}

// GetLaw accepts the canonical names plus the aliases gravity.LawByName knows.
func (r *Registry) GetLaw(name string) (gravity.Law, error) {
	if fn, ok := r.laws[name]; ok {
		return fn(), nil
	}
	law, err := gravity.LawByName(name)
	if err != nil {
		return nil, err
	}
	return r.laws[law.Name()](), nil
}

func (r *Registry) GetIntegrator(name string) (integrators.Stepper, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListLaws() []string {
	return sortedKeys(r.laws)
}

func (r *Registry) ListIntegrators() []string {
	return sortedKeys(r.integrators)
}

func sortedKeys[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns a fresh diagnostic set for a run under law.
func (r *Registry) DefaultMetrics(law gravity.Law, bh gravity.BlackHole) []sim.Metric {
	return []sim.Metric{
		metrics.NewRadiusDrift(),
		metrics.NewSpeedDrift(),
		metrics.NewEnergyDrift(law, bh),
		metrics.NewAngularMomentumDrift(),
		metrics.NewPeriapsis(bh),
		metrics.NewAbsorption(bh),
	}
}
