package optim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/vec"
)

// ScanPoint is the outcome of one launch speed.
type ScanPoint struct {
	SpeedFactor  float64
	Absorbed     bool
	AbsorbedStep int
	MinRadiusRs  float64
}

// SpeedScan launches particles tangentially from one radius at a grid of
// speeds, as multiples of the circular speed of SpeedLaw, and records
// which are captured.
type SpeedScan struct {
	RadiusRs float64
	SpeedLaw gravity.Law
	Factors  []float64
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// Run integrates every launch concurrently. StopOnAbsorb is forced on so
// captured particles do not continue past the singularity.
func (g *SpeedScan) Run(ctx context.Context, s *sim.Simulator, cfg sim.Config) ([]ScanPoint, error) {
	if !(g.RadiusRs > 1) {
		return nil, fmt.Errorf("scan radius must exceed r_s, got %v", g.RadiusRs)
	}
	if len(g.Factors) == 0 {
		return nil, fmt.Errorf("no speed factors")
	}

	bh := s.Body()
	speedLaw := g.SpeedLaw
	if speedLaw == nil {
		speedLaw = s.Law()
	}
	r0 := g.RadiusRs * bh.SchwarzschildRadius()
	vc := speedLaw.CircularSpeed(bh, r0)

	x0s := make([]integrators.State, len(g.Factors))
	for i, f := range g.Factors {
		x0s[i] = integrators.NewState(vec.New(r0, 0, 0), vec.New(0, f*vc, 0))
	}

	cfg.StopOnAbsorb = true
	ens := sim.NewEnsemble(s, func() []sim.Metric {
		return []sim.Metric{metrics.NewPeriapsis(bh)}
	})
	results, err := ens.Run(ctx, x0s, cfg)
	if err != nil {
		return nil, err
	}

	points := make([]ScanPoint, len(results))
	for i, r := range results {
		points[i] = ScanPoint{
			SpeedFactor:  g.Factors[i],
			Absorbed:     r.Absorbed,
			AbsorbedStep: r.AbsorbedStep,
			MinRadiusRs:  r.Metrics["min_radius_rs"],
		}
	}
	return points, nil
}

// CaptureThreshold returns the smallest scanned speed factor that escapes
// capture, provided every slower launch was captured. ok is false when the
// scan does not bracket the threshold.
func CaptureThreshold(points []ScanPoint) (factor float64, ok bool) {
	best := math.Inf(1)
	for _, p := range points {
		if !p.Absorbed && p.SpeedFactor < best {
			best = p.SpeedFactor
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	sawCapture := false
	for _, p := range points {
		if p.SpeedFactor < best {
			if !p.Absorbed {
				return 0, false
			}
			sawCapture = true
		}
	}
	if !sawCapture {
		return 0, false
	}
	return best, true
}
