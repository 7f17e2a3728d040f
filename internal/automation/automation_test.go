package automation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/logging"
)

const scenarioYAML = `name: laws
description: same orbit under both laws
steps:
  - name: newton
    preset: circular
  - name: pw
    preset: circular
    law: pw
    steps: 50
  - law: newtonian
    integrator: rk4
    speed_factor: 0
    radius_rs: 5
    stop_on_absorb: true
`

func TestLoadAndRunScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "laws" || len(sc.Steps) != 3 {
		t.Fatalf("unexpected scenario %+v", sc)
	}

	results, err := RunScenario(context.Background(), sc, experiment.NewRegistry(), logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if results[0].Name != "newton" || results[0].Result.StepsTaken != 100 {
		t.Errorf("unexpected first step: %s, %d steps", results[0].Name, results[0].Result.StepsTaken)
	}
	if results[1].Config.Law != "pw" || results[1].Result.StepsTaken != 50 {
		t.Errorf("overrides not applied: law %s, %d steps", results[1].Config.Law, results[1].Result.StepsTaken)
	}
	if results[2].Name != "step-3" {
		t.Errorf("expected generated name, got %s", results[2].Name)
	}
	if results[2].Config.Orbit.SpeedFactor != 0 || !results[2].Config.Run.StopOnAbsorb {
		t.Errorf("explicit zero speed factor not applied: %+v", results[2].Config.Orbit)
	}
	if config.Presets["circular"].Law != "newtonian" {
		t.Error("scenario mutated the preset table")
	}
}

func TestScenarioUnknownPreset(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Preset: "nope"}}}
	if _, err := RunScenario(context.Background(), sc, experiment.NewRegistry(), logging.Discard()); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestMonteCarloDeterministic(t *testing.T) {
	base := config.DefaultConfig()
	base.Run.Steps = 500
	mc := &MonteCarloConfig{Base: base, Perturbation: 0.05, NumTrials: 8, Seed: 42}

	a, err := RunMonteCarlo(context.Background(), mc, experiment.NewRegistry(), logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	b, err := RunMonteCarlo(context.Background(), mc, experiment.NewRegistry(), logging.Discard())
	if err != nil {
		t.Fatal(err)
	}

	distinct := false
	for i := range a {
		if a[i].SpeedFactor != b[i].SpeedFactor || a[i].FinalState != b[i].FinalState {
			t.Errorf("trial %d differs between runs with the same seed", i)
		}
		if a[i].SpeedFactor < 0.95 || a[i].SpeedFactor > 1.05 {
			t.Errorf("trial %d speed factor %f outside perturbation band", i, a[i].SpeedFactor)
		}
		if a[i].SpeedFactor != a[0].SpeedFactor {
			distinct = true
		}
	}
	if !distinct {
		t.Error("expected perturbed speed factors")
	}

	captured, survived := MonteCarloStats(a)
	if captured != 0 || survived != 8 {
		t.Errorf("near-circular orbits at 20 rs should survive, got %d captured", captured)
	}
}

func TestMonteCarloRadialCapture(t *testing.T) {
	base := config.DefaultConfig()
	base.Law = "pw"
	base.Orbit.RadiusRs = 10
	base.Orbit.SpeedFactor = 0
	base.Run.DtFraction = 0.001
	base.Run.Steps = 2000

	results, err := RunMonteCarlo(context.Background(), &MonteCarloConfig{Base: base, NumTrials: 3, Seed: 1}, experiment.NewRegistry(), logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if captured, _ := MonteCarloStats(results); captured != 3 {
		t.Errorf("radial drops should all be captured, got %d", captured)
	}
}

func TestMonteCarloRejectsZeroTrials(t *testing.T) {
	if _, err := RunMonteCarlo(context.Background(), &MonteCarloConfig{Base: config.DefaultConfig()}, experiment.NewRegistry(), logging.Discard()); err == nil {
		t.Error("expected error")
	}
}
