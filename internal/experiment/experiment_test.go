package experiment

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/logging"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	for _, name := range []string{"newtonian", "pw", "paczynski-wiita"} {
		if _, err := reg.GetLaw(name); err != nil {
			t.Errorf("GetLaw(%q): %v", name, err)
		}
	}
	if _, err := reg.GetLaw("mond"); err == nil {
		t.Error("expected error for unknown law")
	}

	for _, name := range reg.ListIntegrators() {
		st, err := reg.GetIntegrator(name)
		if err != nil {
			t.Fatalf("GetIntegrator(%q): %v", name, err)
		}
		if st.Name() != name {
			t.Errorf("integrator %q reports name %q", name, st.Name())
		}
	}
	if _, err := reg.GetIntegrator("rk45"); err == nil {
		t.Error("expected error for unknown integrator")
	}

	if got := reg.ListLaws(); len(got) != 2 || got[0] != "newtonian" || got[1] != "pw" {
		t.Errorf("unexpected law list %v", got)
	}
}

func TestExperimentReferenceScenario(t *testing.T) {
	exp := New(config.DefaultConfig())
	if err := exp.Setup(NewRegistry(), logging.Discard()); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.StepsTaken != 100 {
		t.Errorf("expected 100 steps, got %d", result.StepsTaken)
	}
	for _, name := range []string{"radius_drift", "speed_drift"} {
		if v := result.Metrics[name]; v > 0.01 {
			t.Errorf("%s = %v, want < 1%%", name, v)
		}
	}
	if result.Metrics["absorbed_step"] != -1 {
		t.Errorf("expected no absorption, got step %v", result.Metrics["absorbed_step"])
	}
	if math.Abs(result.Metrics["min_radius_rs"]-20) > 0.2 {
		t.Errorf("expected periapsis ~20 r_s, got %v", result.Metrics["min_radius_rs"])
	}
}

func TestExperimentPlungePreset(t *testing.T) {
	exp := New(config.GetPreset("plunge"))
	if err := exp.Setup(NewRegistry(), logging.Discard()); err != nil {
		t.Fatal(err)
	}
	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !result.Absorbed {
		t.Error("expected the sub-ISCO orbit to plunge")
	}
	if result.StepsTaken != result.AbsorbedStep {
		t.Errorf("expected stop at absorption step %d, ran %d", result.AbsorbedStep, result.StepsTaken)
	}
}

func TestExperimentNotSetup(t *testing.T) {
	if _, err := New(config.DefaultConfig()).Run(context.Background()); err == nil {
		t.Error("expected error running without setup")
	}
}

func TestExperimentInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MassSolar = -3
	if err := New(cfg).Setup(NewRegistry(), logging.Discard()); err == nil {
		t.Error("expected validation error")
	}
}
