package storage

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/vec"
)

func testResult() *sim.Result {
	return &sim.Result{
		States: []integrators.State{
			integrators.NewState(vec.New(1.5e6, 0, 0), vec.New(0, 3.1e7, 0)),
			integrators.NewState(vec.New(1.4999e6, 3.1e5, 0), vec.New(-6.2e5, 3.09e7, 1e-3)),
		},
		Times:        []float64{0.0, 0.01},
		StepsTaken:   1,
		AbsorbedStep: -1,
		Metrics: map[string]float64{
			"radius_drift": 1.5e-5,
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	defer st.Close()

	result := testResult()
	runID, err := st.Save(RunMetadata{Law: "pw", Integrator: "verlet", MassSolar: 10, RadiusRs: 20, Dt: 0.01, Steps: 1}, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "pw_") {
		t.Errorf("unexpected run id %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Law != "pw" || meta.MassSolar != 10 {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.AbsorbedStep != -1 || meta.Absorbed {
		t.Error("absorption fields not carried from result")
	}
	if meta.Metrics["radius_drift"] != 1.5e-5 {
		t.Errorf("expected radius_drift 1.5e-5, got %v", meta.Metrics["radius_drift"])
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}
	if len(states) != 2 || len(times) != 2 {
		t.Fatalf("expected 2 states, got %d/%d", len(states), len(times))
	}
	for i := range states {
		if states[i] != result.States[i] {
			t.Errorf("state %d: got %v, want %v", i, states[i], result.States[i])
		}
		if times[i] != result.Times[i] {
			t.Errorf("time %d: got %v, want %v", i, times[i], result.Times[i])
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	defer st.Close()

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	base := time.Now()
	for i, law := range []string{"newtonian", "pw"} {
		meta := RunMetadata{Law: law, Integrator: "verlet", Timestamp: base.Add(time.Duration(i) * time.Second)}
		if _, err := st.Save(meta, testResult()); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Law != "pw" {
		t.Errorf("expected newest run first, got %s", runs[0].Law)
	}
}

func TestStoreListWithoutCatalog(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(RunMetadata{Law: "newtonian"}, testResult()); err != nil {
		t.Fatal(err)
	}
	st.Close()

	runs, err := New(dir).List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected directory scan to find 1 run, got %d", len(runs))
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("missing"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, _, err := st.LoadStates("missing"); err == nil {
		t.Error("expected error for missing states")
	}
}

func TestExportJSON(t *testing.T) {
	result := testResult()
	meta := &RunMetadata{ID: "pw_1", Law: "pw", StepsTaken: 1, AbsorbedStep: -1, Metrics: result.Metrics}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, result.States, result.Times); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.ID != "pw_1" || len(data.Points) != 2 {
		t.Errorf("unexpected export %+v", data)
	}
	if data.Points[1].Vel[2] != 1e-3 {
		t.Errorf("expected vz 1e-3, got %v", data.Points[1].Vel[2])
	}
}

func TestExportCSV(t *testing.T) {
	result := testResult()

	var buf bytes.Buffer
	if err := ExportCSV(&buf, result.States, result.Times, 1.5e6); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "time,x,y,z,vx,vy,vz,r" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0.000000,1.000000,0.000000,0.000000,") {
		t.Errorf("unexpected first row %q", lines[1])
	}
}
