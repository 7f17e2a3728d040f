// Package storage persists runs under a base directory: one folder per run
// holding metadata.json and states.csv, plus a SQLite catalog for listing.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/vec"
)

const (
	metadataFile = "metadata.json"
	statesFile   = "states.csv"
)

var stateHeader = []string{"time", "x", "y", "z", "vx", "vy", "vz", "r"}

type Store struct {
	baseDir string
	catalog *Catalog
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the base directory and opens the catalog.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}
	if s.catalog != nil {
		return nil
	}
	cat, err := OpenCatalog(filepath.Join(s.baseDir, catalogFile))
	if err != nil {
		return err
	}
	s.catalog = cat
	return nil
}

func (s *Store) Close() error {
	if s.catalog == nil {
		return nil
	}
	err := s.catalog.Close()
	s.catalog = nil
	return err
}

type RunMetadata struct {
	ID           string             `json:"id"`
	Law          string             `json:"law"`
	Integrator   string             `json:"integrator"`
	Timestamp    time.Time          `json:"timestamp"`
	MassSolar    float64            `json:"mass_solar"`
	RadiusRs     float64            `json:"radius_rs"`
	Dt           float64            `json:"dt"`
	Steps        int                `json:"steps"`
	StepsTaken   int                `json:"steps_taken"`
	Absorbed     bool               `json:"absorbed"`
	AbsorbedStep int                `json:"absorbed_step"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Save writes a run and indexes it. meta.ID and meta.Timestamp are filled in
// when empty; the resulting ID is returned.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%d", meta.Law, meta.Timestamp.UnixNano())
	}
	meta.StepsTaken = result.StepsTaken
	meta.Absorbed = result.Absorbed
	meta.AbsorbedStep = result.AbsorbedStep
	meta.Metrics = result.Metrics

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeStates(filepath.Join(runDir, statesFile), result); err != nil {
		return "", err
	}

	if s.catalog != nil {
		if err := s.catalog.Insert(meta); err != nil {
			return "", fmt.Errorf("index run %s: %w", meta.ID, err)
		}
	}

	return meta.ID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeStates(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(stateHeader); err != nil {
		return err
	}

	for i, st := range result.States {
		row := []string{
			formatFloat(result.Times[i]),
			formatFloat(st.Pos.X), formatFloat(st.Pos.Y), formatFloat(st.Pos.Z),
			formatFloat(st.Vel.X), formatFloat(st.Vel.Y), formatFloat(st.Vel.Z),
			formatFloat(st.Pos.Norm()),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 17, 64)
}

// List returns all runs, newest first. The catalog is used when open;
// otherwise run directories are scanned.
func (s *Store) List() ([]RunMetadata, error) {
	if s.catalog != nil {
		return s.catalog.List()
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sortNewestFirst(runs)
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadStates reads back the recorded trajectory.
func (s *Store) LoadStates(runID string) ([]integrators.State, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, statesFile))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []integrators.State{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	states := make([]integrators.State, 0, len(records)-1)

	for i, record := range records[1:] {
		if len(record) < 7 {
			return nil, nil, fmt.Errorf("%s line %d: expected 7+ columns, got %d", statesFile, i+2, len(record))
		}
		vals := make([]float64, 7)
		for j := range vals {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s line %d: %w", statesFile, i+2, err)
			}
			vals[j] = v
		}
		times = append(times, vals[0])
		states = append(states, integrators.NewState(
			vec.New(vals[1], vals[2], vals[3]),
			vec.New(vals[4], vals[5], vals[6]),
		))
	}

	return states, times, nil
}
