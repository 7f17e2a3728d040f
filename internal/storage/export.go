package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/orbitsim/internal/integrators"
)

type ExportPoint struct {
	T   float64    `json:"t"`
	Pos [3]float64 `json:"pos"`
	Vel [3]float64 `json:"vel"`
}

type ExportData struct {
	ID           string             `json:"id"`
	Law          string             `json:"law"`
	Integrator   string             `json:"integrator"`
	MassSolar    float64            `json:"mass_solar"`
	Dt           float64            `json:"dt"`
	Steps        int                `json:"steps"`
	Absorbed     bool               `json:"absorbed"`
	AbsorbedStep int                `json:"absorbed_step"`
	Points       []ExportPoint      `json:"points"`
	Metrics      map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run and its trajectory as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, states []integrators.State, times []float64) error {
	data := ExportData{
		ID:           meta.ID,
		Law:          meta.Law,
		Integrator:   meta.Integrator,
		MassSolar:    meta.MassSolar,
		Dt:           meta.Dt,
		Steps:        meta.StepsTaken,
		Absorbed:     meta.Absorbed,
		AbsorbedStep: meta.AbsorbedStep,
		Points:       make([]ExportPoint, len(states)),
		Metrics:      meta.Metrics,
	}

	for i, s := range states {
		data.Points[i] = ExportPoint{
			T:   times[i],
			Pos: [3]float64{s.Pos.X, s.Pos.Y, s.Pos.Z},
			Vel: [3]float64{s.Vel.X, s.Vel.Y, s.Vel.Z},
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes the trajectory with a header row. Positions are divided
// by scale, which lets callers emit r_s units; pass 1 for meters.
func ExportCSV(w io.Writer, states []integrators.State, times []float64, scale float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(stateHeader); err != nil {
		return err
	}

	for i, s := range states {
		p := s.Pos.Div(scale)
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
			strconv.FormatFloat(s.Vel.X, 'e', 6, 64),
			strconv.FormatFloat(s.Vel.Y, 'e', 6, 64),
			strconv.FormatFloat(s.Vel.Z, 'e', 6, 64),
			strconv.FormatFloat(p.Norm(), 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
