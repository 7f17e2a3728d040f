package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitsim/internal/integrators"
)

const (
	plotHeight = 12
	plotWidth  = 80
)

// PlotSeries draws one series as an ASCII line chart.
func PlotSeries(data []float64, caption string) string {
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotCompare overlays several series, one color each.
func PlotCompare(series [][]float64, names []string, caption string) string {
	if len(series) == 0 {
		return ""
	}
	colors := []asciigraph.AnsiColor{
		asciigraph.Green, asciigraph.Yellow, asciigraph.Red, asciigraph.Blue, asciigraph.Magenta,
	}
	opts := []asciigraph.Option{
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors[:min(len(series), len(colors))]...),
	}
	if len(names) == len(series) {
		opts = append(opts, asciigraph.SeriesLegends(names...))
	}
	return asciigraph.PlotMany(series, opts...)
}

// RadiusSeries returns |pos| / scale for each state.
func RadiusSeries(states []integrators.State, scale float64) []float64 {
	out := make([]float64, len(states))
	for i, s := range states {
		out[i] = s.Pos.Norm() / scale
	}
	return out
}

// SpeedSeries returns |vel| / scale for each state.
func SpeedSeries(states []integrators.State, scale float64) []float64 {
	out := make([]float64, len(states))
	for i, s := range states {
		out[i] = s.Vel.Norm() / scale
	}
	return out
}

// OrbitPlot draws the x-y projection of a trajectory with the horizon
// circle, scaled to fit the farthest point.
func OrbitPlot(states []integrators.State, rs float64, w, h int) string {
	c := NewCanvas(w, h)
	extent := 1.1 * rs
	for _, s := range states {
		if r := s.Pos.Norm(); r*1.05 > extent {
			extent = r * 1.05
		}
	}
	v := NewViewport(c, extent)
	cx, cy := v.Project(0, 0)
	c.DrawCircle(cx, cy, v.Pixels(rs))

	for i, s := range states {
		x, y := v.Project(s.Pos.X, s.Pos.Y)
		if i == 0 {
			c.Set(x, y)
			continue
		}
		px, py := v.Project(states[i-1].Pos.X, states[i-1].Pos.Y)
		c.DrawLine(px, py, x, y)
	}
	return c.String()
}
