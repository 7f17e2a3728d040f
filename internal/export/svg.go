package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/viz"
)

// CanvasToSVG converts a braille canvas to SVG dots.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	pw, ph := canvas.PixelSize()
	width := float64(pw) * scale
	height := float64(ph) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height)

	dotRadius := scale * 0.4
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
				float64(x)*scale+scale/2, float64(y)*scale+scale/2, dotRadius)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// OrbitSVG draws the x-y projection of a trajectory as a path around a
// filled horizon disc of radius rs. The view is square, centered on the
// body, and sized to the farthest point.
func OrbitSVG(w io.Writer, states []integrators.State, rs float64, size int, strokeColor string) error {
	if len(states) < 2 {
		return fmt.Errorf("need at least 2 states, got %d", len(states))
	}

	extent := 1.1 * rs
	for _, s := range states {
		if r := s.Pos.Norm(); r*1.1 > extent {
			extent = r * 1.1
		}
	}
	half := float64(size) / 2
	scale := half / extent
	px := func(x float64) float64 { return half + x*scale }
	py := func(y float64) float64 { return half - y*scale }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<circle cx="%.1f" cy="%.1f" r="%.2f" fill="#000000" stroke="#ff4444" stroke-width="1"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		size, size, size, size, half, half, rs*scale, strokeColor)

	for i, s := range states {
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", px(s.Pos.X), py(s.Pos.Y))
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", px(s.Pos.X), py(s.Pos.Y))
		}
	}

	sb.WriteString("\"/>\n</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
