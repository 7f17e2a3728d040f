package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/units"
)

const (
	canvasWidth     = 60
	canvasHeight    = 24
	historyCapacity = 600
	trailCapacity   = 400
)

type TickMsg time.Time

// LiveModel steps one particle per tick and draws it around the horizon.
type LiveModel struct {
	bh           gravity.BlackHole
	law          gravity.Law
	stepper      integrators.Stepper
	state        integrators.State
	initialState integrators.State
	dt           float64
	stepsPerTick int
	fps          int

	t        float64
	step     int
	running  bool
	absorbed int
	zoom     float64
	extent   float64
	e0       float64

	canvas        *Canvas
	trail         []integrators.State
	radiusHistory []float64
	energyDrift   []float64
}

// NewLiveModel prepares a live view. stepsPerTick integration steps are
// taken per frame.
func NewLiveModel(bh gravity.BlackHole, law gravity.Law, stepper integrators.Stepper, x0 integrators.State, dt float64, stepsPerTick, fps int) LiveModel {
	if stepsPerTick < 1 {
		stepsPerTick = 1
	}
	if fps < 1 {
		fps = 30
	}
	extent := 1.5 * x0.Pos.Norm()
	if extent <= 0 {
		extent = 10 * bh.SchwarzschildRadius()
	}
	return LiveModel{
		bh:            bh,
		law:           law,
		stepper:       stepper,
		state:         x0,
		initialState:  x0,
		dt:            dt,
		stepsPerTick:  stepsPerTick,
		fps:           fps,
		running:       true,
		absorbed:      -1,
		zoom:          1,
		extent:        extent,
		e0:            gravity.SpecificEnergy(law, bh, x0.Pos, x0.Vel),
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		trail:         make([]integrators.State, 0, trailCapacity),
		radiusHistory: make([]float64, 0, historyCapacity),
		energyDrift:   make([]float64, 0, historyCapacity),
	}
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "+", "=":
			m.zoom *= 1.25
		case "-", "_":
			m.zoom /= 1.25
		case "l":
			m.switchLaw()
		}
	case TickMsg:
		if m.running {
			for i := 0; i < m.stepsPerTick && m.absorbed < 0; i++ {
				m.advance()
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *LiveModel) advance() {
	m.stepper.Step(&m.state, m.dt, m.bh, m.law)
	m.step++
	m.t += m.dt

	if m.absorbed < 0 && gravity.Absorbed(m.state.Pos, m.bh) {
		m.absorbed = m.step
	}

	m.trail = append(m.trail, m.state)
	if len(m.trail) > trailCapacity {
		m.trail = m.trail[1:]
	}

	m.radiusHistory = append(m.radiusHistory, m.state.Pos.Norm()/m.bh.SchwarzschildRadius())
	if len(m.radiusHistory) > historyCapacity {
		m.radiusHistory = m.radiusHistory[1:]
	}

	drift := 0.0
	if m.e0 != 0 {
		e := gravity.SpecificEnergy(m.law, m.bh, m.state.Pos, m.state.Vel)
		drift = (e - m.e0) / m.e0
	}
	m.energyDrift = append(m.energyDrift, drift)
	if len(m.energyDrift) > historyCapacity {
		m.energyDrift = m.energyDrift[1:]
	}
}

func (m *LiveModel) reset() {
	m.state = m.initialState
	m.t = 0
	m.step = 0
	m.absorbed = -1
	m.trail = m.trail[:0]
	m.radiusHistory = m.radiusHistory[:0]
	m.energyDrift = m.energyDrift[:0]
	m.e0 = gravity.SpecificEnergy(m.law, m.bh, m.state.Pos, m.state.Vel)
}

// switchLaw toggles between the Newtonian and pseudo-relativistic law and
// restarts from the initial state.
func (m *LiveModel) switchLaw() {
	if m.law.Name() == gravity.NameNewtonian {
		m.law = gravity.PaczynskiWiita{}
	} else {
		m.law = gravity.Newtonian{}
	}
	m.reset()
}

func (m *LiveModel) draw() {
	m.canvas.Clear()
	v := NewViewport(m.canvas, m.extent/m.zoom)

	cx, cy := v.Project(0, 0)
	m.canvas.DrawCircle(cx, cy, v.Pixels(m.bh.SchwarzschildRadius()))
	if r := v.Pixels(m.bh.ISCO()); r > 2 {
		m.dottedCircle(cx, cy, r)
	}

	for i := 1; i < len(m.trail); i++ {
		x0, y0 := v.Project(m.trail[i-1].Pos.X, m.trail[i-1].Pos.Y)
		x1, y1 := v.Project(m.trail[i].Pos.X, m.trail[i].Pos.Y)
		m.canvas.DrawLine(x0, y0, x1, y1)
	}

	px, py := v.Project(m.state.Pos.X, m.state.Pos.Y)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			m.canvas.Set(px+dx, py+dy)
		}
	}
}

func (m *LiveModel) dottedCircle(cx, cy, r int) {
	n := 4 * r
	for i := 0; i < n; i += 3 {
		a := 2 * math.Pi * float64(i) / float64(n)
		m.canvas.Set(cx+int(math.Round(float64(r)*math.Cos(a))), cy+int(math.Round(float64(r)*math.Sin(a))))
	}
}

func (m LiveModel) status() string {
	switch {
	case m.absorbed >= 0:
		return StatusAbsorbed.Render(fmt.Sprintf("ABSORBED @ step %d", m.absorbed))
	case m.running:
		return StatusRunning.Render("RUNNING")
	default:
		return StatusPaused.Render("PAUSED")
	}
}

func (m LiveModel) View() string {
	m.draw()

	rs := m.bh.SchwarzschildRadius()
	fields := []Field{
		F("law", "%s", m.law.Name()),
		F("integrator", "%s", m.stepper.Name()),
		F("mass", "%.2f Msun", m.bh.SolarMasses()),
		F("step", "%d", m.step),
		F("time", "%.4e s", m.t),
		F("r", "%.4f rs", m.state.Pos.Norm()/rs),
		F("|v|", "%.4f c", m.state.Vel.Norm()/units.C),
		F("zoom", "%.2fx", m.zoom),
	}
	if n := len(m.energyDrift); n > 0 {
		fields = append(fields, F("energy drift", "%.3e", m.energyDrift[n-1]))
	}

	orbit := Panel.Render(m.canvas.String())
	side := lipgloss.JoinVertical(lipgloss.Left, m.status(), RenderSummary("orbit", fields))
	top := lipgloss.JoinHorizontal(lipgloss.Top, orbit, " ", side)

	var b strings.Builder
	b.WriteString(Title.Render("orbitsim live"))
	b.WriteString("\n")
	b.WriteString(top)
	b.WriteString("\n")
	if len(m.radiusHistory) > 1 {
		b.WriteString(asciigraph.Plot(m.radiusHistory,
			asciigraph.Height(8),
			asciigraph.Width(canvasWidth+20),
			asciigraph.Caption("radius (rs)"),
		))
		b.WriteString("\n")
	}
	b.WriteString(KeyHint.Render("space pause · r reset · +/- zoom · l switch law · q quit"))
	return b.String()
}

// Step reports the number of integration steps taken since the last reset.
func (m LiveModel) Step() int { return m.step }

func (m LiveModel) State() integrators.State { return m.state }

func (m LiveModel) Law() gravity.Law { return m.law }

func (m LiveModel) Running() bool { return m.running }

// AbsorbedStep is -1 until the particle crosses the capture radius.
func (m LiveModel) AbsorbedStep() int { return m.absorbed }
