package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/vec"
)

const (
	DefaultLaw         = gravity.NameNewtonian
	DefaultIntegrator  = "verlet"
	DefaultMassSolar   = 10.0
	DefaultRadiusRs    = 20.0
	DefaultSpeedFactor = 1.0
	DefaultDtFraction  = 0.01
	DefaultSteps       = 100
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

var knownIntegrators = map[string]bool{
	"verlet":   true,
	"leapfrog": true,
	"euler":    true,
	"rk4":      true,
}

type Config struct {
	Law        string  `yaml:"law"`
	Integrator string  `yaml:"integrator"`
	MassSolar  float64 `yaml:"mass_solar"`
	Seed       int64   `yaml:"seed,omitempty"`

	Orbit OrbitConfig `yaml:"orbit"`
	Run   RunConfig   `yaml:"run"`
}

// OrbitConfig describes the initial conditions. The particle starts on the
// +x axis at RadiusRs Schwarzschild radii, moving along +y at SpeedFactor
// times the circular speed of SpeedLaw, tilted out of the x-y plane by
// InclinationDeg.
type OrbitConfig struct {
	RadiusRs       float64 `yaml:"radius_rs"`
	SpeedFactor    float64 `yaml:"speed_factor"`
	SpeedLaw       string  `yaml:"speed_law,omitempty"`
	InclinationDeg float64 `yaml:"inclination_deg"`
}

// RunConfig controls stepping. When Dt is non-zero it is the step in
// seconds; otherwise the step is DtFraction * r0 / v0.
type RunConfig struct {
	Dt            float64 `yaml:"dt,omitempty"`
	DtFraction    float64 `yaml:"dt_fraction"`
	Steps         int     `yaml:"steps"`
	RecordEvery   int     `yaml:"record_every"`
	StopOnAbsorb  bool    `yaml:"stop_on_absorb"`
	ValidateState bool    `yaml:"validate_state"`
}

// DefaultConfig is a circular Newtonian orbit at 20 r_s around 10 solar
// masses, stepped 100 times at 1% of r0/v0.
func DefaultConfig() *Config {
	return &Config{
		Law:        DefaultLaw,
		Integrator: DefaultIntegrator,
		MassSolar:  DefaultMassSolar,
		Orbit: OrbitConfig{
			RadiusRs:    DefaultRadiusRs,
			SpeedFactor: DefaultSpeedFactor,
		},
		Run: RunConfig{
			DtFraction:    DefaultDtFraction,
			Steps:         DefaultSteps,
			RecordEvery:   1,
			ValidateState: true,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base, so keys absent from the file keep
// base's values. base is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the core would silently turn into NaN.
func (c *Config) Validate() error {
	if _, err := gravity.LawByName(c.Law); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Orbit.SpeedLaw != "" {
		if _, err := gravity.LawByName(c.Orbit.SpeedLaw); err != nil {
			return fmt.Errorf("%w: speed_law: %v", ErrInvalid, err)
		}
	}
	if !knownIntegrators[c.Integrator] {
		return fmt.Errorf("%w: unknown integrator: %s", ErrInvalid, c.Integrator)
	}
	if !(c.MassSolar > 0) || math.IsInf(c.MassSolar, 0) {
		return fmt.Errorf("%w: mass_solar must be positive and finite, got %v", ErrInvalid, c.MassSolar)
	}
	if !(c.Orbit.RadiusRs > 0) || math.IsInf(c.Orbit.RadiusRs, 0) {
		return fmt.Errorf("%w: radius_rs must be positive and finite, got %v", ErrInvalid, c.Orbit.RadiusRs)
	}
	if !isFinite(c.Orbit.SpeedFactor) || !isFinite(c.Orbit.InclinationDeg) {
		return fmt.Errorf("%w: speed_factor and inclination_deg must be finite", ErrInvalid)
	}
	if !isFinite(c.Run.Dt) || !isFinite(c.Run.DtFraction) {
		return fmt.Errorf("%w: dt and dt_fraction must be finite", ErrInvalid)
	}
	if c.Run.Dt == 0 && c.Run.DtFraction == 0 {
		return fmt.Errorf("%w: one of dt or dt_fraction must be non-zero", ErrInvalid)
	}
	if c.Run.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", ErrInvalid, c.Run.Steps)
	}
	speedLaw, err := gravity.LawByName(c.speedLawName())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if speedLaw.Name() == gravity.NamePaczynskiWiita && c.Orbit.RadiusRs <= 1 {
		return fmt.Errorf("%w: pw circular speed is undefined at or inside r_s (radius_rs=%v)", ErrInvalid, c.Orbit.RadiusRs)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (c *Config) speedLawName() string {
	if c.Orbit.SpeedLaw != "" {
		return c.Orbit.SpeedLaw
	}
	return c.Law
}

func (c *Config) Body() gravity.BlackHole {
	return gravity.FromSolarMass(c.MassSolar)
}

// InitialState builds the starting position and velocity.
func (c *Config) InitialState() (integrators.State, error) {
	speedLaw, err := gravity.LawByName(c.speedLawName())
	if err != nil {
		return integrators.State{}, err
	}
	bh := c.Body()
	r0 := c.Orbit.RadiusRs * bh.SchwarzschildRadius()
	v := c.Orbit.SpeedFactor * speedLaw.CircularSpeed(bh, r0)
	inc := c.Orbit.InclinationDeg * math.Pi / 180

	return integrators.NewState(
		vec.New(r0, 0, 0),
		vec.New(0, v*math.Cos(inc), v*math.Sin(inc)),
	), nil
}

// TimeStep resolves the step size for the given initial state.
func (c *Config) TimeStep(x0 integrators.State) float64 {
	if c.Run.Dt != 0 {
		return c.Run.Dt
	}
	v := x0.Vel.Norm()
	if v == 0 {
		// radial drop: use the circular speed as the scale
		bh := c.Body()
		v = gravity.NewtonOrbitSpeed(bh, x0.Pos.Norm())
	}
	return c.Run.DtFraction * x0.Pos.Norm() / v
}

// SimConfig converts to the driver's run parameters.
func (c *Config) SimConfig(dt float64) sim.Config {
	return sim.Config{
		Dt:            dt,
		Steps:         c.Run.Steps,
		RecordEvery:   c.Run.RecordEvery,
		StopOnAbsorb:  c.Run.StopOnAbsorb,
		ValidateState: c.Run.ValidateState,
	}
}
