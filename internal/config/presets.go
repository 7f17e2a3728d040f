package config

import "sort"

var Presets = map[string]*Config{
	// the reference run: 10 M_sun, r0 = 20 r_s, 100 steps
	"circular": {
		Law: "newtonian", Integrator: "verlet", MassSolar: 10,
		Orbit: OrbitConfig{RadiusRs: 20, SpeedFactor: 1},
		Run:   RunConfig{DtFraction: 0.01, Steps: 100, RecordEvery: 1, ValidateState: true},
	},
	"pw-circular": {
		Law: "pw", Integrator: "verlet", MassSolar: 10,
		Orbit: OrbitConfig{RadiusRs: 20, SpeedFactor: 1},
		Run:   RunConfig{DtFraction: 0.01, Steps: 2000, RecordEvery: 5, ValidateState: true},
	},
	"isco": {
		Law: "pw", Integrator: "verlet", MassSolar: 10,
		Orbit: OrbitConfig{RadiusRs: 3, SpeedFactor: 1},
		Run:   RunConfig{DtFraction: 0.002, Steps: 10000, RecordEvery: 20, ValidateState: true},
	},
	"plunge": {
		Law: "pw", Integrator: "verlet", MassSolar: 10,
		Orbit: OrbitConfig{RadiusRs: 2.5, SpeedFactor: 0.9},
		Run:   RunConfig{DtFraction: 0.002, Steps: 20000, RecordEvery: 10, StopOnAbsorb: true, ValidateState: true},
	},
	"precession": {
		Law: "pw", Integrator: "verlet", MassSolar: 10,
		Orbit: OrbitConfig{RadiusRs: 12, SpeedFactor: 1, SpeedLaw: "newtonian"},
		Run:   RunConfig{DtFraction: 0.002, Steps: 30000, RecordEvery: 20, StopOnAbsorb: true, ValidateState: true},
	},
	"eccentric": {
		Law: "newtonian", Integrator: "verlet", MassSolar: 10,
		Orbit: OrbitConfig{RadiusRs: 20, SpeedFactor: 1.2, InclinationDeg: 30},
		Run:   RunConfig{DtFraction: 0.005, Steps: 10000, RecordEvery: 10, ValidateState: true},
	},
	"backward": {
		Law: "newtonian", Integrator: "verlet", MassSolar: 10,
		Orbit: OrbitConfig{RadiusRs: 20, SpeedFactor: 1},
		Run:   RunConfig{DtFraction: -0.01, Steps: 100, RecordEvery: 1, ValidateState: true},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
