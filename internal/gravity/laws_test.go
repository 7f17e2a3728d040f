package gravity

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/units"
	"github.com/san-kum/orbitsim/internal/vec"
)

func TestFromSolarMass(t *testing.T) {
	bh := FromSolarMass(1.0)
	if math.Abs(bh.SchwarzschildRadius()-2953.339382) > 1.0 {
		t.Errorf("expected r_s ~2953.34 m, got %.3f", bh.SchwarzschildRadius())
	}
	if bh.Rs() != bh.SchwarzschildRadius() {
		t.Error("Rs should equal SchwarzschildRadius")
	}
	if got := FromSolarMass(10).SolarMasses(); math.Abs(got-10) > 1e-12 {
		t.Errorf("expected 10 solar masses, got %f", got)
	}
}

func TestAccelAtOrigin(t *testing.T) {
	bh := FromSolarMass(10)
	for _, law := range []Law{Newtonian{}, PaczynskiWiita{}} {
		if got := law.Accel(vec.Vec3{}, bh); got != (vec.Vec3{}) {
			t.Errorf("%s: expected zero acceleration at origin, got %v", law.Name(), got)
		}
	}
}

func TestPWAccelInsideHorizon(t *testing.T) {
	bh := FromSolarMass(10)
	rs := bh.SchwarzschildRadius()

	tests := []struct {
		name string
		pos  vec.Vec3
	}{
		{"at horizon", vec.New(rs, 0, 0)},
		{"inside", vec.New(0, 0.5*rs, 0)},
		{"deep inside", vec.New(1, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PWAccel(tt.pos, bh); got != (vec.Vec3{}) {
				t.Errorf("expected zero acceleration, got %v", got)
			}
		})
	}
}

func TestAccelMagnitudeAndDirection(t *testing.T) {
	bh := FromSolarMass(10)
	rs := bh.SchwarzschildRadius()
	pos := vec.New(3*rs, 4*rs, 0)
	r := pos.Norm()

	a := NewtonianAccel(pos, bh)
	want := units.G * bh.MassKg / (r * r)
	if math.Abs(a.Norm()-want) > 1e-12*want {
		t.Errorf("newtonian |a| = %e, want %e", a.Norm(), want)
	}
	if a.Dot(pos) >= 0 {
		t.Error("newtonian acceleration should point toward the body")
	}

	a = PWAccel(pos, bh)
	want = units.G * bh.MassKg / ((r - rs) * (r - rs))
	if math.Abs(a.Norm()-want) > 1e-12*want {
		t.Errorf("pw |a| = %e, want %e", a.Norm(), want)
	}
	if math.Abs(a.Normalized().Dot(pos.Normalized())+1) > 1e-12 {
		t.Error("pw acceleration should be anti-parallel to position")
	}
}

func TestCircularSpeedMatchesAccel(t *testing.T) {
	bh := FromSolarMass(10)
	rs := bh.SchwarzschildRadius()

	for _, law := range []Law{Newtonian{}, PaczynskiWiita{}} {
		for _, k := range []float64{1.5, 3, 6, 20, 1000} {
			r := k * rs
			v := law.CircularSpeed(bh, r)
			centripetal := v * v / r
			a := law.Accel(vec.New(r, 0, 0), bh).Norm()
			if math.Abs(centripetal-a) > 1e-10*a {
				t.Errorf("%s at %.1f r_s: v^2/r = %e, |a| = %e", law.Name(), k, centripetal, a)
			}
		}
	}
}

func TestPWOrbitSpeedDivergesNearHorizon(t *testing.T) {
	bh := FromSolarMass(10)
	rs := bh.SchwarzschildRadius()

	prev := 0.0
	for _, eps := range []float64{10, 1, 0.1, 1e-2, 1e-4, 1e-6, 1e-8} {
		v := PWOrbitSpeed(bh, rs*(1+eps))
		if v <= prev {
			t.Fatalf("speed not increasing toward horizon: eps=%g v=%e prev=%e", eps, v, prev)
		}
		prev = v
	}
	if prev < 1e3*units.C {
		t.Errorf("expected speed to grow without bound, got %e", prev)
	}
}

func TestPWReducesToNewtonFarAway(t *testing.T) {
	bh := FromSolarMass(1)
	r := 1e9 * bh.SchwarzschildRadius()
	vn := NewtonOrbitSpeed(bh, r)
	vp := PWOrbitSpeed(bh, r)
	if math.Abs(vn-vp)/vn > 1e-8 {
		t.Errorf("expected pw ~ newton far from horizon: %e vs %e", vp, vn)
	}
}

func TestAbsorbed(t *testing.T) {
	bh := FromSolarMass(10)
	limit := AbsorptionMargin * bh.SchwarzschildRadius()

	tests := []struct {
		name string
		pos  vec.Vec3
		want bool
	}{
		{"origin", vec.Vec3{}, true},
		{"boundary", vec.New(limit, 0, 0), true},
		{"just inside", vec.New(0, 0, 0.999*limit), true},
		{"just outside", vec.New(0, 1.001*limit, 0), false},
		{"far", vec.New(20*limit, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Absorbed(tt.pos, bh); got != tt.want {
				t.Errorf("Absorbed(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestLawByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"newtonian", NameNewtonian},
		{"newton", NameNewtonian},
		{"pw", NamePaczynskiWiita},
		{"paczynski-wiita", NamePaczynskiWiita},
	}
	for _, tt := range tests {
		law, err := LawByName(tt.name)
		if err != nil {
			t.Fatalf("LawByName(%q): %v", tt.name, err)
		}
		if law.Name() != tt.want {
			t.Errorf("LawByName(%q) = %s, want %s", tt.name, law.Name(), tt.want)
		}
	}

	if _, err := LawByName("mond"); err == nil {
		t.Error("expected error for unknown law")
	}
}

func TestAccelFunc(t *testing.T) {
	bh := FromSolarMass(1)
	var acc Accelerator = AccelFunc(NewtonianAccel)
	pos := vec.New(1e7, 0, 0)
	if acc.Accel(pos, bh) != NewtonianAccel(pos, bh) {
		t.Error("AccelFunc should delegate to the wrapped function")
	}
}
