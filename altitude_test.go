package astroplan

import (
	"testing"
	"time"
)

func TestAltitudeConstraint(t *testing.T) {
	obs := testPoleObserver()
	spec := AtTimes(testNight...)

	// From the pole the altitude of a target equals its declination.
	tests := []struct {
		name     string
		dec      float64
		min, max Limit
		want     bool
	}{
		{"inside the band", 40, Limit{20}, Limit{60}, true},
		{"below min", 10, Limit{20}, Limit{60}, false},
		{"above max", 75, Limit{20}, Limit{60}, false},
		{"min only", 40, Limit{20}, nil, true},
		{"max only", 40, nil, Limit{30}, false},
		{"defaults admit everything", -89, nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAltitudeConstraint(tt.min, tt.max)
			m, err := Evaluate(c, obs, spec, TargetAt(120, tt.dec))
			if err != nil {
				t.Fatal(err)
			}
			if m.NumTargets() != 1 || m.NumTimes() != len(testNight) {
				t.Fatalf("shape = (%d, %d), want (1, %d)", m.NumTargets(), m.NumTimes(), len(testNight))
			}
			for j := 0; j < m.NumTimes(); j++ {
				if m.BoolAt(0, j) != tt.want {
					t.Errorf("[0][%d] = %v, want %v", j, m.BoolAt(0, j), tt.want)
				}
			}
		})
	}
}

func TestAltitudeConstraintInclusiveBounds(t *testing.T) {
	// A target exactly at a bound satisfies it: fetch the altitude the
	// observer actually computes and use it as both limits.
	obs := testGoldstoneObserver()
	target := NewFixedTarget("Vega", 279.235, 38.784)
	times := []time.Time{time.Date(2024, 7, 15, 7, 0, 0, 0, time.UTC)}

	alt := obs.AltAz(times, []FixedTarget{target}).Alt[0][0]

	c := NewAltitudeConstraint(Limit{alt}, Limit{alt})
	m, err := Evaluate(c, obs, AtTimes(times...), target)
	if err != nil {
		t.Fatal(err)
	}
	if !m.BoolAt(0, 0) {
		t.Error("altitude exactly at both bounds rejected; bounds must be inclusive")
	}
}

func TestAltitudeConstraintShape(t *testing.T) {
	obs := testPoleObserver()
	targets := []FixedTarget{TargetAt(10, 20), TargetAt(200, -45)}

	m, err := Evaluate(NewAltitudeConstraint(Limit{0}, nil), obs, AtTimes(testNight...), targets...)
	if err != nil {
		t.Fatal(err)
	}
	if m.NumTargets() != 2 || m.NumTimes() != 3 {
		t.Fatalf("shape = (%d, %d), want (2, 3)", m.NumTargets(), m.NumTimes())
	}
	if !m.BoolAt(0, 0) || m.BoolAt(1, 0) {
		t.Error("rows do not track their targets")
	}
}

func TestAltitudeConstraintPerTargetLimits(t *testing.T) {
	obs := testPoleObserver()
	targets := []FixedTarget{TargetAt(0, 25), TargetAt(90, 25)}

	// Same sky position budgeted differently per target.
	c := NewAltitudeConstraint(Limit{20, 30}, nil)
	m, err := Evaluate(c, obs, AtTimes(testNight[0]), targets...)
	if err != nil {
		t.Fatal(err)
	}
	if !m.BoolAt(0, 0) || m.BoolAt(1, 0) {
		t.Errorf("per-target limits: got [%v %v], want [true false]",
			m.BoolAt(0, 0), m.BoolAt(1, 0))
	}

	// Wrong column length is rejected.
	bad := NewAltitudeConstraint(Limit{20, 30, 40}, nil)
	if _, err := Evaluate(bad, obs, AtTimes(testNight[0]), targets...); err == nil {
		t.Error("mismatched per-target limit accepted")
	}
}

func TestAltitudeConstraintScore(t *testing.T) {
	obs := testPoleObserver()
	target := TargetAt(50, 47.5)
	times := []time.Time{testNight[0]}

	c := NewAltitudeConstraint(Limit{35}, Limit{60})
	c.BooleanConstraint = false
	m, err := Evaluate(c, obs, AtTimes(times...), target)
	if err != nil {
		t.Fatal(err)
	}
	if m.Boolean() {
		t.Fatal("score matrix flagged boolean")
	}

	alt := obs.AltAz(times, []FixedTarget{target}).Alt[0][0]
	want := maxBestScore(alt, 35, 60, 1)
	if m.At(0, 0) != want {
		t.Errorf("score = %v, want %v", m.At(0, 0), want)
	}
	if !approxEqual(m.At(0, 0), 0.5, 1e-9) {
		t.Errorf("score = %v, want ~0.5 for the band midpoint", m.At(0, 0))
	}
}
