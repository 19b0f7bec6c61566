package astroplan

import (
	"errors"
	"testing"
	"time"
)

func TestAtNightConstraint(t *testing.T) {
	obs := testGoldstoneObserver()
	// Local midnight and local noon (UTC-7 in July).
	midnight := time.Date(2024, 7, 15, 7, 0, 0, 0, time.UTC)
	noon := time.Date(2024, 7, 15, 19, 0, 0, 0, time.UTC)
	targets := []FixedTarget{TargetAt(279.235, 38.784), TargetAt(101.287, -16.716)}

	m, err := Evaluate(NewAtNightConstraint(nil), obs, AtTimes(midnight, noon), targets...)
	if err != nil {
		t.Fatal(err)
	}
	// Solar altitude is a per-time quantity: every target row is identical.
	for i := range targets {
		if got := boolRow(m, i); !equalBools(got, []bool{true, false}) {
			t.Errorf("row %d = %v, want [true false]", i, got)
		}
	}
}

func TestAtNightTwilightLevels(t *testing.T) {
	// Pin the Sun at altitude -9°: dark for civil twilight, not for
	// nautical or astronomical.
	obs := testPoleObserver()
	obs.SetEphemeris(&fakeEphemeris{sunRA: 0, sunDec: -9})
	spec := AtTimes(testNight[0])
	target := TargetAt(0, 45)

	tests := []struct {
		name string
		c    *AtNightConstraint
		want bool
	}{
		{"civil", AtNightCivil(), true},
		{"nautical", AtNightNautical(), false},
		{"astronomical", AtNightAstronomical(), false},
		{"horizon", NewAtNightConstraint(nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Evaluate(tt.c, obs, spec, target)
			if err != nil {
				t.Fatal(err)
			}
			if m.BoolAt(0, 0) != tt.want {
				t.Errorf("got %v, want %v", m.BoolAt(0, 0), tt.want)
			}
		})
	}
}

func TestAtNightRestoresPressure(t *testing.T) {
	obs := testGoldstoneObserver()
	obs.Pressure = 500

	if _, err := Evaluate(NewAtNightConstraint(nil), obs, AtTimes(testNight...), TargetAt(0, 45)); err != nil {
		t.Fatal(err)
	}
	if obs.Pressure != 500 {
		t.Errorf("pressure = %v after evaluation, want 500", obs.Pressure)
	}
}

func TestAtNightRestoresPressureOnError(t *testing.T) {
	obs := testGoldstoneObserver()
	obs.SetEphemeris(&fakeEphemeris{err: errTestEphemeris})

	_, err := Evaluate(NewAtNightConstraint(nil), obs, AtTimes(testNight...), TargetAt(0, 45))
	if !errors.Is(err, errTestEphemeris) {
		t.Fatalf("err = %v, want the ephemeris failure", err)
	}
	if obs.Pressure != StandardPressure {
		t.Errorf("pressure = %v after failed evaluation, want %v", obs.Pressure, StandardPressure)
	}
}

func TestSunAltitudeCached(t *testing.T) {
	eph := &fakeEphemeris{sunRA: 10, sunDec: -20}
	obs := testPoleObserver()
	obs.SetEphemeris(eph)
	spec := AtTimes(testNight...)
	c := NewAtNightConstraint(nil)

	first, err := Evaluate(c, obs, spec, TargetAt(0, 45))
	if err != nil {
		t.Fatal(err)
	}
	if eph.sunCalls != len(testNight) {
		t.Fatalf("sun queried %d times, want %d", eph.sunCalls, len(testNight))
	}

	second, err := Evaluate(c, obs, spec, TargetAt(0, 45), TargetAt(90, -10))
	if err != nil {
		t.Fatal(err)
	}
	if eph.sunCalls != len(testNight) {
		t.Errorf("sun queried %d times after reuse, want still %d", eph.sunCalls, len(testNight))
	}
	if !equalBools(boolRow(first, 0), boolRow(second, 0)) {
		t.Error("cached evaluation disagrees with the first")
	}

	// A different time sequence is a different cache entry.
	later := AtTimes(testNight[0].Add(time.Minute))
	if _, err := Evaluate(c, obs, later, TargetAt(0, 45)); err != nil {
		t.Fatal(err)
	}
	if eph.sunCalls != len(testNight)+1 {
		t.Errorf("sun queried %d times after new sequence, want %d", eph.sunCalls, len(testNight)+1)
	}
}
