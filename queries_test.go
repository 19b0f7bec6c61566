package astroplan

import (
	"errors"
	"testing"
	"time"
)

func TestIsObservable(t *testing.T) {
	obs := testPoleObserver()
	spec := AtTimes(testNight...)
	up := TargetAt(0, 40)
	down := TargetAt(180, -40)

	constraints := []Constraint{NewAltitudeConstraint(Limit{0}, nil)}

	ever, err := IsObservable(constraints, obs, spec, up, down)
	if err != nil {
		t.Fatal(err)
	}
	if !equalBools(ever, []bool{true, false}) {
		t.Errorf("IsObservable = %v, want [true false]", ever)
	}

	always, err := IsAlwaysObservable(constraints, obs, spec, up, down)
	if err != nil {
		t.Fatal(err)
	}
	if !equalBools(always, []bool{true, false}) {
		t.Errorf("IsAlwaysObservable = %v, want [true false]", always)
	}
}

func TestEverWithoutAlways(t *testing.T) {
	// A window covering only the middle sample: observable at some time
	// but not at all times.
	obs := testPoleObserver()
	spec := AtTimes(testNight...)
	target := TargetAt(0, 40)

	window, err := NewTimeWindowConstraint(&testNight[0], &testNight[2])
	if err != nil {
		t.Fatal(err)
	}
	constraints := []Constraint{NewAltitudeConstraint(Limit{0}, nil), window}

	ever, err := IsObservable(constraints, obs, spec, target)
	if err != nil {
		t.Fatal(err)
	}
	always, err := IsAlwaysObservable(constraints, obs, spec, target)
	if err != nil {
		t.Fatal(err)
	}
	if !ever[0] || always[0] {
		t.Errorf("ever = %v, always = %v; want true, false", ever[0], always[0])
	}
}

func TestAlwaysImpliesEver(t *testing.T) {
	// Real sky over a summer night: whatever the per-target outcomes,
	// always-observable must imply ever-observable.
	obs := testGoldstoneObserver()
	spec := OverRange(
		time.Date(2024, 7, 15, 4, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC),
		time.Hour,
	)
	targets := []FixedTarget{
		NewFixedTarget("Vega", 279.235, 38.784),
		NewFixedTarget("Sirius", 101.287, -16.716),
		NewFixedTarget("Polaris", 37.954, 89.264),
	}
	constraints := []Constraint{NewAltitudeConstraint(Limit{20}, nil), NewAtNightConstraint(nil)}

	ever, err := IsObservable(constraints, obs, spec, targets...)
	if err != nil {
		t.Fatal(err)
	}
	always, err := IsAlwaysObservable(constraints, obs, spec, targets...)
	if err != nil {
		t.Fatal(err)
	}
	for i, tgt := range targets {
		if always[i] && !ever[i] {
			t.Errorf("%s: always observable but not ever observable", tgt.Name)
		}
	}
	// Polaris never sets from a northern site.
	if !ever[2] {
		t.Error("Polaris not observable from Goldstone at night")
	}
}

func TestEmptyConstraintList(t *testing.T) {
	obs := testPoleObserver()
	if _, err := IsObservable(nil, obs, AtTimes(testNight...), TargetAt(0, 40)); !errors.Is(err, ErrNoLimits) {
		t.Errorf("err = %v, want ErrNoLimits", err)
	}
}

func TestMonthsObservable(t *testing.T) {
	obs := testPoleObserver()
	constraints := []Constraint{NewAltitudeConstraint(Limit{0}, nil)}
	up := TargetAt(0, 40)    // circumpolar from the pole
	down := TargetAt(0, -40) // never rises

	months, err := MonthsObservable(constraints, obs, 6*time.Hour, up, down)
	if err != nil {
		t.Fatal(err)
	}
	if len(months) != 2 {
		t.Fatalf("got %d month lists, want 2", len(months))
	}
	if len(months[0]) != 12 {
		t.Errorf("circumpolar target observable in %d months, want 12", len(months[0]))
	}
	for i := 1; i < len(months[0]); i++ {
		if months[0][i-1] >= months[0][i] {
			t.Fatalf("months not sorted ascending: %v", months[0])
		}
	}
	if len(months[1]) != 0 {
		t.Errorf("never-rising target observable in %v", months[1])
	}
}
