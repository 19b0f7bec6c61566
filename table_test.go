package astroplan

import (
	"testing"
	"time"
)

func TestComputeObservabilityTable(t *testing.T) {
	obs := testPoleObserver()
	t0 := time.Date(2024, 7, 15, 4, 0, 0, 0, time.UTC)
	times := []time.Time{t0, t0.Add(time.Hour), t0.Add(2 * time.Hour), t0.Add(3 * time.Hour)}

	always := NewFixedTarget("circumpolar", 0, 40)
	never := NewFixedTarget("southern", 180, -40)

	tab, err := ComputeObservabilityTable(
		[]Constraint{NewAltitudeConstraint(Limit{0}, nil)},
		obs, AtTimes(times...), always, never,
	)
	if err != nil {
		t.Fatal(err)
	}

	if len(tab.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(tab.Rows))
	}
	tests := []struct {
		row      TargetObservability
		name     string
		ever     bool
		always   bool
		fraction float64
	}{
		{tab.Rows[0], "circumpolar", true, true, 1},
		{tab.Rows[1], "southern", false, false, 0},
	}
	for _, tt := range tests {
		if tt.row.TargetName != tt.name {
			t.Errorf("row name = %q, want %q", tt.row.TargetName, tt.name)
		}
		if tt.row.EverObservable != tt.ever || tt.row.AlwaysObservable != tt.always {
			t.Errorf("%s: ever/always = %v/%v, want %v/%v",
				tt.name, tt.row.EverObservable, tt.row.AlwaysObservable, tt.ever, tt.always)
		}
		if tt.row.FractionObservable != tt.fraction {
			t.Errorf("%s: fraction = %v, want %v", tt.name, tt.row.FractionObservable, tt.fraction)
		}
	}

	if len(tab.Times) != len(times) {
		t.Errorf("table carries %d times, want %d", len(tab.Times), len(times))
	}
	if tab.Observer != obs {
		t.Error("table does not carry the observer")
	}
	if len(tab.Constraints) != 1 {
		t.Errorf("table carries %d constraints, want 1", len(tab.Constraints))
	}
}

func TestObservabilityTableFraction(t *testing.T) {
	obs := testPoleObserver()
	t0 := time.Date(2024, 7, 15, 4, 0, 0, 0, time.UTC)
	times := []time.Time{t0, t0.Add(time.Hour), t0.Add(2 * time.Hour), t0.Add(3 * time.Hour)}

	// Window open strictly between the first and last samples: two of the
	// four instants pass.
	window, err := NewTimeWindowConstraint(&times[0], &times[3])
	if err != nil {
		t.Fatal(err)
	}
	tab, err := ComputeObservabilityTable(
		[]Constraint{NewAltitudeConstraint(Limit{0}, nil), window},
		obs, AtTimes(times...), NewFixedTarget("circumpolar", 0, 40),
	)
	if err != nil {
		t.Fatal(err)
	}
	row := tab.Rows[0]
	if !row.EverObservable || row.AlwaysObservable {
		t.Errorf("ever/always = %v/%v, want true/false", row.EverObservable, row.AlwaysObservable)
	}
	if row.FractionObservable != 0.5 {
		t.Errorf("fraction = %v, want 0.5", row.FractionObservable)
	}
}
