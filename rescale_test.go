package astroplan

import "testing"

func TestMinBestRescale(t *testing.T) {
	tests := []struct {
		name        string
		vals        []float64
		min, max    float64
		lessThanMin float64
		want        []float64
	}{
		{
			name:        "airmass style, below min disregarded",
			vals:        []float64{1, 1.5, 2, 3, 0},
			min:         1,
			max:         2.25,
			lessThanMin: 0,
			want:        []float64{1.0, 0.6, 0.2, 0.0, 0.0},
		},
		{
			name:        "below min counts as perfect",
			vals:        []float64{0.5, 1, 2.25},
			min:         1,
			max:         2.25,
			lessThanMin: 1,
			want:        []float64{1, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinBestRescale(tt.vals, tt.min, tt.max, tt.lessThanMin)
			if len(got) != len(tt.want) {
				t.Fatalf("length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !approxEqual(got[i], tt.want[i], 1e-12) {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMaxBestRescale(t *testing.T) {
	tests := []struct {
		name           string
		vals           []float64
		min, max       float64
		greaterThanMax float64
		want           []float64
	}{
		{
			name:           "altitude style, above max stays perfect",
			vals:           []float64{20, 30, 40, 45, 55, 70},
			min:            35,
			max:            60,
			greaterThanMax: 1,
			want:           []float64{0, 0, 0.2, 0.4, 0.8, 1.0},
		},
		{
			name:           "above max clipped to zero",
			vals:           []float64{70, 60, 47.5},
			min:            35,
			max:            60,
			greaterThanMax: 0,
			want:           []float64{0, 1, 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxBestRescale(tt.vals, tt.min, tt.max, tt.greaterThanMax)
			if len(got) != len(tt.want) {
				t.Fatalf("length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !approxEqual(got[i], tt.want[i], 1e-12) {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRescaleBoundaries(t *testing.T) {
	// Exact bounds belong to the linear ramp, not the clamp regions.
	if got := minBestScore(1, 1, 2, 0.5); got != 1 {
		t.Errorf("minBestScore at min = %v, want 1", got)
	}
	if got := minBestScore(2, 1, 2, 0.5); got != 0 {
		t.Errorf("minBestScore at max = %v, want 0", got)
	}
	if got := maxBestScore(35, 35, 60, 0.5); got != 0 {
		t.Errorf("maxBestScore at min = %v, want 0", got)
	}
	if got := maxBestScore(60, 35, 60, 0.5); got != 1 {
		t.Errorf("maxBestScore at max = %v, want 1", got)
	}
}
