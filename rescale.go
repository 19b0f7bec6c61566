package astroplan

// MinBestRescale maps values onto a [0, 1] desirability score where minVal
// is best (scores 1) and maxVal is worst (scores 0). Values above maxVal
// clamp to 0; values below minVal take lessThanMin, so that the same
// function serves both "anything better than min is still perfect"
// (lessThanMin=1) and "anything outside the range is worthless"
// (lessThanMin=0) policies.
//
//	MinBestRescale([]float64{1, 1.5, 2, 3, 0}, 1, 2.25, 0)
//	// [1.0, 0.6, 0.2, 0.0, 0.0]
func MinBestRescale(vals []float64, minVal, maxVal, lessThanMin float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = minBestScore(v, minVal, maxVal, lessThanMin)
	}
	return out
}

// MaxBestRescale is the mirror of MinBestRescale: maxVal is best (scores
// 1), minVal is worst (scores 0), values below minVal clamp to 0 and
// values above maxVal take greaterThanMax.
//
//	MaxBestRescale([]float64{20, 30, 40, 45, 55, 70}, 35, 60, 1)
//	// [0, 0, 0.2, 0.4, 0.8, 1.0]
func MaxBestRescale(vals []float64, minVal, maxVal, greaterThanMax float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = maxBestScore(v, minVal, maxVal, greaterThanMax)
	}
	return out
}

func minBestScore(v, minVal, maxVal, lessThanMin float64) float64 {
	switch {
	case v < minVal:
		return lessThanMin
	case v > maxVal:
		return 0
	default:
		return (v - maxVal) / (minVal - maxVal)
	}
}

func maxBestScore(v, minVal, maxVal, greaterThanMax float64) float64 {
	switch {
	case v < minVal:
		return 0
	case v > maxVal:
		return greaterThanMax
	default:
		return (v - minVal) / (maxVal - minVal)
	}
}
