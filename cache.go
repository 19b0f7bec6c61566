package astroplan

import (
	"strings"
	"time"
)

// AltAzSeries holds horizontal coordinates for a set of targets over a set
// of times, indexed [target][time], in degrees.
type AltAzSeries struct {
	Alt [][]float64
	Az  [][]float64
}

// moonSeries holds the per-time lunar state: topocentric altitude and
// azimuth in degrees plus illuminated fraction in [0, 1].
type moonSeries struct {
	Alt   []float64
	Az    []float64
	Illum []float64
}

// skyCache memoizes derived astrometric quantities for one observer. Keys
// are the structural identity of the exact (time sequence, target set)
// pair; entries are never evicted, so the cache lives as long as the
// observer. Not safe for concurrent use: evaluation against a shared
// observer must be externally serialized.
type skyCache struct {
	altaz   map[string]*AltAzSeries
	sunAlt  map[string][]float64
	moon    map[string]*moonSeries
	transit map[string][]time.Time
}

func newSkyCache() *skyCache {
	return &skyCache{
		altaz:   make(map[string]*AltAzSeries),
		sunAlt:  make(map[string][]float64),
		moon:    make(map[string]*moonSeries),
		transit: make(map[string][]time.Time),
	}
}

// targetsKey returns the structural identity of a target set.
func targetsKey(targets []FixedTarget) string {
	var b strings.Builder
	for _, t := range targets {
		b.WriteString(t.key())
		b.WriteByte('|')
	}
	return b.String()
}
