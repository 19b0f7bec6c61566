package astroplan

import (
	"fmt"
	"strconv"
	"strings"
)

// FixedTarget is a named, fixed J2000 celestial coordinate. Targets are
// immutable once constructed; identity for caching purposes is the name
// plus the coordinate values.
type FixedTarget struct {
	Name   string
	RAdeg  float64
	DecDeg float64
}

// NewFixedTarget builds a named target from RA/Dec in degrees.
func NewFixedTarget(name string, raDeg, decDeg float64) FixedTarget {
	return FixedTarget{Name: name, RAdeg: raDeg, DecDeg: decDeg}
}

// TargetAt wraps a bare coordinate into a target with a generated name.
// This is the evaluation-boundary equivalent of passing a raw coordinate.
func TargetAt(raDeg, decDeg float64) FixedTarget {
	return FixedTarget{
		Name:   fmt.Sprintf("J2000 %.4f%+.4f", raDeg, decDeg),
		RAdeg:  raDeg,
		DecDeg: decDeg,
	}
}

// key returns the structural identity used in cache keys.
func (t FixedTarget) key() string {
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteByte('/')
	b.WriteString(strconv.FormatFloat(t.RAdeg, 'g', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(t.DecDeg, 'g', -1, 64))
	return b.String()
}

func (t FixedTarget) String() string {
	return fmt.Sprintf("%s (ra=%.4f° dec=%+.4f°)", t.Name, t.RAdeg, t.DecDeg)
}
