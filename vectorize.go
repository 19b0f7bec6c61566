package astroplan

import (
	"fmt"
	"time"
)

// Vectorize merges several constraints of the same kind, each carrying
// scalar limits, into one constraint whose limits hold a distinct bound
// per target. Evaluating the merged constraint against N targets replaces
// N separate evaluations.
//
// The merge is all-or-nothing per limit name: a limit set on some
// instances and unset on others fails with ErrMixedLimits, and an instance
// that already carries a per-target limit fails with ErrNotScalarLimit.
func Vectorize(constraints ...Constraint) (Constraint, error) {
	if len(constraints) == 0 {
		return nil, fmt.Errorf("vectorize: empty constraint list")
	}

	switch constraints[0].(type) {
	case *AltitudeConstraint:
		list, err := assertKind[*AltitudeConstraint](constraints)
		if err != nil {
			return nil, err
		}
		min, err := mergeLimits(list, func(c *AltitudeConstraint) Limit { return c.min })
		if err != nil {
			return nil, err
		}
		max, err := mergeLimits(list, func(c *AltitudeConstraint) Limit { return c.max })
		if err != nil {
			return nil, err
		}
		boolean := true
		for _, c := range list {
			boolean = boolean && c.BooleanConstraint
		}
		return &AltitudeConstraint{min: min, max: max, BooleanConstraint: boolean}, nil

	case *AirmassConstraint:
		list, err := assertKind[*AirmassConstraint](constraints)
		if err != nil {
			return nil, err
		}
		min, err := mergeLimits(list, func(c *AirmassConstraint) Limit { return c.min })
		if err != nil {
			return nil, err
		}
		max, err := mergeLimits(list, func(c *AirmassConstraint) Limit { return c.max })
		if err != nil {
			return nil, err
		}
		boolean := false
		for _, c := range list {
			boolean = boolean || c.BooleanConstraint
		}
		return &AirmassConstraint{min: min, max: max, BooleanConstraint: boolean}, nil

	case *AtNightConstraint:
		list, err := assertKind[*AtNightConstraint](constraints)
		if err != nil {
			return nil, err
		}
		max, err := mergeLimits(list, func(c *AtNightConstraint) Limit { return c.maxSolarAltitude })
		if err != nil {
			return nil, err
		}
		zero := false
		for _, c := range list {
			zero = zero || c.ForcePressureZero
		}
		return &AtNightConstraint{maxSolarAltitude: max, ForcePressureZero: zero}, nil

	case *SunSeparationConstraint:
		list, err := assertKind[*SunSeparationConstraint](constraints)
		if err != nil {
			return nil, err
		}
		min, err := mergeLimits(list, func(c *SunSeparationConstraint) Limit { return c.min })
		if err != nil {
			return nil, err
		}
		max, err := mergeLimits(list, func(c *SunSeparationConstraint) Limit { return c.max })
		if err != nil {
			return nil, err
		}
		return &SunSeparationConstraint{min: min, max: max}, nil

	case *MoonSeparationConstraint:
		list, err := assertKind[*MoonSeparationConstraint](constraints)
		if err != nil {
			return nil, err
		}
		min, err := mergeLimits(list, func(c *MoonSeparationConstraint) Limit { return c.min })
		if err != nil {
			return nil, err
		}
		max, err := mergeLimits(list, func(c *MoonSeparationConstraint) Limit { return c.max })
		if err != nil {
			return nil, err
		}
		return &MoonSeparationConstraint{min: min, max: max}, nil

	case *MoonIlluminationConstraint:
		list, err := assertKind[*MoonIlluminationConstraint](constraints)
		if err != nil {
			return nil, err
		}
		min, err := mergeLimits(list, func(c *MoonIlluminationConstraint) Limit { return c.min })
		if err != nil {
			return nil, err
		}
		max, err := mergeLimits(list, func(c *MoonIlluminationConstraint) Limit { return c.max })
		if err != nil {
			return nil, err
		}
		return &MoonIlluminationConstraint{min: min, max: max}, nil

	case *LocalTimeConstraint:
		list, err := assertKind[*LocalTimeConstraint](constraints)
		if err != nil {
			return nil, err
		}
		min, err := mergeTimesOfDay(list, func(c *LocalTimeConstraint) []TimeOfDay { return c.min })
		if err != nil {
			return nil, err
		}
		max, err := mergeTimesOfDay(list, func(c *LocalTimeConstraint) []TimeOfDay { return c.max })
		if err != nil {
			return nil, err
		}
		return &LocalTimeConstraint{min: min, max: max}, nil

	case *TimeWindowConstraint:
		list, err := assertKind[*TimeWindowConstraint](constraints)
		if err != nil {
			return nil, err
		}
		min, err := mergeInstants(list, func(c *TimeWindowConstraint) []time.Time { return c.min })
		if err != nil {
			return nil, err
		}
		max, err := mergeInstants(list, func(c *TimeWindowConstraint) []time.Time { return c.max })
		if err != nil {
			return nil, err
		}
		return &TimeWindowConstraint{min: min, max: max}, nil

	default:
		return nil, fmt.Errorf("vectorize: unsupported constraint type %T", constraints[0])
	}
}

func assertKind[T Constraint](constraints []Constraint) ([]T, error) {
	out := make([]T, len(constraints))
	for i, c := range constraints {
		t, ok := c.(T)
		if !ok {
			return nil, fmt.Errorf("vectorize: mixed constraint kinds (%T and %T)", constraints[0], c)
		}
		out[i] = t
	}
	return out, nil
}

func mergeLimits[T any](list []T, get func(T) Limit) (Limit, error) {
	unset := 0
	for _, c := range list {
		if get(c) == nil {
			unset++
		}
	}
	if unset == len(list) {
		return nil, nil
	}
	if unset > 0 {
		return nil, ErrMixedLimits
	}
	out := make(Limit, len(list))
	for i, c := range list {
		l := get(c)
		if !l.scalar() {
			return nil, ErrNotScalarLimit
		}
		out[i] = l[0]
	}
	return out, nil
}

func mergeTimesOfDay[T any](list []T, get func(T) []TimeOfDay) ([]TimeOfDay, error) {
	out := make([]TimeOfDay, len(list))
	for i, c := range list {
		s := get(c)
		if len(s) != 1 {
			return nil, ErrNotScalarLimit
		}
		out[i] = s[0]
	}
	return out, nil
}

func mergeInstants[T any](list []T, get func(T) []time.Time) ([]time.Time, error) {
	unset := 0
	for _, c := range list {
		if get(c) == nil {
			unset++
		}
	}
	if unset == len(list) {
		return nil, nil
	}
	if unset > 0 {
		return nil, ErrMixedLimits
	}
	out := make([]time.Time, len(list))
	for i, c := range list {
		s := get(c)
		if len(s) != 1 {
			return nil, ErrNotScalarLimit
		}
		out[i] = s[0]
	}
	return out, nil
}
