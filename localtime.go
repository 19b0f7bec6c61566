package astroplan

import "time"

// TimeOfDay is a wall-clock time with no date. Location, when set, pins
// the clock to a specific timezone; otherwise the constraint falls back to
// the observer's timezone.
type TimeOfDay struct {
	Hour, Minute, Second int
	Location             *time.Location
}

// ClockTime builds a TimeOfDay from hours and minutes.
func ClockTime(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

// In returns a copy pinned to a timezone.
func (td TimeOfDay) In(loc *time.Location) TimeOfDay {
	td.Location = loc
	return td
}

func (td TimeOfDay) seconds() int {
	return td.Hour*3600 + td.Minute*60 + td.Second
}

// LocalTimeConstraint bounds the local clock time of each instant. When
// min < max the window lies within one day and the bounds are inclusive;
// when min >= max the window straddles midnight and an instant passes if
// it is at or after min or at or before max. min == max therefore admits
// the whole day.
type LocalTimeConstraint struct {
	min []TimeOfDay
	max []TimeOfDay
}

// NewLocalTimeConstraint bounds observations between two wall-clock times.
// At least one bound is required; an unset min defaults to 00:00:00 and an
// unset max to 23:59:59. The timezone comes from whichever bound carries
// one, else from the observer.
func NewLocalTimeConstraint(min, max *TimeOfDay) (*LocalTimeConstraint, error) {
	if min == nil && max == nil {
		return nil, ErrNoLimits
	}
	lo := TimeOfDay{}
	if min != nil {
		lo = *min
	}
	hi := TimeOfDay{Hour: 23, Minute: 59, Second: 59}
	if max != nil {
		hi = *max
	}
	return &LocalTimeConstraint{min: []TimeOfDay{lo}, max: []TimeOfDay{hi}}, nil
}

func timeOfDayAt(s []TimeOfDay, i int) TimeOfDay {
	if len(s) == 1 {
		return s[0]
	}
	return s[i]
}

// Compute implements Constraint. The clock time is a per-time quantity
// tiled explicitly across the target dimension.
func (c *LocalTimeConstraint) Compute(times []time.Time, observer *Observer, targets []FixedTarget) (*Matrix, error) {
	if len(c.min) > 1 && len(c.min) != len(targets) {
		return nil, ErrLimitShape
	}
	if len(c.max) > 1 && len(c.max) != len(targets) {
		return nil, ErrLimitShape
	}

	tz := c.timezone(observer)

	secs := make([]int, len(times))
	for j, t := range times {
		local := t.In(tz)
		secs[j] = local.Hour()*3600 + local.Minute()*60 + local.Second()
	}

	m := newBoolMatrix(len(targets), len(times))
	for i := range targets {
		lo := timeOfDayAt(c.min, i).seconds()
		hi := timeOfDayAt(c.max, i).seconds()
		for j := range times {
			var ok bool
			if lo < hi {
				ok = lo <= secs[j] && secs[j] <= hi
			} else {
				ok = secs[j] >= lo || secs[j] <= hi
			}
			m.setBool(i, j, ok)
		}
	}
	return m, nil
}

func (c *LocalTimeConstraint) timezone(observer *Observer) *time.Location {
	for _, td := range c.min {
		if td.Location != nil {
			return td.Location
		}
	}
	for _, td := range c.max {
		if td.Location != nil {
			return td.Location
		}
	}
	if observer != nil && observer.Timezone != nil {
		return observer.Timezone
	}
	return time.UTC
}
