// Package astroplan decides which astronomical targets are observable from
// a ground site over a span of time, subject to a composable set of
// constraints: target altitude and airmass, night time, solar and lunar
// separation, lunar illumination, local-clock windows, and absolute time
// windows.
//
// A Constraint maps (targets × times) to an observability matrix; aggregate
// queries AND-reduce any number of constraints and answer whether each
// target is ever observable, always observable, or observable in which
// calendar months.
//
//	obs := astroplan.NewObserver("Goldstone", 35.4267, -116.8900)
//	cons := []astroplan.Constraint{
//		astroplan.NewAltitudeConstraint(astroplan.Limit{30}, nil),
//		astroplan.AtNightAstronomical(),
//	}
//	ever, err := astroplan.IsObservable(cons, obs,
//		astroplan.OverRange(start, end, 30*time.Minute), vega, sirius)
package astroplan
