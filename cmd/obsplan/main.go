// Command obsplan evaluates observability constraints for targets from a
// ground site and prints an observability table, a months-observable
// report, or an interactive browser.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathan-osman/go-sunrise"
	"golang.org/x/term"

	"github.com/astroplanners/astroplan"
	"github.com/astroplanners/astroplan/internal/astro"
	"github.com/astroplanners/astroplan/internal/logging"
	"github.com/astroplanners/astroplan/internal/ui"
	"github.com/astroplanners/astroplan/internal/version"
)

// targetList collects repeated -target flags.
type targetList []string

func (t *targetList) String() string { return strings.Join(*t, ",") }

func (t *targetList) Set(v string) error {
	*t = append(*t, v)
	return nil
}

func main() {
	var targets targetList

	site := flag.String("site", "", "Observer location as lat,lon in degrees (east positive)")
	siteName := flag.String("site-name", "site", "Observer site name")
	elevation := flag.Float64("elevation", 0, "Observer elevation in meters")
	pressure := flag.Float64("pressure", astroplan.StandardPressure, "Atmospheric pressure in hPa (0 disables refraction)")
	tzName := flag.String("tz", "UTC", "Observer timezone (IANA name)")
	flag.Var(&targets, "target", "Target: a bright-star name, Name=RA,Dec, or RA,Dec in degrees (repeatable)")

	from := flag.String("from", "", "Start of the evaluation range (RFC3339 or YYYY-MM-DD)")
	to := flag.String("to", "", "End of the evaluation range (RFC3339 or YYYY-MM-DD)")
	step := flag.Duration("step", astroplan.DefaultGridResolution, "Time grid resolution")

	minAlt := flag.Float64("min-alt", math.NaN(), "Minimum target altitude in degrees")
	maxAlt := flag.Float64("max-alt", math.NaN(), "Maximum target altitude in degrees")
	maxAirmass := flag.Float64("max-airmass", math.NaN(), "Maximum airmass")
	twilight := flag.String("twilight", "", "Night-time requirement: horizon, civil, nautical, or astronomical")
	minSunSep := flag.Float64("min-sun-sep", math.NaN(), "Minimum Sun separation in degrees")
	minMoonSep := flag.Float64("min-moon-sep", math.NaN(), "Minimum Moon separation in degrees")
	moonPhase := flag.String("moon", "", "Lunar illumination requirement: dark, grey, or bright")
	localWindow := flag.String("local-window", "", "Local clock window, e.g. 23:50-04:08")

	monthsMode := flag.Bool("months", false, "Report which calendar months each target is observable")
	tuiMode := flag.Bool("tui", false, "Browse the result interactively")
	ephemPath := flag.String("ephem", "", "Path to a binary JPL ephemeris file (default: built-in analytic series)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("obsplan", version.Version)
		return
	}

	log := logging.New(logging.ParseLevel(*logLevel), os.Stderr).Named("obsplan")

	observer, err := buildObserver(*site, *siteName, *elevation, *pressure, *tzName)
	if err != nil {
		log.Errorf("site: %v", err)
		os.Exit(1)
	}

	if *ephemPath != "" {
		jpl, err := astroplan.OpenJPLEphemeris(*ephemPath)
		if err != nil {
			log.Errorf("ephemeris: %v", err)
			os.Exit(1)
		}
		defer jpl.Close()
		observer.SetEphemeris(jpl)
		log.Debugf("using JPL ephemeris %s", *ephemPath)
	}

	fixed, err := resolveTargets(targets)
	if err != nil {
		log.Errorf("targets: %v", err)
		os.Exit(1)
	}
	if len(fixed) == 0 {
		log.Errorf("no targets given; use -target")
		os.Exit(1)
	}

	constraints, err := buildConstraints(*minAlt, *maxAlt, *maxAirmass, *twilight,
		*minSunSep, *minMoonSep, *moonPhase, *localWindow)
	if err != nil {
		log.Errorf("constraints: %v", err)
		os.Exit(1)
	}
	log.Debugf("%d constraints, %d targets", len(constraints), len(fixed))

	if *monthsMode {
		if err := runMonths(constraints, observer, *step, fixed); err != nil {
			log.Errorf("months: %v", err)
			os.Exit(1)
		}
		return
	}

	spec, err := buildTimeSpec(*from, *to, *step)
	if err != nil {
		log.Errorf("time range: %v", err)
		os.Exit(1)
	}

	table, err := astroplan.ComputeObservabilityTable(constraints, observer, spec, fixed...)
	if err != nil {
		log.Errorf("evaluate: %v", err)
		os.Exit(1)
	}

	if *tuiMode {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			log.Errorf("-tui requires a terminal")
			os.Exit(1)
		}
		p := tea.NewProgram(ui.NewBrowser(table, nil), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Errorf("tui: %v", err)
			os.Exit(1)
		}
		return
	}

	printDayContext(observer, table.Times[0])
	fmt.Print(ui.RenderTable(table))
}

// buildObserver parses the site flags.
func buildObserver(site, name string, elevation, pressure float64, tzName string) (*astroplan.Observer, error) {
	lat, lon, err := parseLatLon(site)
	if err != nil {
		return nil, err
	}
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", tzName, err)
	}
	o := astroplan.NewObserver(name, lat, lon)
	o.Elevation = elevation
	o.Pressure = pressure
	o.Timezone = tz
	return o, nil
}

func parseLatLon(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want lat,lon, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

// resolveTargets turns -target values into fixed targets: catalog names,
// Name=RA,Dec pairs, or bare RA,Dec coordinates.
func resolveTargets(specs []string) ([]astroplan.FixedTarget, error) {
	out := make([]astroplan.FixedTarget, 0, len(specs))
	for _, s := range specs {
		if name, coords, ok := strings.Cut(s, "="); ok {
			ra, dec, err := parseLatLonLike(coords)
			if err != nil {
				return nil, fmt.Errorf("target %q: %w", s, err)
			}
			out = append(out, astroplan.NewFixedTarget(name, ra, dec))
			continue
		}
		if star, ok := astro.LookupStar(s); ok {
			out = append(out, astroplan.NewFixedTarget(star.Name, star.RAdeg, star.DecDeg))
			continue
		}
		ra, dec, err := parseLatLonLike(s)
		if err != nil {
			return nil, fmt.Errorf("target %q: not a known star and not RA,Dec", s)
		}
		out = append(out, astroplan.TargetAt(ra, dec))
	}
	return out, nil
}

func parseLatLonLike(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want two comma-separated values")
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// buildConstraints assembles the constraint list from the CLI flags.
func buildConstraints(minAlt, maxAlt, maxAirmass float64, twilight string,
	minSunSep, minMoonSep float64, moonPhase, localWindow string) ([]astroplan.Constraint, error) {

	var cons []astroplan.Constraint

	if !math.IsNaN(minAlt) || !math.IsNaN(maxAlt) {
		var lo, hi astroplan.Limit
		if !math.IsNaN(minAlt) {
			lo = astroplan.Limit{minAlt}
		}
		if !math.IsNaN(maxAlt) {
			hi = astroplan.Limit{maxAlt}
		}
		cons = append(cons, astroplan.NewAltitudeConstraint(lo, hi))
	}

	if !math.IsNaN(maxAirmass) {
		cons = append(cons, astroplan.NewAirmassConstraint(astroplan.Limit{maxAirmass}))
	}

	switch twilight {
	case "":
	case "horizon":
		cons = append(cons, astroplan.NewAtNightConstraint(nil))
	case "civil":
		cons = append(cons, astroplan.AtNightCivil())
	case "nautical":
		cons = append(cons, astroplan.AtNightNautical())
	case "astronomical":
		cons = append(cons, astroplan.AtNightAstronomical())
	default:
		return nil, fmt.Errorf("unknown twilight %q", twilight)
	}

	if !math.IsNaN(minSunSep) {
		cons = append(cons, astroplan.NewSunSeparationConstraint(astroplan.Limit{minSunSep}, nil))
	}
	if !math.IsNaN(minMoonSep) {
		cons = append(cons, astroplan.NewMoonSeparationConstraint(astroplan.Limit{minMoonSep}, nil))
	}

	switch moonPhase {
	case "":
	case "dark":
		cons = append(cons, astroplan.MoonDark())
	case "grey", "gray":
		cons = append(cons, astroplan.MoonGrey())
	case "bright":
		cons = append(cons, astroplan.MoonBright())
	default:
		return nil, fmt.Errorf("unknown moon phase %q", moonPhase)
	}

	if localWindow != "" {
		lo, hi, err := parseLocalWindow(localWindow)
		if err != nil {
			return nil, err
		}
		c, err := astroplan.NewLocalTimeConstraint(&lo, &hi)
		if err != nil {
			return nil, err
		}
		cons = append(cons, c)
	}

	if len(cons) == 0 {
		// A bare run answers "when is it up at night".
		cons = append(cons, astroplan.NewAltitudeConstraint(astroplan.Limit{0}, nil),
			astroplan.AtNightCivil())
	}
	return cons, nil
}

// parseLocalWindow parses "HH:MM-HH:MM".
func parseLocalWindow(s string) (lo, hi astroplan.TimeOfDay, err error) {
	first, second, ok := strings.Cut(s, "-")
	if !ok {
		return lo, hi, fmt.Errorf("local window %q: want HH:MM-HH:MM", s)
	}
	lo, err = parseClock(first)
	if err != nil {
		return lo, hi, err
	}
	hi, err = parseClock(second)
	return lo, hi, err
}

func parseClock(s string) (astroplan.TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return astroplan.TimeOfDay{}, fmt.Errorf("clock time %q: %w", s, err)
	}
	return astroplan.ClockTime(t.Hour(), t.Minute()), nil
}

// buildTimeSpec parses the range flags; the default range is tonight.
func buildTimeSpec(from, to string, step time.Duration) (astroplan.TimeSpec, error) {
	if from == "" && to == "" {
		start := time.Now().Truncate(time.Hour)
		return astroplan.OverRange(start, start.Add(24*time.Hour), step), nil
	}
	start, err := parseInstant(from)
	if err != nil {
		return astroplan.TimeSpec{}, err
	}
	end, err := parseInstant(to)
	if err != nil {
		return astroplan.TimeSpec{}, err
	}
	return astroplan.OverRange(start, end, step), nil
}

func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("instant %q: want RFC3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

func runMonths(constraints []astroplan.Constraint, observer *astroplan.Observer,
	step time.Duration, targets []astroplan.FixedTarget) error {

	months, err := astroplan.MonthsObservable(constraints, observer, step, targets...)
	if err != nil {
		return err
	}
	for i, tgt := range targets {
		names := make([]string, len(months[i]))
		for k, m := range months[i] {
			names[k] = m.String()[:3]
		}
		if len(names) == 0 {
			fmt.Printf("%-16s never observable\n", tgt.Name)
			continue
		}
		fmt.Printf("%-16s %s\n", tgt.Name, strings.Join(names, " "))
	}
	return nil
}

// printDayContext prints sunrise/sunset for the first sampled day as a
// quick sanity reference next to the table.
func printDayContext(o *astroplan.Observer, t time.Time) {
	local := t.In(o.Timezone)
	rise, set := sunrise.SunriseSunset(o.Latitude, o.Longitude,
		local.Year(), local.Month(), local.Day())
	fmt.Printf("%s  sunrise %s  sunset %s\n\n",
		local.Format("2006-01-02"),
		rise.In(o.Timezone).Format("15:04"),
		set.In(o.Timezone).Format("15:04"))
}
