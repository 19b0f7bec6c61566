// Package version provides build and version information.
package version

// Version is the current library version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - JPL ephemeris source, months-observable query, TUI table browser
// 0.2.0 - Moon separation/illumination constraints, limit vectorization
// 0.1.0 - Initial release: altitude/airmass/night constraints, observability table
