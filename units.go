// Package readable converts between human-readable duration expressions such
// as "1y 2mo 3w 4d 5h 6m 7s 8ms" and millisecond counts.
//
// Months and years are fixed multiples of a day (30 and 365 days), they are
// not calendar-accurate.
package readable

import (
	"strings"
	"time"
)

// Unit is a duration unit, ordered by magnitude.
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
	msPerMonth  = 30 * msPerDay
	msPerYear   = 365 * msPerDay
)

var unitLengths = [...]int64{
	Millisecond: 1,
	Second:      msPerSecond,
	Minute:      msPerMinute,
	Hour:        msPerHour,
	Day:         msPerDay,
	Week:        msPerWeek,
	Month:       msPerMonth,
	Year:        msPerYear,
}

var unitNames = [...]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	Month:       "month",
	Year:        "year",
}

// Units returns all units in ascending order of magnitude.
func Units() []Unit {
	return []Unit{Millisecond, Second, Minute, Hour, Day, Week, Month, Year}
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	return u >= Millisecond && u <= Year
}

// Milliseconds returns the fixed length of the unit in milliseconds.
// It returns 0 for an unknown unit.
func (u Unit) Milliseconds() int64 {
	if !u.Valid() {
		return 0
	}
	return unitLengths[u]
}

// String returns the canonical unit name, e.g. "minute".
func (u Unit) String() string {
	if !u.Valid() {
		return "unknown"
	}
	return unitNames[u]
}

// ParseUnit looks up a unit by its canonical name, case-insensitively.
func ParseUnit(name string) (Unit, bool) {
	for _, u := range Units() {
		if strings.EqualFold(unitNames[u], name) {
			return u, true
		}
	}
	return 0, false
}

// ToDuration converts a millisecond count to a time.Duration, truncating
// anything below a nanosecond.
func ToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// FromDuration converts d to milliseconds, keeping the sub-millisecond part
// as a fraction.
func FromDuration(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
