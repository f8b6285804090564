/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package zone

import (
	"fmt"
	"time"
)

// Resolver resolves timezone names into zones. It is the localization
// capability injected into the matching engine. Implementations must be safe
// for concurrent use.
type Resolver interface {
	// Zone resolves a timezone name, e.g. "America/New_York".
	Zone(name string) (Zone, error)
}

// Zone localizes times in a single timezone.
type Zone interface {
	// Convert expresses the instant in this zone's wall clock.
	Convert(t time.Time) time.Time

	// Localize resolves a naive wall-clock datetime in this zone to an
	// instant, with seconds and subseconds zeroed. Returns a
	// NonexistentTimeError when the wall-clock time falls inside a daylight
	// saving forward gap and so does not exist. Wall-clock times duplicated
	// by a backward transition resolve to the later of the two instants.
	Localize(year int, month time.Month, day, hour, minute int) (time.Time, error)
}

// NonexistentTimeError is an error type that signals a wall-clock time
// skipped by a daylight saving transition.
type NonexistentTimeError struct {
	err string
}

func (n NonexistentTimeError) Error() string {
	return n.err
}

func IsNonexistentTime(err error) bool {
	_, ok := err.(NonexistentTimeError)
	return ok
}

// Database resolves zones from the Go timezone database.
type Database struct{}

func (Database) Zone(name string) (Zone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}

	return location{name: name, loc: loc}, nil
}

// UTCOnly is the fallback resolver used when no timezone database is
// available. Resolving any name fails.
type UTCOnly struct{}

func (UTCOnly) Zone(name string) (Zone, error) {
	return nil, fmt.Errorf("timezone %q requested but no timezone database is available", name)
}

// location is a Zone backed by a time.Location.
type location struct {
	name string
	loc  *time.Location
}

func (l location) Convert(t time.Time) time.Time {
	return t.In(l.loc)
}

func (l location) Localize(year int, month time.Month, day, hour, minute int) (time.Time, error) {
	t := time.Date(year, month, day, hour, minute, 0, 0, l.loc)

	// time.Date normalizes a wall-clock time inside a forward gap to a real
	// instant on one side of the transition. A round-trip through the zone
	// exposes the shift.
	if !sameWallClock(t, year, month, day, hour, minute) {
		return time.Time{}, NonexistentTimeError{err: fmt.Sprintf(
			"local time %04d-%02d-%02d %02d:%02d does not exist in %q",
			year, month, day, hour, minute, l.name,
		)}
	}

	// A wall-clock time duplicated by a backward transition resolves to the
	// pre-transition pass. Re-derive the instant from the offset in force
	// after the transition and prefer the later pass when it carries the
	// same wall clock, so callers scanning forward in time never observe an
	// instant behind their start.
	naive := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	_, offset := t.Add(12 * time.Hour).Zone()
	u := naive.Add(-time.Duration(offset) * time.Second).In(l.loc)
	if u.After(t) && sameWallClock(u, year, month, day, hour, minute) {
		return u, nil
	}

	return t, nil
}

func sameWallClock(t time.Time, year int, month time.Month, day, hour, minute int) bool {
	return t.Year() == year && t.Month() == month && t.Day() == day &&
		t.Hour() == hour && t.Minute() == minute
}
