/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package timespec

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/diagridio/go-groc/api"
	apierrors "github.com/diagridio/go-groc/api/errors"
	"github.com/diagridio/go-groc/zone"
)

const (
	// maxYearWraps bounds the month cycle. A day-of-month schedule can be
	// years from its next occurrence (Feb 29 waits up to 8 years around a
	// skipped century leap year); beyond this bound the schedule has no
	// occurrence at all.
	maxYearWraps = 8

	// maxGapProbes bounds the hourly forward probe out of a daylight saving
	// gap.
	maxGapProbes = 24
)

// specific matches calendar-constrained schedules: the configured ordinal
// occurrences of the configured weekdays (or explicit days of the month) in
// the configured months, at a fixed time of day, optionally evaluated in a
// named timezone.
type specific struct {
	ordinals  []int
	weekdays  []time.Weekday
	months    []time.Month
	monthdays []int
	hour      int
	minute    int

	// zone is nil when the schedule is naive UTC.
	zone zone.Zone

	log logr.Logger
}

// SpecificOptions are the options for creating a specific-time matcher.
type SpecificOptions struct {
	// Log is the logger used on the daylight saving probe path.
	Log logr.Logger

	// Spec is the parsed specific-time schedule.
	Spec *api.Specific

	// Zones resolves the schedule's timezone name, if it has one. Defaults
	// to zone.UTCOnly, which rejects every name.
	Zones zone.Resolver
}

// NewSpecific creates the matcher for a calendar-constrained schedule,
// applying field defaults and validating ranges once. The returned matcher
// never mutates.
func NewSpecific(opts SpecificOptions) (Interface, error) {
	spec := opts.Spec

	if spec.Weekdays != nil && spec.MonthDays != nil {
		return nil, apierrors.NewValidation("cannot supply both weekdays and monthdays")
	}

	ordinals := sets.New(spec.Ordinals...)
	if ordinals.Len() == 0 {
		ordinals = sets.New(1, 2, 3, 4, 5)
	}
	for o := range ordinals {
		if o < 1 || o > 5 {
			return nil, apierrors.NewValidation("ordinal %d out of range 1..5", o)
		}
	}

	weekdays := sets.New(spec.Weekdays...)
	if weekdays.Len() == 0 {
		weekdays = sets.New(
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		)
	}
	for w := range weekdays {
		if w < time.Sunday || w > time.Saturday {
			return nil, apierrors.NewValidation("weekday %d out of range 0..6", w)
		}
	}

	months := sets.New(spec.Months...)
	if months.Len() == 0 {
		for m := time.January; m <= time.December; m++ {
			months.Insert(m)
		}
	}
	for m := range months {
		if m < time.January || m > time.December {
			return nil, apierrors.NewValidation("month %d out of range 1..12", m)
		}
	}

	monthdays := sets.New(spec.MonthDays...)
	for d := range monthdays {
		if d < 1 || d > 31 {
			return nil, apierrors.NewValidation("monthday %d out of range 1..31", d)
		}
	}

	hour, minute, err := parseTimeOfDay(spec.TimeOfDay)
	if err != nil {
		return nil, err
	}

	s := &specific{
		ordinals:  sets.List(ordinals),
		weekdays:  sets.List(weekdays),
		months:    sets.List(months),
		monthdays: sets.List(monthdays),
		hour:      hour,
		minute:    minute,
		log:       opts.Log,
	}

	if spec.Timezone != "" {
		zones := opts.Zones
		if zones == nil {
			zones = zone.UTCOnly{}
		}

		z, err := zones.Zone(spec.Timezone)
		if err != nil {
			return nil, apierrors.NewValidation("cannot resolve timezone: %s", err)
		}
		s.zone = z
	}

	return s, nil
}

func (s *specific) Next(start time.Time) (time.Time, error) {
	local := start.UTC()
	if s.zone != nil {
		local = s.zone.Convert(start)
	}

	cursor := newMonthCursor(s.months, local.Month())

	for {
		month, wraps := cursor.next()
		if wraps > maxYearWraps {
			return time.Time{}, apierrors.NewUnresolvable(
				"no occurrence within %d years of %s", maxYearWraps,
				start.UTC().Format(time.RFC3339),
			)
		}

		year := local.Year() + wraps

		days := s.matchingDays(year, month)
		if year == local.Year() && month == local.Month() {
			days = trimPassed(days, local, s.hour, s.minute)
		}

		if len(days) == 0 {
			continue
		}

		return s.resolve(year, month, days[0])
	}
}

// matchingDays returns the sorted candidate days of the given month: the
// configured days of the month when supplied, otherwise the days selected by
// the ordinal and weekday sets. Days beyond the month's end are discarded.
func (s *specific) matchingDays(year int, month time.Month) []int {
	last := lastDay(year, month)

	if len(s.monthdays) > 0 {
		var days []int
		for _, day := range s.monthdays {
			if day <= last {
				days = append(days, day)
			}
		}

		return days
	}

	first := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())

	days := sets.New[int]()
	for _, ordinal := range s.ordinals {
		for _, weekday := range s.weekdays {
			day := (int(weekday)-first+7)%7 + 1 + 7*(ordinal-1)
			if day <= last {
				days.Insert(day)
			}
		}
	}

	return sets.List(days)
}

// trimPassed drops candidate days in the start's own month which are already
// in the past, including the start's day itself unless the schedule's time
// of day is still strictly ahead of the start's wall clock.
func trimPassed(days []int, local time.Time, hour, minute int) []int {
	for len(days) > 0 && days[0] < local.Day() {
		days = days[1:]
	}

	if len(days) > 0 && days[0] == local.Day() &&
		(local.Hour() > hour || (local.Hour() == hour && local.Minute() >= minute)) {
		days = days[1:]
	}

	return days
}

// resolve forms the candidate instant. Zoned schedules are localized, probing
// forward hour by hour out of daylight saving gaps.
func (s *specific) resolve(year int, month time.Month, day int) (time.Time, error) {
	candidate := time.Date(year, month, day, s.hour, s.minute, 0, 0, time.UTC)
	if s.zone == nil {
		return candidate, nil
	}

	for probe := 0; probe <= maxGapProbes; probe++ {
		t, err := s.zone.Localize(
			candidate.Year(), candidate.Month(), candidate.Day(),
			candidate.Hour(), candidate.Minute(),
		)
		if err == nil {
			return t.UTC(), nil
		}
		if !zone.IsNonexistentTime(err) {
			return time.Time{}, err
		}

		s.log.V(1).Info("local time does not exist, probing forward an hour",
			"candidate", candidate.Format("2006-01-02 15:04"))
		candidate = candidate.Add(time.Hour)
	}

	return time.Time{}, apierrors.NewUnresolvable(
		"no resolvable local time within %d hours of %04d-%02d-%02d %02d:%02d",
		maxGapProbes, year, month, day, s.hour, s.minute,
	)
}

// parseTimeOfDay parses the parser's "H:MM"/"HH:MM" clock string. Empty means
// midnight.
func parseTimeOfDay(str string) (int, int, error) {
	if str == "" {
		return 0, 0, nil
	}

	hourStr, minuteStr, ok := strings.Cut(str, ":")
	if !ok {
		return 0, 0, apierrors.NewValidation("time of day %q is not of the form HH:MM", str)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, apierrors.NewValidation("time of day %q has an invalid hour", str)
	}

	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, apierrors.NewValidation("time of day %q has an invalid minute", str)
	}

	return hour, minute, nil
}

// lastDay returns the number of days in the month.
func lastDay(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
