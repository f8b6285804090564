/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package api

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// Unit is the period measure of an interval schedule.
type Unit string

const (
	// UnitHours repeats the schedule every Amount hours.
	UnitHours Unit = "hours"

	// UnitMinutes repeats the schedule every Amount minutes.
	UnitMinutes Unit = "minutes"
)

// Spec is a groc schedule decomposed into structured fields by the upstream
// text parser. Exactly one variant is populated: Interval when the parser
// recognised a fixed repetition ("every 20 mins"), Specific otherwise
// ("1st,3rd sat of jan,feb 09:15"). A Spec with neither variant is treated as
// a Specific with every field defaulted.
type Spec struct {
	// Interval is the fixed-duration variant.
	Interval *Interval

	// Specific is the calendar-constrained variant.
	Specific *Specific
}

// Interval repeats at a fixed duration from the previous occurrence.
type Interval struct {
	// Amount is the number of units between occurrences. Must be positive.
	Amount uint32

	// Unit is the measure of Amount, hours or minutes.
	Unit Unit
}

// Specific repeats on calendar constraints: the given ordinal occurrences of
// the given weekdays (or explicit days of the month) in the given months, at
// a fixed time of day, optionally in a named timezone.
//
// A nil or empty slice means the field was absent from the schedule text and
// takes its default: ordinals 1..5, all weekdays, all months, no monthdays.
// Weekdays and MonthDays are mutually exclusive.
type Specific struct {
	// Ordinals selects the 1st..5th occurrence of each weekday in a month.
	// Values are in 1..5.
	Ordinals []int

	// Weekdays are the days of the week the schedule runs on.
	Weekdays []time.Weekday

	// Months are the months the schedule runs in.
	Months []time.Month

	// MonthDays are explicit days of the month, in 1..31. Months shorter
	// than a given day simply have no occurrence on it.
	MonthDays []int

	// TimeOfDay is the wall-clock time of each occurrence as "HH:MM" (a
	// single digit hour is accepted). Empty means midnight.
	TimeOfDay string

	// Timezone is the named timezone the calendar constraints are evaluated
	// in, e.g. "America/New_York". Empty means UTC. A non-empty value
	// requires a timezone resolver at construction.
	Timezone string
}

// Job is a scheduled job as handled by the surrounding scheduling service.
type Job struct {
	// Spec is the parsed schedule. Nil for oneshot jobs.
	Spec *Spec

	// DueTime is the time a oneshot job triggers. For recurring jobs it is
	// the first trigger time, with the schedule taking over from there;
	// when nil the schedule is computed from the job's creation time.
	DueTime *timestamppb.Timestamp

	// Repeats is the optional total number of times a recurring job
	// triggers.
	Repeats *uint32

	// Expiration is the optional time after which the job never triggers.
	Expiration *timestamppb.Timestamp
}
