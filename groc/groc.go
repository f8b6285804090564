/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package groc

import (
	"errors"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/diagridio/go-groc/api"
	"github.com/diagridio/go-groc/internal/timespec"
	"github.com/diagridio/go-groc/zone"
)

// Options are the options for creating a schedule from a parsed descriptor.
type Options struct {
	// Log is the logger to use for logging.
	Log logr.Logger

	// Zones resolves named timezones for specific-time schedules. Defaults
	// to zone.UTCOnly, which rejects schedules naming a timezone; inject
	// zone.Database to resolve names from the Go timezone database.
	Zones zone.Resolver
}

// Schedule computes the occurrence times of a groc schedule. Schedules are
// immutable and safe for unrestricted concurrent use; every call is a pure
// function of the schedule and the given start.
type Schedule interface {
	// Next returns the earliest instant strictly after start matching the
	// schedule, expressed in UTC.
	Next(start time.Time) (time.Time, error)

	// NextN returns the next n occurrences strictly after start in
	// ascending order, each computed from the previous.
	NextN(start time.Time, n int) ([]time.Time, error)
}

// New creates the Schedule for a groc schedule descriptor produced by the
// text parser. Defaulting and validation of the descriptor's fields happen
// here, once; the returned Schedule never mutates.
func New(spec *api.Spec, opts Options) (Schedule, error) {
	if spec == nil {
		return nil, errors.New("spec is required")
	}

	log := opts.Log
	if log.GetSink() == nil {
		sink, err := zap.NewProduction()
		if err != nil {
			return nil, err
		}
		log = zapr.NewLogger(sink)
		log = log.WithName("groc")
	}

	var (
		match timespec.Interface
		err   error
	)
	if spec.Interval != nil {
		match, err = timespec.NewInterval(spec.Interval)
	} else {
		specific := spec.Specific
		if specific == nil {
			specific = new(api.Specific)
		}
		match, err = timespec.NewSpecific(timespec.SpecificOptions{
			Log:   log,
			Spec:  specific,
			Zones: opts.Zones,
		})
	}
	if err != nil {
		return nil, err
	}

	return &schedule{match: match}, nil
}

// schedule is the implementation of the Schedule interface.
type schedule struct {
	match timespec.Interface
}

func (s *schedule) Next(start time.Time) (time.Time, error) {
	return s.match.Next(start)
}

func (s *schedule) NextN(start time.Time, n int) ([]time.Time, error) {
	times := make([]time.Time, 0, n)
	for range n {
		next, err := s.match.Next(start)
		if err != nil {
			return nil, err
		}
		times = append(times, next)
		start = next
	}

	return times, nil
}
