/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package scheduler

import (
	"errors"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/utils/clock"

	"github.com/diagridio/go-groc/api"
	"github.com/diagridio/go-groc/groc"
	"github.com/diagridio/go-groc/zone"
)

// Options are the options for creating a scheduler builder.
type Options struct {
	// Log is the logger handed to the groc engine.
	Log logr.Logger

	// Zones resolves named timezones for specific-time schedules.
	Zones zone.Resolver

	// Clock is the clock used for the default job start time. Used for
	// manipulating time in tests.
	Clock clock.Clock
}

// Builder builds the trigger-time scheduler for jobs.
type Builder struct {
	log   logr.Logger
	zones zone.Resolver
	clock clock.Clock
}

// New creates a new scheduler builder.
func New(opts Options) *Builder {
	cl := opts.Clock
	if cl == nil {
		cl = clock.RealClock{}
	}

	return &Builder{
		log:   opts.Log,
		zones: opts.Zones,
		clock: cl,
	}
}

// Schedule returns the scheduler for the given job.
func (b *Builder) Schedule(job *api.Job) (Interface, error) {
	if job.Spec == nil {
		if job.DueTime == nil {
			return nil, errors.New("job must have either a due time or a schedule")
		}
		if job.Repeats != nil && *job.Repeats > 1 {
			return nil, errors.New("job must have a schedule to repeat")
		}

		return &oneshot{dueTime: job.DueTime.AsTime()}, nil
	}

	if job.Repeats != nil && *job.Repeats < 1 {
		return nil, errors.New("defined repeats must be greater than 0")
	}

	sched, err := groc.New(job.Spec, groc.Options{
		Log:   b.log,
		Zones: b.zones,
	})
	if err != nil {
		return nil, err
	}

	start := b.clock.Now().UTC().Truncate(time.Second)
	if job.DueTime != nil {
		start = job.DueTime.AsTime()
	}

	if job.Expiration != nil && start.After(job.Expiration.AsTime()) {
		return nil, errors.New("expiration must not be before the job start time")
	}

	return &repeats{
		start:    start,
		dueFirst: job.DueTime != nil,
		exp:      job.Expiration,
		sched:    sched,
		total:    job.Repeats,
	}, nil
}
