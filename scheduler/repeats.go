/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package scheduler

import (
	"time"

	"github.com/dapr/kit/ptr"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/diagridio/go-groc/groc"
)

// repeats is a scheduler for a job which recurs on a groc schedule.
type repeats struct {
	// start is the time from which the first occurrence is computed.
	start time.Time

	// dueFirst is true when the job has an explicit due time, which is
	// itself the first trigger.
	dueFirst bool

	// exp is the optional time at which the schedule ends.
	exp *timestamppb.Timestamp

	// sched is the groc schedule.
	sched groc.Schedule

	// total is the optional total number of times the job should trigger.
	total *uint32
}

func (r *repeats) Next(count uint32, last *timestamppb.Timestamp) (*time.Time, error) {
	if r.total != nil && count >= *r.total {
		return nil, nil
	}

	if last == nil {
		if r.dueFirst {
			return ptr.Of(r.start), nil
		}

		return r.next(r.start)
	}

	return r.next(last.AsTime())
}

func (r *repeats) next(after time.Time) (*time.Time, error) {
	next, err := r.sched.Next(after)
	if err != nil {
		return nil, err
	}

	if r.exp != nil && next.After(r.exp.AsTime()) {
		return nil, nil
	}

	return &next, nil
}
