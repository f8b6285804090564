/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package scheduler

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// Interface is an interface which returns the next trigger time for a given
// scheduled job.
type Interface interface {
	// Next returns the next trigger time for the job.
	// The given count is the number of times the job has been triggered.
	// The last parameter is the time the job was last triggered, or nil if
	// it never has been.
	// Returns nil if the job will never trigger again.
	Next(count uint32, last *timestamppb.Timestamp) (*time.Time, error)
}
