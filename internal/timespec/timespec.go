/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package timespec

import "time"

// Interface is an interface which computes occurrence times for a parsed
// groc schedule. Implementations are immutable after construction and safe
// for concurrent use.
type Interface interface {
	// Next returns the earliest instant strictly after start which matches
	// the schedule, expressed in UTC.
	Next(start time.Time) (time.Time, error)
}
