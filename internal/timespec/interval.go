/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package timespec

import (
	"time"

	"github.com/diagridio/go-groc/api"
	apierrors "github.com/diagridio/go-groc/api/errors"
)

// interval repeats at a fixed duration from the previous occurrence, e.g.
// "every 20 mins". Timezones and daylight saving are irrelevant here: the
// schedule measures elapsed time, not calendar positions.
type interval struct {
	period time.Duration
}

// NewInterval creates the matcher for a fixed-duration schedule.
func NewInterval(spec *api.Interval) (Interface, error) {
	if spec.Amount < 1 {
		return nil, apierrors.NewValidation("interval amount must be positive")
	}

	var unit time.Duration
	switch spec.Unit {
	case api.UnitHours:
		unit = time.Hour
	case api.UnitMinutes:
		unit = time.Minute
	default:
		return nil, apierrors.NewValidation("unknown interval unit %q", spec.Unit)
	}

	return &interval{period: time.Duration(spec.Amount) * unit}, nil
}

func (i *interval) Next(start time.Time) (time.Time, error) {
	return start.Add(i.period).UTC(), nil
}
