/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package timespec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/diagridio/go-groc/api"
	apierrors "github.com/diagridio/go-groc/api/errors"
)

func Test_NewInterval(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		spec      *api.Interval
		expPeriod time.Duration
		expErr    bool
	}{
		"every 20 minutes": {
			spec:      &api.Interval{Amount: 20, Unit: api.UnitMinutes},
			expPeriod: 20 * time.Minute,
		},
		"every 3 hours": {
			spec:      &api.Interval{Amount: 3, Unit: api.UnitHours},
			expPeriod: 3 * time.Hour,
		},
		"every single minute": {
			spec:      &api.Interval{Amount: 1, Unit: api.UnitMinutes},
			expPeriod: time.Minute,
		},
		"zero amount is invalid": {
			spec:   &api.Interval{Amount: 0, Unit: api.UnitMinutes},
			expErr: true,
		},
		"unknown unit is invalid": {
			spec:   &api.Interval{Amount: 5, Unit: "seconds"},
			expErr: true,
		},
		"empty unit is invalid": {
			spec:   &api.Interval{Amount: 5},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			match, err := NewInterval(test.spec)
			if test.expErr {
				require.Error(t, err)
				assert.True(t, apierrors.IsValidation(err))
				assert.Nil(t, match)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expPeriod, match.(*interval).period)
		})
	}
}

func Test_interval_Next(t *testing.T) {
	t.Parallel()

	match, err := NewInterval(&api.Interval{Amount: 20, Unit: api.UnitMinutes})
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		sec := rapid.Int64Range(0, 4102444800).Draw(rt, "sec")
		start := time.Unix(sec, 0).UTC()

		next, err := match.Next(start)
		if err != nil {
			rt.Fatalf("next(%s) errored: %s", start, err)
		}
		if exp := start.Add(20 * time.Minute); !next.Equal(exp) {
			rt.Fatalf("next(%s) = %s, expected %s", start, next, exp)
		}
	})
}

func Test_interval_Next_non_utc_start(t *testing.T) {
	t.Parallel()

	match, err := NewInterval(&api.Interval{Amount: 2, Unit: api.UnitHours})
	require.NoError(t, err)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start := time.Date(2024, time.March, 9, 21, 0, 0, 0, loc)
	next, err := match.Next(start)
	require.NoError(t, err)

	assert.Equal(t, time.UTC, next.Location())
	assert.Equal(t, start.Add(2*time.Hour).UTC(), next)
}
