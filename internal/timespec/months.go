/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package timespec

import "time"

// monthCursor walks a set of months in ascending calendar order, wrapping to
// the smallest configured month at each year boundary and counting the
// wraps. The caller bounds the walk.
type monthCursor struct {
	months []time.Month // sorted ascending, non-empty
	idx    int
	wraps  int
}

// newMonthCursor returns a cursor whose first next yields the smallest
// configured month at or after from, wrapping immediately when there is
// none.
func newMonthCursor(months []time.Month, from time.Month) *monthCursor {
	idx := len(months)
	for i, m := range months {
		if m >= from {
			idx = i
			break
		}
	}

	return &monthCursor{months: months, idx: idx}
}

// next yields the next (month, year wrap count) pair. Successive calls
// produce strictly later calendar months.
func (c *monthCursor) next() (time.Month, int) {
	if c.idx == len(c.months) {
		c.idx = 0
		c.wraps++
	}

	m := c.months[c.idx]
	c.idx++

	return m, c.wraps
}
