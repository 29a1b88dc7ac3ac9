package domain

import "time"

// Date range helpers. Check-in/check-out pairs are half-open intervals
// [checkIn, checkOut): the checkout day itself is free, so a stay ending
// on day X and a stay starting on day X do not conflict.

// TruncateToDate drops the time-of-day component, normalizing to UTC midnight
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NightsBetween returns the number of nights between check-in and check-out.
// Partial days round up, so the value matches ceil((out-in)/24h) on
// non-normalized inputs as well.
func NightsBetween(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		nights++
	}
	return nights
}

// DateRangesOverlap reports whether [aStart, aEnd) and [bStart, bEnd)
// intersect. Strict comparisons on both sides: back-to-back ranges where
// one end equals the other start are not an overlap.
func DateRangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
