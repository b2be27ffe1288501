package scheduling

import "time"

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back intervals where one ends exactly
// when the other begins do not overlap. This is the single overlap
// definition used by both conflict detection and slot occupancy.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ClockOverlaps is the same half-open test on times of day, used when
// checking slot occupancy within a single resolved day window.
func ClockOverlaps(aStart, aEnd, bStart, bEnd ClockTime) bool {
	return aStart < bEnd && bStart < aEnd
}
