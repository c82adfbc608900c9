// Package overlap decides whether time intervals conflict. Intervals are
// half-open [start, end): two windows that merely touch at an endpoint do
// not overlap.
package overlap

import "time"

// Interval is a candidate or existing time window, identified so a window
// being updated can be excluded from its own conflict check.
type Interval struct {
	ID    int
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// AnyConflict reports whether candidate overlaps any existing interval.
// An existing interval whose ID equals excludeID is skipped; pass 0 to
// exclude nothing.
func AnyConflict(existing []Interval, candidate Interval, excludeID int) bool {
	for _, iv := range existing {
		if excludeID != 0 && iv.ID == excludeID {
			continue
		}
		if Overlaps(candidate.Start, candidate.End, iv.Start, iv.End) {
			return true
		}
	}
	return false
}
