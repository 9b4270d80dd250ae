package scheduling

import (
	"sort"
	"time"
)

// Interval is the half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether i and o share any instant.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// UTC returns i with both bounds converted to UTC.
func (i Interval) UTC() Interval {
	return Interval{Start: i.Start.UTC(), End: i.End.UTC()}
}

// MergeIntervals sorts intervals and coalesces the ones that overlap or touch.
// Empty and inverted intervals are dropped. The input slice is not modified.
func MergeIntervals(intervals []Interval) []Interval {
	sorted := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.End.After(iv.Start) {
			sorted = append(sorted, iv)
		}
	}
	sort.Slice(sorted, func(a, b int) bool {
		return sorted[a].Start.Before(sorted[b].Start)
	})

	merged := make([]Interval, 0, len(sorted))
	for _, iv := range sorted {
		last := len(merged) - 1
		if last >= 0 && !iv.Start.After(merged[last].End) {
			if iv.End.After(merged[last].End) {
				merged[last].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// IsSlotFree reports whether slot overlaps none of busy.
func IsSlotFree(slot Interval, busy []Interval) bool {
	for _, b := range busy {
		if slot.Overlaps(b) {
			return false
		}
	}
	return true
}

// overlapsMerged is IsSlotFree's negation for sorted, disjoint intervals.
func overlapsMerged(slot Interval, merged []Interval) bool {
	i := sort.Search(len(merged), func(i int) bool {
		return merged[i].End.After(slot.Start)
	})
	return i < len(merged) && merged[i].Start.Before(slot.End)
}
