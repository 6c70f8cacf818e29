package analysis

import (
	"sort"

	"github.com/wiedymi/ass-rs/pkg/assast"
)

// Overlap records one pair of events that overlap in time while sharing
// both layer and style, per spec.md §4.6's timing overlap graph: such
// pairs are candidates for a downstream collision resolver to position
// apart. Comment events never participate (spec.md §9 Open Question).
type Overlap struct {
	A, B                         *assast.Event
	Layer                        int
	Style                        string
	OverlapStartCs, OverlapEndCs int
}

// ComputeOverlaps finds every overlapping same-layer, same-style event pair
// among events, excluding Comment events. Uses a start-time sweep so the
// common case (few concurrent events) stays near-linear instead of O(n^2).
func ComputeOverlaps(events []*assast.Event) []Overlap {
	var sortable []*assast.Event
	for _, ev := range events {
		if ev.IsComment() {
			continue
		}
		sortable = append(sortable, ev)
	}
	sort.SliceStable(sortable, func(i, j int) bool {
		return sortable[i].StartCs < sortable[j].StartCs
	})

	var overlaps []Overlap
	var active []*assast.Event
	for _, ev := range sortable {
		// Drop events from `active` that have already ended before ev starts.
		kept := active[:0]
		for _, other := range active {
			if other.EndCs > ev.StartCs {
				kept = append(kept, other)
			}
		}
		active = kept

		for _, other := range active {
			if other.Layer != ev.Layer || other.Style != ev.Style {
				continue
			}
			start := maxInt(other.StartCs, ev.StartCs)
			end := minInt(other.EndCs, ev.EndCs)
			if start >= end {
				continue
			}
			overlaps = append(overlaps, Overlap{
				A: other, B: ev, Layer: ev.Layer, Style: ev.Style,
				OverlapStartCs: start, OverlapEndCs: end,
			})
		}
		active = append(active, ev)
	}

	return overlaps
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
