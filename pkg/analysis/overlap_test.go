package analysis_test

import (
	"testing"

	"github.com/wiedymi/ass-rs/pkg/analysis"
	"github.com/wiedymi/ass-rs/pkg/assast"
)

func TestComputeOverlaps_SameLayerAndStyle(t *testing.T) {
	t.Parallel()

	a := &assast.Event{StartCs: 0, EndCs: 500, Layer: 0, Style: "Default"}
	b := &assast.Event{StartCs: 200, EndCs: 700, Layer: 0, Style: "Default"}
	c := &assast.Event{StartCs: 200, EndCs: 700, Layer: 0, Style: "Other"}
	comment := &assast.Event{StartCs: 0, EndCs: 1000, Layer: 0, Style: "Default", Type: assast.EventComment}

	overlaps := analysis.ComputeOverlaps([]*assast.Event{a, b, c, comment})
	if len(overlaps) != 1 {
		t.Fatalf("expected exactly 1 overlap (a,b), got %d: %+v", len(overlaps), overlaps)
	}
	o := overlaps[0]
	if o.OverlapStartCs != 200 || o.OverlapEndCs != 500 {
		t.Errorf("expected overlap window [200,500), got [%d,%d)", o.OverlapStartCs, o.OverlapEndCs)
	}
}

func TestComputeOverlaps_NoOverlapWhenDisjoint(t *testing.T) {
	t.Parallel()

	a := &assast.Event{StartCs: 0, EndCs: 100, Style: "Default"}
	b := &assast.Event{StartCs: 100, EndCs: 200, Style: "Default"}
	overlaps := analysis.ComputeOverlaps([]*assast.Event{a, b})
	if len(overlaps) != 0 {
		t.Errorf("expected no overlaps for back-to-back events, got %+v", overlaps)
	}
}
