package analysis_test

import (
	"testing"

	"github.com/wiedymi/ass-rs/pkg/analysis"
	"github.com/wiedymi/ass-rs/pkg/assast"
)

func TestResolveStyle_NilSynthesizesDefault(t *testing.T) {
	t.Parallel()

	rs := analysis.ResolveStyle(nil, nil)
	if !rs.Synthesized {
		t.Error("expected a nil style to synthesize the Default fallback")
	}
	if rs.Name != "Default" {
		t.Errorf("expected synthesized style name %q, got %q", "Default", rs.Name)
	}
	if rs.Fontname != "Arial" || rs.Fontsize != 20 {
		t.Errorf("unexpected synthesized defaults: %+v", rs)
	}
}

func TestResolveStyle_MarginVVersusMarginTB(t *testing.T) {
	t.Parallel()

	v4 := &assast.Style{
		Fields:     map[string]string{"Name": "S1", "MarginV": "15"},
		FieldSpans: map[string]assast.Span{},
		HasMarginV: true,
	}
	rs := analysis.ResolveStyle(nil, v4)
	if !rs.HasMarginV || rs.HasMarginTB {
		t.Errorf("expected HasMarginV only, got %+v", rs)
	}
	if rs.MarginV != 15 {
		t.Errorf("expected MarginV 15, got %d", rs.MarginV)
	}

	v4plus := &assast.Style{
		Fields:      map[string]string{"Name": "S2", "MarginT": "5", "MarginB": "7"},
		FieldSpans:  map[string]assast.Span{},
		HasMarginT:  true,
		HasMarginB:  true,
	}
	rs2 := analysis.ResolveStyle(nil, v4plus)
	if !rs2.HasMarginTB || rs2.HasMarginV {
		t.Errorf("expected HasMarginTB only, got %+v", rs2)
	}
	if rs2.MarginT != 5 || rs2.MarginB != 7 {
		t.Errorf("expected MarginT=5 MarginB=7, got %+v", rs2)
	}
}

func TestResolveStyle_LayoutScaling(t *testing.T) {
	t.Parallel()

	info := &assast.ScriptInfoSection{Entries: []assast.KeyValue{
		{Key: "PlayResX", Value: "960"},
		{Key: "PlayResY", Value: "540"},
		{Key: "LayoutResX", Value: "1920"},
		{Key: "LayoutResY", Value: "1080"},
	}}
	rs := analysis.ResolveStyle(info, nil)
	if rs.LayoutScaleX != 2 || rs.LayoutScaleY != 2 {
		t.Errorf("expected 2x scaling, got %g, %g", rs.LayoutScaleX, rs.LayoutScaleY)
	}
}
