package overrides_test

import (
	"testing"

	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/overrides"
	"github.com/wiedymi/ass-rs/pkg/plugin"
)

func fullSpan(source []byte) assast.Span {
	return assast.Span{Start: 0, End: len(source)}
}

func TestParse_LiteralOnly(t *testing.T) {
	t.Parallel()

	source := []byte("Hello World")
	runs, issues := overrides.Parse(source, fullSpan(source), plugin.DefaultRegistry, 8)
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
	if len(runs) != 1 || runs[0].Kind != overrides.RunLiteral {
		t.Fatalf("expected a single literal run, got %+v", runs)
	}
}

func TestParse_NestedTransformBlock(t *testing.T) {
	t.Parallel()

	source := []byte(`{\pos(100,200)\t(0,1000,\fs40\1c&HFF0000&)}Hi`)
	runs, issues := overrides.Parse(source, fullSpan(source), plugin.DefaultRegistry, 8)
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs (block, literal), got %d", len(runs))
	}
	if runs[0].Kind != overrides.RunBlock {
		t.Fatalf("expected the first run to be a block")
	}
	tags := runs[0].Block.Tags
	if len(tags) != 2 {
		t.Fatalf("expected 2 top-level tags (pos, t), got %d: %+v", len(tags), tags)
	}
	if tags[0].Name != "pos" || len(tags[0].Args) != 2 || tags[0].Args[0] != "100" || tags[0].Args[1] != "200" {
		t.Errorf("unexpected pos tag: %+v", tags[0])
	}
	if tags[1].Name != "t" {
		t.Fatalf("expected the second tag to be \\t, got %q", tags[1].Name)
	}
	if len(tags[1].Args) != 2 || tags[1].Args[0] != "0" || tags[1].Args[1] != "1000" {
		t.Errorf("expected \\t's timing args [0, 1000], got %v", tags[1].Args)
	}
	if len(tags[1].Nested) != 2 {
		t.Fatalf("expected 2 nested tags inside \\t, got %d: %+v", len(tags[1].Nested), tags[1].Nested)
	}
	if tags[1].Nested[0].Name != "fs" || tags[1].Nested[0].Args[0] != "40" {
		t.Errorf("unexpected nested fs tag: %+v", tags[1].Nested[0])
	}
	if tags[1].Nested[1].Name != "1c" {
		t.Errorf("expected the second nested tag to be \\1c, got %q", tags[1].Nested[1].Name)
	}

	if runs[1].Kind != overrides.RunLiteral {
		t.Fatalf("expected the trailing run to be literal text")
	}
	if got := string(source[runs[1].Span.Start:runs[1].Span.End]); got != "Hi" {
		t.Errorf("expected trailing literal %q, got %q", "Hi", got)
	}
}

func TestParse_KaraokeRuns(t *testing.T) {
	t.Parallel()

	source := []byte(`{\k20}Ka{\k25}ra{\k30}o{\k25}ke`)
	runs, issues := overrides.Parse(source, fullSpan(source), plugin.DefaultRegistry, 8)
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}

	var karaokeArgs []string
	var text string
	for _, r := range runs {
		switch r.Kind {
		case overrides.RunBlock:
			for _, tag := range r.Block.Tags {
				if tag.Name == "k" {
					karaokeArgs = append(karaokeArgs, tag.Args[0])
				}
			}
		case overrides.RunLiteral:
			text += string(source[r.Span.Start:r.Span.End])
		}
	}

	wantDurations := []string{"20", "25", "30", "25"}
	if len(karaokeArgs) != len(wantDurations) {
		t.Fatalf("expected %d karaoke tags, got %d", len(wantDurations), len(karaokeArgs))
	}
	for i, want := range wantDurations {
		if karaokeArgs[i] != want {
			t.Errorf("karaoke run %d: expected duration %q, got %q", i, want, karaokeArgs[i])
		}
	}
	if text != "Karaoke" {
		t.Errorf("expected plain text %q, got %q", "Karaoke", text)
	}
}

func TestParse_DrawingMode(t *testing.T) {
	t.Parallel()

	source := []byte(`{\p1}m 0 0 l 100 0 100 100 0 100{\p0}`)
	runs, issues := overrides.Parse(source, fullSpan(source), plugin.DefaultRegistry, 8)
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}

	var drawing *overrides.Run
	for i := range runs {
		if runs[i].Kind == overrides.RunDrawing {
			drawing = &runs[i]
		}
	}
	if drawing == nil {
		t.Fatalf("expected a drawing run, got %+v", runs)
	}
	// "m 0 0" is one move; "l 100 0 100 100 0 100" is three repeated
	// line-to commands, since extra coordinate pairs after a drawing
	// letter implicitly repeat it.
	if len(drawing.Drawing) != 4 {
		t.Fatalf("expected 4 drawing commands (m, l, l, l), got %d: %+v", len(drawing.Drawing), drawing.Drawing)
	}
	if drawing.Drawing[0].Op != 'm' || len(drawing.Drawing[0].Points) != 1 {
		t.Errorf("unexpected move command: %+v", drawing.Drawing[0])
	}
	for _, cmd := range drawing.Drawing[1:] {
		if cmd.Op != 'l' || len(cmd.Points) != 1 {
			t.Errorf("expected a single-point line-to command, got %+v", cmd)
		}
	}
}

func TestParse_UnknownDrawingCommandLetter(t *testing.T) {
	t.Parallel()

	source := []byte(`{\p1}z 0 0`)
	_, issues := overrides.Parse(source, fullSpan(source), plugin.DefaultRegistry, 8)
	found := false
	for _, issue := range issues {
		if issue.Kind == assast.KindUnknownDrawingCommand {
			found = true
		}
	}
	if !found {
		t.Error("expected an UnknownDrawingCommand issue")
	}
}

func TestParse_OverrideDepthExceeded(t *testing.T) {
	t.Parallel()

	source := []byte(`{\t(0,1,\t(0,1,\t(0,1,\t(0,1,\t(0,1,\t(0,1,\t(0,1,\t(0,1,\t(0,1,\b1))))))))))}`)
	_, issues := overrides.Parse(source, fullSpan(source), plugin.DefaultRegistry, 2)
	found := false
	for _, issue := range issues {
		if issue.Kind == assast.KindOverrideDepthExceeded {
			found = true
		}
	}
	if !found {
		t.Error("expected an OverrideDepthExceeded issue with a shallow depth limit")
	}
}

func TestParse_UnmatchedBraceIsLiteral(t *testing.T) {
	t.Parallel()

	source := []byte(`hi } there`)
	runs, issues := overrides.Parse(source, fullSpan(source), plugin.DefaultRegistry, 8)
	found := false
	for _, issue := range issues {
		if issue.Kind == assast.KindMalformedOverride {
			found = true
		}
	}
	if !found {
		t.Error("expected a MalformedOverride issue for the unmatched }")
	}
	var text string
	for _, r := range runs {
		text += string(source[r.Span.Start:r.Span.End])
	}
	if text != string(source) {
		t.Errorf("expected the unmatched brace to be preserved as literal text, got %q", text)
	}
}

func TestRegisterBuiltins_KnownTagsParseArgs(t *testing.T) {
	t.Parallel()

	registry := plugin.NewRegistry()
	overrides.RegisterBuiltins(registry)

	handler, ok := registry.TagHandler("fs")
	if !ok {
		t.Fatal("expected \\fs to be registered")
	}
	v, err := handler.ParseArgs("40")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f, ok := v.(float64); !ok || f != 40 {
		t.Errorf("expected float64(40), got %#v", v)
	}

	colorHandler, ok := registry.TagHandler("1c")
	if !ok {
		t.Fatal("expected \\1c to be registered")
	}
	if _, err := colorHandler.ParseArgs("&HFF0000&"); err != nil {
		t.Errorf("unexpected error parsing a color literal: %v", err)
	}
}
