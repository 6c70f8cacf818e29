package incremental_test

import (
	"strings"
	"testing"

	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/config"
	"github.com/wiedymi/ass-rs/pkg/incremental"
	"github.com/wiedymi/ass-rs/pkg/parser"
)

const fixture = `[Script Info]
ScriptType: v4.00+
PlayResX: 1920
PlayResY: 1080

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,40,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:00.00,0:00:05.00,Default,,0,0,0,,Hello world
Dialogue: 0,0:00:05.00,0:00:10.00,Default,,0,0,0,,Second line
`

func mustParse(t *testing.T, src string) *assast.Script {
	t.Helper()
	script, err := parser.Parse([]byte(src), *config.NewParserConfig())
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	return script
}

// applyEdit mirrors fix.ApplyEdits from the teacher's pkg/fix, specialized
// to a single range replacement, for building the newSource half of an
// EditRange in tests.
func applyEdit(source string, start, end int, newText string) string {
	return source[:start] + newText + source[end:]
}

func TestReparse_EditWithinEventsSectionMatchesFullParse(t *testing.T) {
	t.Parallel()

	script := mustParse(t, fixture)

	oldStart := strings.Index(fixture, "Hello world")
	oldEnd := oldStart + len("Hello world")
	newText := "Hello, updated world!"
	newSource := applyEdit(fixture, oldStart, oldEnd, newText)

	edit := incremental.EditRange{OldStart: oldStart, OldEnd: oldEnd, NewEnd: oldStart + len(newText)}

	got, err := incremental.Reparse(script, []byte(newSource), edit, *config.NewParserConfig(), nil)
	if err != nil {
		t.Fatalf("Reparse failed: %v", err)
	}
	want := mustParse(t, newSource)

	gotEvents := got.Events()
	wantEvents := want.Events()
	if gotEvents == nil || wantEvents == nil {
		t.Fatal("expected both results to have an Events section")
	}
	if len(gotEvents.Events) != len(wantEvents.Events) {
		t.Fatalf("event count mismatch: got %d, want %d", len(gotEvents.Events), len(wantEvents.Events))
	}
	for i := range gotEvents.Events {
		g, w := gotEvents.Events[i], wantEvents.Events[i]
		if string(g.Text.Text(got.Source)) != string(w.Text.Text(want.Source)) {
			t.Errorf("event %d text mismatch: got %q, want %q", i, g.Text.Text(got.Source), w.Text.Text(want.Source))
		}
		if g.StartCs != w.StartCs || g.EndCs != w.EndCs {
			t.Errorf("event %d timing mismatch: got [%d,%d], want [%d,%d]", i, g.StartCs, g.EndCs, w.StartCs, w.EndCs)
		}
	}
}

func TestReparse_EditLeavesPrecedingSectionsUntouched(t *testing.T) {
	t.Parallel()

	script := mustParse(t, fixture)

	oldStart := strings.Index(fixture, "Second line")
	oldEnd := oldStart + len("Second line")
	newText := "Second line, now much longer than before"
	newSource := applyEdit(fixture, oldStart, oldEnd, newText)

	edit := incremental.EditRange{OldStart: oldStart, OldEnd: oldEnd, NewEnd: oldStart + len(newText)}

	got, err := incremental.Reparse(script, []byte(newSource), edit, *config.NewParserConfig(), nil)
	if err != nil {
		t.Fatalf("Reparse failed: %v", err)
	}

	if got.Styles() == nil || got.Styles().ByName("Default") == nil {
		t.Fatal("expected the Default style to survive the incremental reparse")
	}
	info := got.ScriptInfo()
	if v, ok := info.Get("PlayResX"); !ok || v != "1920" {
		t.Errorf("expected PlayResX to survive unchanged, got %q, %v", v, ok)
	}
}

func TestReparse_EditTouchingScriptTypeForcesFullReparse(t *testing.T) {
	t.Parallel()

	script := mustParse(t, fixture)

	oldStart := strings.Index(fixture, "v4.00+")
	oldEnd := oldStart + len("v4.00+")
	newText := "v4.00++"
	newSource := applyEdit(fixture, oldStart, oldEnd, newText)

	edit := incremental.EditRange{OldStart: oldStart, OldEnd: oldEnd, NewEnd: oldStart + len(newText)}

	got, err := incremental.Reparse(script, []byte(newSource), edit, *config.NewParserConfig(), nil)
	if err != nil {
		t.Fatalf("Reparse failed: %v", err)
	}
	if got.Version != assast.AssV4Plus {
		t.Errorf("expected a full reparse to pick up the new dialect, got %s", got.Version)
	}
}
