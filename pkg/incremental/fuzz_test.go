package incremental_test

import (
	"strings"
	"testing"

	"github.com/wiedymi/ass-rs/pkg/config"
	"github.com/wiedymi/ass-rs/pkg/incremental"
	"github.com/wiedymi/ass-rs/pkg/parser"
)

// FuzzReparse checks §4.5's correctness contract: for a single-range text
// edit, incremental.Reparse's result agrees with a full reparse of the new
// buffer on section count, event count, and style count. It does not
// compare full ASTs byte-for-byte since issue ordering is explicitly
// allowed to differ within the dirty region.
func FuzzReparse(f *testing.F) {
	f.Add([]byte(fixture), 0, 0, "")
	f.Add([]byte(fixture), len(fixture), len(fixture), "\nDialogue: 0,0:00:10.00,0:00:12.00,Default,,0,0,0,,Appended\n")

	oldStart := strings.Index(fixture, "Hello world")
	f.Add([]byte(fixture), oldStart, oldStart+len("Hello world"), "Replaced text")
	f.Add([]byte(fixture), oldStart, oldStart, "Prefix ")

	scriptTypeStart := strings.Index(fixture, "v4.00+")
	f.Add([]byte(fixture), scriptTypeStart, scriptTypeStart+len("v4.00+"), "v4.00++")

	f.Fuzz(func(t *testing.T, source []byte, start, end int, newText string) {
		if start < 0 || end < start || end > len(source) {
			t.Skip()
		}

		oldScript, err := parser.Parse(source, *config.NewParserConfig())
		if err != nil {
			t.Skip()
		}

		newSource := append(append(append([]byte{}, source[:start]...), []byte(newText)...), source[end:]...)
		edit := incremental.EditRange{OldStart: start, OldEnd: end, NewEnd: start + len(newText)}

		got, err := incremental.Reparse(oldScript, newSource, edit, *config.NewParserConfig(), nil)
		if err != nil {
			t.Fatalf("Reparse returned an error a full parse would not: %v", err)
		}

		want, err := parser.Parse(newSource, *config.NewParserConfig())
		if err != nil {
			t.Fatalf("full parse of the edited buffer failed: %v", err)
		}

		if got.Version != want.Version {
			t.Errorf("version mismatch: incremental=%s full=%s", got.Version, want.Version)
		}
		if len(got.Sections) != len(want.Sections) {
			t.Errorf("section count mismatch: incremental=%d full=%d", len(got.Sections), len(want.Sections))
		}

		gotEvents, wantEvents := got.Events(), want.Events()
		if (gotEvents == nil) != (wantEvents == nil) {
			t.Fatalf("events-section presence mismatch: incremental=%v full=%v", gotEvents != nil, wantEvents != nil)
		}
		if gotEvents != nil && len(gotEvents.Events) != len(wantEvents.Events) {
			t.Errorf("event count mismatch: incremental=%d full=%d", len(gotEvents.Events), len(wantEvents.Events))
		}

		gotStyles, wantStyles := got.Styles(), want.Styles()
		if (gotStyles == nil) != (wantStyles == nil) {
			t.Fatalf("styles-section presence mismatch: incremental=%v full=%v", gotStyles != nil, wantStyles != nil)
		}
		if gotStyles != nil && len(gotStyles.Styles) != len(wantStyles.Styles) {
			t.Errorf("style count mismatch: incremental=%d full=%d", len(gotStyles.Styles), len(wantStyles.Styles))
		}
	})
}

