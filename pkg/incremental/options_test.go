package incremental_test

import (
	"bytes"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"

	"github.com/wiedymi/ass-rs/pkg/config"
	"github.com/wiedymi/ass-rs/pkg/incremental"
)

func TestReparseWithOptions_LoggerReceivesDebugLines(t *testing.T) {
	t.Parallel()

	script := mustParse(t, fixture)

	oldStart := strings.Index(fixture, "Second line")
	oldEnd := oldStart + len("Second line")
	newText := "Second line, edited"
	newSource := applyEdit(fixture, oldStart, oldEnd, newText)
	edit := incremental.EditRange{OldStart: oldStart, OldEnd: oldEnd, NewEnd: oldStart + len(newText)}

	var buf bytes.Buffer
	logger := charmlog.NewWithOptions(&buf, charmlog.Options{})
	logger.SetLevel(charmlog.DebugLevel)

	_, err := incremental.ReparseWithOptions(script, []byte(newSource), edit, *config.NewParserConfig(), nil, incremental.Options{Logger: logger})
	if err != nil {
		t.Fatalf("ReparseWithOptions failed: %v", err)
	}

	if !strings.Contains(buf.String(), "dirty range recomputed") {
		t.Errorf("expected a dirty-range debug line, got: %s", buf.String())
	}
}

func TestReparseWithOptions_LogsFullReparseFallback(t *testing.T) {
	t.Parallel()

	script := mustParse(t, fixture)

	oldStart := strings.Index(fixture, "v4.00+")
	oldEnd := oldStart + len("v4.00+")
	newText := "v4.00++"
	newSource := applyEdit(fixture, oldStart, oldEnd, newText)
	edit := incremental.EditRange{OldStart: oldStart, OldEnd: oldEnd, NewEnd: oldStart + len(newText)}

	var buf bytes.Buffer
	logger := charmlog.NewWithOptions(&buf, charmlog.Options{})
	logger.SetLevel(charmlog.DebugLevel)

	_, err := incremental.ReparseWithOptions(script, []byte(newSource), edit, *config.NewParserConfig(), nil, incremental.Options{Logger: logger})
	if err != nil {
		t.Fatalf("ReparseWithOptions failed: %v", err)
	}

	if !strings.Contains(buf.String(), "full reparse fallback") {
		t.Errorf("expected a full-reparse-fallback debug line, got: %s", buf.String())
	}
}
