package analysis

import (
	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/overrides"
	"github.com/wiedymi/ass-rs/pkg/plugin"
)

// KaraokeSyllable is one \k/\kf/\ko/\kt tag paired with the literal text
// run immediately following it, per spec.md §4.6. DurationCs is the tag's
// numeric argument in centiseconds; for \k, \kf, and \ko this is a
// duration, but per spec.md §9 \kt's argument is absolute, measured from
// the event's start, not a duration — callers distinguish the two by Tag.
type KaraokeSyllable struct {
	Tag        string
	DurationCs int
	Text       string
	Span       assast.Span
}

// AnimationSpan records one detected \t animation tag.
type AnimationSpan struct {
	Span assast.Span
	Tag  overrides.Tag
}

// StyleDelta is one literal text run together with the override tags
// accumulated from every block preceding it within the event, in order.
type StyleDelta struct {
	Span assast.Span
	Text string
	Tags []overrides.Tag
}

// DialogueInfo is the per-event analysis result named by spec.md §4.6:
// durations, plain text with override tags stripped, per-run style deltas,
// karaoke syllable boundaries, detected animations, and whether the event
// is drawing-only.
type DialogueInfo struct {
	Event *assast.Event

	DurationMs int
	PlainText  string

	Runs       []StyleDelta
	Karaoke    []KaraokeSyllable
	Animations []AnimationSpan

	DrawingOnly bool
	// HasDrawing is true if the event entered \p drawing mode at all,
	// even briefly; DrawingOnly implies HasDrawing but not vice versa.
	HasDrawing bool
}

// ComputeDialogueInfo parses event's text field via pkg/overrides and
// derives the spec.md §4.6 dialogue analysis from the resulting runs.
func ComputeDialogueInfo(source []byte, event *assast.Event, registry *plugin.Registry, maxOverrideDepth int) (DialogueInfo, assast.Issues) {
	di := DialogueInfo{
		Event:      event,
		DurationMs: (event.EndCs - event.StartCs) * 10,
	}

	runs, issues := overrides.Parse(source, event.Text, registry, maxOverrideDepth)

	var active []overrides.Tag
	var pendingKaraoke *KaraokeSyllable
	sawLiteral := false
	sawDrawing := false

	flushKaraoke := func(text string, span assast.Span) {
		if pendingKaraoke == nil {
			return
		}
		pendingKaraoke.Text = text
		pendingKaraoke.Span = assast.Span{Start: pendingKaraoke.Span.Start, End: span.End}
		di.Karaoke = append(di.Karaoke, *pendingKaraoke)
		pendingKaraoke = nil
	}

	for _, run := range runs {
		switch run.Kind {
		case overrides.RunLiteral:
			text := string(run.Span.Text(source))
			di.PlainText += text
			sawLiteral = true
			di.Runs = append(di.Runs, StyleDelta{Span: run.Span, Text: text, Tags: append([]overrides.Tag(nil), active...)})
			flushKaraoke(text, run.Span)
		case overrides.RunDrawing:
			sawDrawing = true
		case overrides.RunBlock:
			for _, tag := range run.Block.Tags {
				active = append(active, tag)
				switch tag.Name {
				case "t":
					di.Animations = append(di.Animations, AnimationSpan{Span: tag.Span, Tag: tag})
				case "k", "kf", "ko", "kt":
					flushKaraoke("", tag.Span)
					dur := 0
					if len(tag.Args) > 0 {
						dur = atoiLoose(tag.Args[0])
					}
					pendingKaraoke = &KaraokeSyllable{Tag: tag.Name, DurationCs: dur, Span: tag.Span}
				}
			}
		}
	}
	flushKaraoke("", event.Text)

	di.DrawingOnly = sawDrawing && !sawLiteral
	di.HasDrawing = sawDrawing

	return di, issues
}

func atoiLoose(s string) int {
	neg := false
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n
}
