package analysis

import (
	"strconv"

	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/litparse"
)

// ResolvedStyle is a fully computed style snapshot, per spec.md §3: numeric
// colors, parsed booleans, numeric scales, margins, and the scaling factor
// relating PlayResX/Y to LayoutResX/Y. It is computed from a declared style
// (or the synthesized Default) alone; in-text override tags are not applied
// to it.
type ResolvedStyle struct {
	Name     string
	Fontname string
	Fontsize float64

	PrimaryColour   litparse.Color
	SecondaryColour litparse.Color
	OutlineColour   litparse.Color
	BackColour      litparse.Color

	Bold, Italic, Underline, StrikeOut bool

	ScaleX, ScaleY, Spacing, Angle float64
	BorderStyle                    int
	Outline, Shadow                float64
	Alignment                      int

	MarginL, MarginR int
	HasMarginV       bool
	MarginV          int
	HasMarginTB      bool
	MarginT, MarginB int

	Encoding      int
	RelativeTo    string
	HasRelativeTo bool

	// LayoutScaleX/Y scale a PlayRes-relative coordinate to LayoutRes
	// space, per spec.md §4.6; 1.0 when either resolution is absent or
	// when PlayRes equals LayoutRes.
	LayoutScaleX, LayoutScaleY float64

	// Synthesized is true when no style named Name was declared and this
	// is the spec.md §4.6 "Missing style → synthesized Default" fallback.
	Synthesized bool
}

// defaultResolvedStyle returns the conventional ASS default style values
// (grounded on original_source's renderer fixtures, e.g.
// ass-renderer/tests/compatibility_tests.rs's "Default,Arial,...,20,...,2,...,10,10,10,1"
// row), used both as the synthesized Default and as the field-by-field
// fallback for a declared style missing individual fields.
func defaultResolvedStyle(name string) ResolvedStyle {
	return ResolvedStyle{
		Name:            name,
		Fontname:        "Arial",
		Fontsize:        20,
		PrimaryColour:   litparse.Color{R: 0xff, G: 0xff, B: 0xff},
		SecondaryColour: litparse.Color{R: 0xff, G: 0, B: 0},
		OutlineColour:   litparse.Color{},
		BackColour:      litparse.Color{},
		ScaleX:          100,
		ScaleY:          100,
		BorderStyle:     1,
		Outline:         2,
		Shadow:          2,
		Alignment:       2,
		MarginL:         10,
		MarginR:         10,
		HasMarginV:      true,
		MarginV:         10,
	}
}

// ResolveStyle computes a ResolvedStyle for style (nil synthesizes the
// Default fallback) against the script's [Script Info] PlayRes/LayoutRes
// pair.
func ResolveStyle(info *assast.ScriptInfoSection, style *assast.Style) ResolvedStyle {
	name := "Default"
	if style != nil {
		name = style.Name()
	}
	rs := defaultResolvedStyle(name)
	if style == nil {
		rs.Synthesized = true
		applyLayoutScale(info, &rs)
		return rs
	}

	f := style.Fields
	if v, ok := f["Fontname"]; ok && v != "" {
		rs.Fontname = v
	}
	if v, ok := parseFloatField(f, "Fontsize"); ok {
		rs.Fontsize = v
	}
	if c, ok := parseColorField(f, "PrimaryColour"); ok {
		rs.PrimaryColour = c
	}
	if c, ok := parseColorField(f, "SecondaryColour"); ok {
		rs.SecondaryColour = c
	}
	if c, ok := parseColorField(f, "OutlineColour"); ok {
		rs.OutlineColour = c
	}
	if c, ok := parseColorField(f, "BackColour"); ok {
		rs.BackColour = c
	}
	rs.Bold = parseBoolField(f, "Bold")
	rs.Italic = parseBoolField(f, "Italic")
	rs.Underline = parseBoolField(f, "Underline")
	rs.StrikeOut = parseBoolField(f, "StrikeOut")
	if v, ok := parseFloatField(f, "ScaleX"); ok {
		rs.ScaleX = v
	}
	if v, ok := parseFloatField(f, "ScaleY"); ok {
		rs.ScaleY = v
	}
	if v, ok := parseFloatField(f, "Spacing"); ok {
		rs.Spacing = v
	}
	if v, ok := parseFloatField(f, "Angle"); ok {
		rs.Angle = v
	}
	if v, ok := parseIntField(f, "BorderStyle"); ok {
		rs.BorderStyle = v
	}
	if v, ok := parseFloatField(f, "Outline"); ok {
		rs.Outline = v
	}
	if v, ok := parseFloatField(f, "Shadow"); ok {
		rs.Shadow = v
	}
	if v, ok := parseIntField(f, "Alignment"); ok {
		rs.Alignment = v
	}
	if v, ok := parseIntField(f, "MarginL"); ok {
		rs.MarginL = v
	}
	if v, ok := parseIntField(f, "MarginR"); ok {
		rs.MarginR = v
	}
	if v, ok := parseIntField(f, "Encoding"); ok {
		rs.Encoding = v
	}
	rs.RelativeTo = f["RelativeTo"]
	rs.HasRelativeTo = style.HasRelativeTo

	if style.HasMarginV {
		rs.HasMarginV = true
		if v, ok := parseIntField(f, "MarginV"); ok {
			rs.MarginV = v
		}
	}
	if style.HasMarginT || style.HasMarginB {
		rs.HasMarginTB = true
		rs.HasMarginV = false
		if v, ok := parseIntField(f, "MarginT"); ok {
			rs.MarginT = v
		}
		if v, ok := parseIntField(f, "MarginB"); ok {
			rs.MarginB = v
		}
	}

	applyLayoutScale(info, &rs)
	return rs
}

func applyLayoutScale(info *assast.ScriptInfoSection, rs *ResolvedStyle) {
	rs.LayoutScaleX, rs.LayoutScaleY = 1, 1
	if info == nil {
		return
	}
	playX, okPX := intEntry(info, "PlayResX")
	playY, okPY := intEntry(info, "PlayResY")
	layoutX, okLX := intEntry(info, "LayoutResX")
	layoutY, okLY := intEntry(info, "LayoutResY")
	if okPX && okLX && playX > 0 && layoutX > 0 {
		rs.LayoutScaleX = float64(layoutX) / float64(playX)
	}
	if okPY && okLY && playY > 0 && layoutY > 0 {
		rs.LayoutScaleY = float64(layoutY) / float64(playY)
	}
}

func intEntry(info *assast.ScriptInfoSection, key string) (int, bool) {
	v, ok := info.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseFloatField(fields map[string]string, key string) (float64, bool) {
	v, ok := fields[key]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseIntField(fields map[string]string, key string) (int, bool) {
	v, ok := fields[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseBoolField(fields map[string]string, key string) bool {
	v, ok := fields[key]
	if !ok {
		return false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return false
	}
	return n != 0
}

func parseColorField(fields map[string]string, key string) (litparse.Color, bool) {
	v, ok := fields[key]
	if !ok {
		return litparse.Color{}, false
	}
	return litparse.ParseColor(v)
}
