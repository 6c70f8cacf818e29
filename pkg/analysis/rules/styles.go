// Package rules implements spec.md §4.6's default lint rule set. Each rule
// registers itself into analysis.DefaultRegistry during init(), mirroring
// the teacher's pkg/lint/rules package.
package rules

import (
	"fmt"

	"github.com/wiedymi/ass-rs/pkg/analysis"
	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/config"
	"github.com/wiedymi/ass-rs/pkg/litparse"
)

// NegativeFontSizeRule flags styles whose Fontsize resolves to a negative
// value.
type NegativeFontSizeRule struct {
	analysis.BaseRule
}

func NewNegativeFontSizeRule() *NegativeFontSizeRule {
	return &NegativeFontSizeRule{
		BaseRule: analysis.NewBaseRule("ASS001", "negative-font-size",
			"Style Fontsize must not be negative", config.SeverityError),
	}
}

func (r *NegativeFontSizeRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	stylesSec := ctx.Script.Styles()
	if stylesSec == nil {
		return nil, nil
	}
	var diags []analysis.Diagnostic
	for _, st := range stylesSec.Styles {
		rs, ok := ctx.Styles[st.Name()]
		if !ok || rs.Fontsize >= 0 {
			continue
		}
		diags = append(diags, analysis.NewDiagnostic(r.ID(),
			fmt.Sprintf("style %q has a negative Fontsize (%g)", st.Name(), rs.Fontsize),
			st.Span).Build())
	}
	return diags, nil
}

// InvalidAlignmentRule flags styles whose Alignment value is outside the
// valid numpad-layout range 1-9 (ASS v4+/v4++ use the libass numpad
// convention, not legacy SSA's 1-11).
type InvalidAlignmentRule struct {
	analysis.BaseRule
}

func NewInvalidAlignmentRule() *InvalidAlignmentRule {
	return &InvalidAlignmentRule{
		BaseRule: analysis.NewBaseRule("ASS002", "invalid-alignment",
			"Style Alignment must be between 1 and 9", config.SeverityError),
	}
}

func (r *InvalidAlignmentRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	stylesSec := ctx.Script.Styles()
	if stylesSec == nil {
		return nil, nil
	}
	var diags []analysis.Diagnostic
	for _, st := range stylesSec.Styles {
		rs, ok := ctx.Styles[st.Name()]
		if !ok {
			continue
		}
		if rs.Alignment < 1 || rs.Alignment > 9 {
			diags = append(diags, analysis.NewDiagnostic(r.ID(),
				fmt.Sprintf("style %q has an invalid Alignment value %d", st.Name(), rs.Alignment),
				st.Span).Build())
		}
	}
	return diags, nil
}

// NegativeMarginRule flags styles with a negative margin field.
type NegativeMarginRule struct {
	analysis.BaseRule
}

func NewNegativeMarginRule() *NegativeMarginRule {
	return &NegativeMarginRule{
		BaseRule: analysis.NewBaseRule("ASS005", "negative-margin",
			"Style margins must not be negative", config.SeverityWarning),
	}
}

func (r *NegativeMarginRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	stylesSec := ctx.Script.Styles()
	if stylesSec == nil {
		return nil, nil
	}
	var diags []analysis.Diagnostic
	for _, st := range stylesSec.Styles {
		rs, ok := ctx.Styles[st.Name()]
		if !ok {
			continue
		}
		negative := rs.MarginL < 0 || rs.MarginR < 0 ||
			(rs.HasMarginV && rs.MarginV < 0) ||
			(rs.HasMarginTB && (rs.MarginT < 0 || rs.MarginB < 0))
		if negative {
			diags = append(diags, analysis.NewDiagnostic(r.ID(),
				fmt.Sprintf("style %q has a negative margin", st.Name()),
				st.Span).Build())
		}
	}
	return diags, nil
}

// MalformedColorRule flags style color fields that fail the &H... color
// grammar. The parser does not validate Style color fields, so this rule
// is the only place a malformed one is reported.
type MalformedColorRule struct {
	analysis.BaseRule
}

func NewMalformedColorRule() *MalformedColorRule {
	return &MalformedColorRule{
		BaseRule: analysis.NewBaseRule("ASS006", "malformed-color",
			"Style color fields must match the &H.. color literal grammar", config.SeverityError),
	}
}

var colorFields = []string{"PrimaryColour", "SecondaryColour", "OutlineColour", "BackColour"}

func (r *MalformedColorRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	stylesSec := ctx.Script.Styles()
	if stylesSec == nil {
		return nil, nil
	}
	var diags []analysis.Diagnostic
	for _, st := range stylesSec.Styles {
		for _, field := range colorFields {
			v, ok := st.Fields[field]
			if !ok || v == "" {
				continue
			}
			if _, ok := litparse.ParseColor(v); !ok {
				span := st.FieldSpans[field]
				diags = append(diags, analysis.NewDiagnostic(r.ID(),
					fmt.Sprintf("style %q field %s %q is not a valid color literal", st.Name(), field, v),
					span).Build())
			}
		}
	}
	return diags, nil
}

// RelativeToNonPlusRule flags a RelativeTo style field used outside the
// AssV4Plus dialect, which is the only dialect that defines it.
type RelativeToNonPlusRule struct {
	analysis.BaseRule
}

func NewRelativeToNonPlusRule() *RelativeToNonPlusRule {
	return &RelativeToNonPlusRule{
		BaseRule: analysis.NewBaseRule("ASS010", "relative-to-non-v4plus",
			"RelativeTo has no effect outside the v4++ dialect", config.SeverityWarning),
	}
}

func (r *RelativeToNonPlusRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	if ctx.Script.Version == assast.AssV4Plus {
		return nil, nil
	}
	stylesSec := ctx.Script.Styles()
	if stylesSec == nil {
		return nil, nil
	}
	var diags []analysis.Diagnostic
	for _, st := range stylesSec.Styles {
		if !st.HasRelativeTo {
			continue
		}
		diags = append(diags, analysis.NewDiagnostic(r.ID(),
			fmt.Sprintf("style %q sets RelativeTo but the script is not v4++", st.Name()),
			st.Span).Build())
	}
	return diags, nil
}

func init() {
	analysis.DefaultRegistry.Register(NewNegativeFontSizeRule())
	analysis.DefaultRegistry.Register(NewInvalidAlignmentRule())
	analysis.DefaultRegistry.Register(NewNegativeMarginRule())
	analysis.DefaultRegistry.Register(NewMalformedColorRule())
	analysis.DefaultRegistry.Register(NewRelativeToNonPlusRule())
}
