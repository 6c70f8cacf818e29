package rules

import (
	"fmt"

	"github.com/wiedymi/ass-rs/pkg/analysis"
	"github.com/wiedymi/ass-rs/pkg/config"
)

// StartNotBeforeEndRule flags events whose Start is at or after their End.
type StartNotBeforeEndRule struct {
	analysis.BaseRule
}

func NewStartNotBeforeEndRule() *StartNotBeforeEndRule {
	return &StartNotBeforeEndRule{
		BaseRule: analysis.NewBaseRule("ASS003", "start-not-before-end",
			"Dialogue Start must be strictly before End", config.SeverityWarning),
	}
}

func (r *StartNotBeforeEndRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	eventsSec := ctx.Script.Events()
	if eventsSec == nil {
		return nil, nil
	}
	var diags []analysis.Diagnostic
	for _, ev := range eventsSec.Events {
		if ev.StartCs < ev.EndCs {
			continue
		}
		diags = append(diags, analysis.NewDiagnostic(r.ID(),
			fmt.Sprintf("event starts at or after its end (start=%d, end=%d centiseconds)", ev.StartCs, ev.EndCs),
			ev.Span).Build())
	}
	return diags, nil
}

// UndefinedStyleReferenceRule flags events that name a style not declared
// in the [Styles] section. This is the analysis-level counterpart to the
// parse-time UnknownStyleReference issue: it runs over the same data but
// through the pluggable rule registry, so callers can tune its severity or
// disable it independently of parse issues.
type UndefinedStyleReferenceRule struct {
	analysis.BaseRule
}

func NewUndefinedStyleReferenceRule() *UndefinedStyleReferenceRule {
	return &UndefinedStyleReferenceRule{
		BaseRule: analysis.NewBaseRule("ASS004", "undefined-style-reference",
			"Dialogue Style must reference a declared style", config.SeverityWarning),
	}
}

func (r *UndefinedStyleReferenceRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	eventsSec := ctx.Script.Events()
	if eventsSec == nil {
		return nil, nil
	}
	stylesSec := ctx.Script.Styles()

	var diags []analysis.Diagnostic
	for _, ev := range eventsSec.Events {
		if ev.Style == "" {
			continue
		}
		if stylesSec != nil && stylesSec.ByName(ev.Style) != nil {
			continue
		}
		diags = append(diags, analysis.NewDiagnostic(r.ID(),
			fmt.Sprintf("event references undefined style %q", ev.Style),
			ev.Span).Build())
	}
	return diags, nil
}

func init() {
	analysis.DefaultRegistry.Register(NewStartNotBeforeEndRule())
	analysis.DefaultRegistry.Register(NewUndefinedStyleReferenceRule())
}
