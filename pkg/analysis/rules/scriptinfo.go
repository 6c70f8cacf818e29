package rules

import (
	"strconv"

	"github.com/wiedymi/ass-rs/pkg/analysis"
	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/config"
)

// UnusedLayoutResRule flags a declared LayoutResX/Y pair that is identical
// to PlayResX/Y, meaning it produces no scaling effect and can be removed.
type UnusedLayoutResRule struct {
	analysis.BaseRule
}

func NewUnusedLayoutResRule() *UnusedLayoutResRule {
	return &UnusedLayoutResRule{
		BaseRule: analysis.NewBaseRule("ASS009", "unused-layout-res",
			"LayoutResX/Y equal to PlayResX/Y has no scaling effect", config.SeverityInfo),
	}
}

func (r *UnusedLayoutResRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	info := ctx.Script.ScriptInfo()
	if info == nil {
		return nil, nil
	}

	layoutX, okLX := info.Get("LayoutResX")
	layoutY, okLY := info.Get("LayoutResY")
	if !okLX && !okLY {
		return nil, nil
	}
	playX, _ := info.Get("PlayResX")
	playY, _ := info.Get("PlayResY")

	if !sameNumeric(layoutX, playX) || !sameNumeric(layoutY, playY) {
		return nil, nil
	}

	span := assast.Span{}
	for _, sec := range ctx.Script.Sections {
		if sec.Kind == assast.SectionScriptInfo {
			span = sec.Span
			break
		}
	}

	return []analysis.Diagnostic{
		analysis.NewDiagnostic(r.ID(),
			"LayoutResX/Y is declared but equals PlayResX/Y, so it has no effect", span).Build(),
	}, nil
}

func sameNumeric(a, b string) bool {
	av, errA := strconv.Atoi(a)
	bv, errB := strconv.Atoi(b)
	return errA == nil && errB == nil && av == bv
}

func init() {
	analysis.DefaultRegistry.Register(NewUnusedLayoutResRule())
}
