package rules

import (
	"fmt"

	"github.com/wiedymi/ass-rs/pkg/analysis"
	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/config"
)

// DrawingOutsideModeRule flags the \pbo baseline-offset tag appearing in an
// event that never entered \p drawing mode — \pbo only has meaning
// relative to a drawing command stream.
type DrawingOutsideModeRule struct {
	analysis.BaseRule
}

func NewDrawingOutsideModeRule() *DrawingOutsideModeRule {
	return &DrawingOutsideModeRule{
		BaseRule: analysis.NewBaseRule("ASS007", "drawing-outside-mode",
			"\\pbo has no effect outside \\p drawing mode", config.SeverityWarning),
	}
}

func (r *DrawingOutsideModeRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	var diags []analysis.Diagnostic
	for _, di := range ctx.Dialogues {
		if di.HasDrawing {
			continue
		}
		for _, run := range di.Runs {
			for _, tag := range run.Tags {
				if tag.Name != "pbo" {
					continue
				}
				diags = append(diags, analysis.NewDiagnostic(r.ID(),
					"\\pbo used without \\p drawing mode active in this event", tag.Span).Build())
			}
		}
	}
	return diags, nil
}

// KaraokeAbsoluteNonPlusRule flags \kt (absolute karaoke timing) used in a
// script that isn't the v4++ dialect, per spec.md §4.6.
type KaraokeAbsoluteNonPlusRule struct {
	analysis.BaseRule
}

func NewKaraokeAbsoluteNonPlusRule() *KaraokeAbsoluteNonPlusRule {
	return &KaraokeAbsoluteNonPlusRule{
		BaseRule: analysis.NewBaseRule("ASS008", "kt-non-v4plus",
			"\\kt is only meaningful in v4++ scripts", config.SeverityWarning),
	}
}

func (r *KaraokeAbsoluteNonPlusRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	if ctx.Script.Version == assast.AssV4Plus {
		return nil, nil
	}
	var diags []analysis.Diagnostic
	for _, di := range ctx.Dialogues {
		for _, syl := range di.Karaoke {
			if syl.Tag != "kt" {
				continue
			}
			diags = append(diags, analysis.NewDiagnostic(r.ID(),
				fmt.Sprintf("\\kt used in a %s script", ctx.Script.Version), syl.Span).Build())
		}
	}
	return diags, nil
}

func init() {
	analysis.DefaultRegistry.Register(NewDrawingOutsideModeRule())
	analysis.DefaultRegistry.Register(NewKaraokeAbsoluteNonPlusRule())
}
