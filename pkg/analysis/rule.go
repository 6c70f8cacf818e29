package analysis

import (
	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/config"
)

// Rule defines the interface every lint rule implements, mirroring the
// teacher's pkg/lint.Rule. Rules are pluggable via Registry, parallel to
// the plugin registry in §4.4.
type Rule interface {
	// ID returns the unique rule identifier (e.g. "ASS001").
	ID() string

	// Name returns the human-readable rule name.
	Name() string

	// Description explains what the rule checks.
	Description() string

	// DefaultEnabled reports whether the rule runs unless disabled.
	DefaultEnabled() bool

	// DefaultSeverity is the severity used when no config overrides it.
	DefaultSeverity() config.Severity

	// Apply runs the rule against ctx and returns any diagnostics found.
	// Rules return an error only for internal failures, never to report a
	// violation — per spec.md §7, plugin/rule code must not raise for bad
	// input.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}

// RuleContext provides everything a Rule needs: the parsed script, the
// precomputed per-style and per-event analysis, and rule-specific config.
type RuleContext struct {
	Script *assast.Script

	// Styles maps declared style name to its ResolvedStyle, always
	// including a synthesized "Default" entry.
	Styles map[string]ResolvedStyle

	// Dialogues holds one DialogueInfo per event, in event order, aligned
	// with Script.Events().Events.
	Dialogues []DialogueInfo

	Overlaps []Overlap

	Config *config.RuleConfig
}

// Option returns a rule-specific option value, or the default if unset.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.Config == nil || rc.Config.Options == nil {
		return defaultValue
	}
	if v, ok := rc.Config.Options[key]; ok {
		return v
	}
	return defaultValue
}
