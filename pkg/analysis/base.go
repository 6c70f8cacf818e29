package analysis

import "github.com/wiedymi/ass-rs/pkg/config"

// BaseRule provides a default Rule implementation; embed it in concrete
// rules and override Apply (and DefaultEnabled/DefaultSeverity if the
// defaults don't fit), mirroring the teacher's pkg/lint.BaseRule.
type BaseRule struct {
	id       string
	name     string
	desc     string
	severity config.Severity
}

// NewBaseRule creates a BaseRule with the given identity and default
// severity.
func NewBaseRule(id, name, desc string, severity config.Severity) BaseRule {
	return BaseRule{id: id, name: name, desc: desc, severity: severity}
}

func (r *BaseRule) ID() string          { return r.id }
func (r *BaseRule) Name() string        { return r.name }
func (r *BaseRule) Description() string { return r.desc }

// DefaultEnabled returns true; override to ship a rule disabled by default.
func (r *BaseRule) DefaultEnabled() bool { return true }

func (r *BaseRule) DefaultSeverity() config.Severity { return r.severity }

// Apply must be overridden by concrete rules.
func (r *BaseRule) Apply(_ *RuleContext) ([]Diagnostic, error) { return nil, nil }
