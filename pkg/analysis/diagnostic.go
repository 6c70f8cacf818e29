package analysis

import (
	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/config"
)

// Diagnostic is one lint finding, independent of the parse-time
// assast.ParseIssue channel, per spec.md §4.6.
type Diagnostic struct {
	RuleID   string
	RuleName string
	Message  string
	Severity config.Severity
	Span     assast.Span
}

// DiagnosticBuilder accumulates a Diagnostic's fields fluently, mirroring
// the teacher's diagnostic_builder.go.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnostic starts building a diagnostic for ruleID at span.
func NewDiagnostic(ruleID, message string, span assast.Span) *DiagnosticBuilder {
	return &DiagnosticBuilder{diag: Diagnostic{RuleID: ruleID, Message: message, Span: span}}
}

// WithSeverity sets the diagnostic's severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithRuleName sets the human-readable rule name.
func (b *DiagnosticBuilder) WithRuleName(name string) *DiagnosticBuilder {
	b.diag.RuleName = name
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
