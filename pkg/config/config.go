// Package config defines the pure, serializable configuration types used
// to tune the parser, incremental re-parser, and analysis engine. Nothing
// here performs file I/O; FromYAML decodes bytes a caller already read.
package config

import "github.com/wiedymi/ass-rs/pkg/assast"

// Severity mirrors assast.Severity as a YAML/JSON-friendly string enum, so
// LintConfig can be decoded from a plain config file without pulling in
// the AST package's numeric representation.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ToAST converts a config Severity to its assast.Severity equivalent,
// defaulting to SeverityWarning for an empty or unrecognized value.
func (s Severity) ToAST() assast.Severity {
	switch s {
	case SeverityError:
		return assast.SeverityError
	case SeverityInfo:
		return assast.SeverityInfo
	default:
		return assast.SeverityWarning
	}
}

// ParserConfig bounds the resource usage of a parse or incremental
// reparse, per spec.md §5.
type ParserConfig struct {
	// MaxInputSize is the size ceiling (in bytes) above which tokenizing
	// fails fatally with SizeLimitExceeded. Zero means use DefaultMaxInputSize.
	MaxInputSize int `mapstructure:"max_input_size" yaml:"max_input_size"`

	// MaxOverrideDepth bounds \t(...) nesting depth. Zero means use
	// DefaultMaxOverrideDepth.
	MaxOverrideDepth int `mapstructure:"max_override_depth" yaml:"max_override_depth"`

	// MaxDecodedBlobSize bounds the post-UU-decode size of an embedded
	// Font/Graphic entry. Zero means use DefaultMaxDecodedBlobSize.
	MaxDecodedBlobSize int `mapstructure:"max_decoded_blob_size" yaml:"max_decoded_blob_size"`

	// DefaultVersion is used when no ScriptType header and no
	// version-bearing styles-section header is present. Zero value
	// (VersionUnknown) means use assast.AssV4Plus, per spec.md §4.2 step 1.
	DefaultVersion assast.Version `mapstructure:"-" yaml:"-"`
}

const (
	// DefaultMaxInputSize is the 64 MiB ceiling named in spec.md §5.
	DefaultMaxInputSize = 64 * 1024 * 1024

	// DefaultMaxOverrideDepth is the \t nesting bound named in spec.md §4.3.
	DefaultMaxOverrideDepth = 8

	// DefaultMaxDecodedBlobSize bounds a single decoded Font/Graphic entry.
	DefaultMaxDecodedBlobSize = 3 * 1024 * 1024
)

// NewParserConfig returns a ParserConfig with spec-default bounds.
func NewParserConfig() *ParserConfig {
	return &ParserConfig{
		MaxInputSize:       DefaultMaxInputSize,
		MaxOverrideDepth:   DefaultMaxOverrideDepth,
		MaxDecodedBlobSize: DefaultMaxDecodedBlobSize,
		DefaultVersion:     assast.AssV4Plus,
	}
}

// Resolved returns a copy of cfg with zero fields filled in with defaults.
// Safe to call on a nil receiver.
func (c *ParserConfig) Resolved() ParserConfig {
	if c == nil {
		return *NewParserConfig()
	}
	out := *c
	if out.MaxInputSize <= 0 {
		out.MaxInputSize = DefaultMaxInputSize
	}
	if out.MaxOverrideDepth <= 0 {
		out.MaxOverrideDepth = DefaultMaxOverrideDepth
	}
	if out.MaxDecodedBlobSize <= 0 {
		out.MaxDecodedBlobSize = DefaultMaxDecodedBlobSize
	}
	if out.DefaultVersion == assast.VersionUnknown {
		out.DefaultVersion = assast.AssV4Plus
	}
	return out
}

// RuleConfig holds per-rule overrides for the lint engine.
type RuleConfig struct {
	Enabled  *bool          `mapstructure:"enabled"  yaml:"enabled"`
	Severity *Severity      `mapstructure:"severity" yaml:"severity"`
	Options  map[string]any `mapstructure:"options"  yaml:"options"`
}

// LintConfig controls which lint rules run and how.
type LintConfig struct {
	// SeverityDefault applies to rules that don't set their own severity.
	SeverityDefault Severity `mapstructure:"severity_default" yaml:"severity_default"`

	// Rules holds per-rule configuration keyed by rule ID (e.g. "ASS001").
	Rules map[string]RuleConfig `mapstructure:"rules" yaml:"rules"`

	// EnableRules / DisableRules override Rules[...].Enabled for a quick
	// one-off run without mutating the persisted config.
	EnableRules  []string `mapstructure:"-" yaml:"-"`
	DisableRules []string `mapstructure:"-" yaml:"-"`
}

// NewLintConfig returns a LintConfig with sensible defaults: every
// DefaultEnabled rule runs at its own default severity.
func NewLintConfig() *LintConfig {
	return &LintConfig{
		SeverityDefault: SeverityWarning,
		Rules:           make(map[string]RuleConfig),
	}
}
