package config_test

import (
	"testing"

	"github.com/wiedymi/ass-rs/pkg/assast"
	"github.com/wiedymi/ass-rs/pkg/config"
)

func TestParserConfig_Resolved(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver returns defaults", func(t *testing.T) {
		t.Parallel()

		var c *config.ParserConfig
		resolved := c.Resolved()
		if resolved.MaxInputSize != config.DefaultMaxInputSize {
			t.Errorf("expected default max input size, got %d", resolved.MaxInputSize)
		}
		if resolved.DefaultVersion != assast.AssV4Plus {
			t.Errorf("expected default version AssV4Plus, got %v", resolved.DefaultVersion)
		}
	})

	t.Run("zero fields filled, set fields preserved", func(t *testing.T) {
		t.Parallel()

		c := &config.ParserConfig{MaxOverrideDepth: 3}
		resolved := c.Resolved()
		if resolved.MaxOverrideDepth != 3 {
			t.Errorf("expected overridden depth 3, got %d", resolved.MaxOverrideDepth)
		}
		if resolved.MaxInputSize != config.DefaultMaxInputSize {
			t.Errorf("expected default max input size, got %d", resolved.MaxInputSize)
		}
	})
}

func TestLintConfigFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
severity_default: error
rules:
  ASS001:
    enabled: false
  ASS002:
    severity: info
    options:
      max_length: 42
`)

	cfg, err := config.LintConfigFromYAML(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SeverityDefault != config.SeverityError {
		t.Errorf("expected severity_default error, got %v", cfg.SeverityDefault)
	}
	rc, ok := cfg.Rules["ASS001"]
	if !ok {
		t.Fatal("expected ASS001 rule config")
	}
	if rc.Enabled == nil || *rc.Enabled {
		t.Error("expected ASS001 enabled=false")
	}
	rc2 := cfg.Rules["ASS002"]
	if rc2.Severity == nil || *rc2.Severity != config.SeverityInfo {
		t.Error("expected ASS002 severity=info")
	}
}

func TestSeverity_ToAST(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       config.Severity
		expected assast.Severity
	}{
		{config.SeverityError, assast.SeverityError},
		{config.SeverityWarning, assast.SeverityWarning},
		{config.SeverityInfo, assast.SeverityInfo},
		{"", assast.SeverityWarning},
	}
	for _, tc := range tests {
		if got := tc.in.ToAST(); got != tc.expected {
			t.Errorf("%q.ToAST() = %v, want %v", tc.in, got, tc.expected)
		}
	}
}
