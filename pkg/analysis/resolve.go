package analysis

import "github.com/wiedymi/ass-rs/pkg/config"

// ResolvedRule pairs a Rule with its resolved configuration, mirroring the
// teacher's pkg/lint.ResolvedRule.
type ResolvedRule struct {
	Rule     Rule
	Enabled  bool
	Severity config.Severity
	Config   *config.RuleConfig
}

// ResolveRules determines which rules from registry should run, and at
// what severity, given cfg. Returns only enabled rules.
func ResolveRules(registry *Registry, cfg *config.LintConfig) []ResolvedRule {
	var resolved []ResolvedRule
	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}
	return resolved
}

func resolveRule(rule Rule, cfg *config.LintConfig) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
	}
	if cfg == nil {
		return rr
	}
	if rr.Severity == "" && cfg.SeverityDefault != "" {
		rr.Severity = cfg.SeverityDefault
	}

	if ruleCfg, ok := cfg.Rules[rule.ID()]; ok {
		rr.Config = &ruleCfg
		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			rr.Severity = *ruleCfg.Severity
		}
	}

	for _, id := range cfg.EnableRules {
		if id == rule.ID() {
			rr.Enabled = true
		}
	}
	for _, id := range cfg.DisableRules {
		if id == rule.ID() {
			rr.Enabled = false
		}
	}

	return rr
}
