package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LintConfigFromYAML decodes a LintConfig from YAML bytes a caller has
// already read (the core performs no file I/O of its own — see spec.md §5
// "No global state other than the plugin registry").
func LintConfigFromYAML(data []byte) (*LintConfig, error) {
	cfg := NewLintConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse lint config yaml: %w", err)
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]RuleConfig)
	}
	return cfg, nil
}

// ToYAML serializes cfg back to YAML, useful for an editor that wants to
// persist a config a user edited through a UI rather than a text file.
func (c *LintConfig) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode lint config yaml: %w", err)
	}
	return data, nil
}
