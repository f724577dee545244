package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed targets.yaml
var defaultTargetsYAML []byte

// TargetList is the structure of targets.yaml.
type TargetList struct {
	// Targets is the ordered list of URLs to check.
	Targets []string `yaml:"targets"`
}

// ParseTargets decodes a YAML target list.
// Order is preserved. Duplicates are kept because every entry is checked.
func ParseTargets(data []byte) ([]string, error) {
	var list TargetList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse target list: %w", err)
	}
	return list.Targets, nil
}

// DefaultTargets returns the URL list compiled into the binary.
func DefaultTargets() ([]string, error) {
	return ParseTargets(defaultTargetsYAML)
}
