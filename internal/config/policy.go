package config

import (
	"fmt"
	"os"
	"strings"

	"taskboard/internal/dependency"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Policy is the dependency enforcement policy, optionally loaded from a
// YAML file:
//
//	gated_columns:
//	  - Next Up
//	  - Working On
type Policy struct {
	GatedColumns []string `yaml:"gated_columns"`
}

// LoadPolicy reads a YAML policy file from path.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read policy %s: %w", path, err)
	}
	return ParsePolicy(data)
}

// ParsePolicy unmarshals and validates YAML policy bytes.
func ParsePolicy(data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("config: parse policy: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Policy) validate() error {
	var result *multierror.Error
	for i, name := range p.GatedColumns {
		if strings.TrimSpace(name) == "" {
			result = multierror.Append(result, fmt.Errorf("config: gated_columns[%d] is empty", i))
		}
		if strings.Contains(name, ",") {
			result = multierror.Append(result, fmt.Errorf("config: gated_columns[%d] %q must not contain a comma", i, name))
		}
	}
	return result.ErrorOrNil()
}

// DefaultGated resolves the server-wide gated column set. A policy file
// wins over GATED_COLUMNS.
func (c *Config) DefaultGated() (dependency.GatedColumns, error) {
	if c.PolicyFile == "" {
		return dependency.ParseGatedColumns(c.GatedColumns), nil
	}
	p, err := LoadPolicy(c.PolicyFile)
	if err != nil {
		return nil, err
	}
	return dependency.NewGatedColumns(p.GatedColumns...), nil
}
