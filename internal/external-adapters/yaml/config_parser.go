// Package yaml provides YAML-based run configuration and report rendering.
package yaml

import (
	"fmt"
	"math"
	"os"

	"github.com/ochairo/solcheck/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlConfig represents the raw YAML structure of solcheck.yml
type yamlConfig struct {
	Epsilon   *float64      `yaml:"epsilon"`
	Limits    yamlLimits    `yaml:"limits"`
	OnError   string        `yaml:"on_error"`
	Inputs    yamlInputs    `yaml:"inputs"`
	Integrity yamlIntegrity `yaml:"integrity"`
	Report    yamlReportCfg `yaml:"report"`
	LogLevel  string        `yaml:"log_level"`
}

type yamlLimits struct {
	MaxDimension int `yaml:"max_dimension"`
	MaxSystems   int `yaml:"max_systems"`
}

type yamlInputs struct {
	Systems   string `yaml:"systems"`
	Solutions string `yaml:"solutions"`
}

type yamlIntegrity struct {
	Checksums         bool   `yaml:"checksums"`
	GPGKeyFile        string `yaml:"gpg_key_file"`
	GPGKeysURL        string `yaml:"gpg_keys_url"`
	RequireSignatures bool   `yaml:"require_signatures"`
}

type yamlReportCfg struct {
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	Chart  string `yaml:"chart"`
}

// ConfigParser parses solcheck.yml files
type ConfigParser struct{}

// NewConfigParser creates a new YAML config parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML config file into a RunConfig
func (p *ConfigParser) ParseFile(filePath string) (*entities.RunConfig, error) {
	//nolint:gosec // G304: filePath is the user-selected config file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a RunConfig; missing keys keep their defaults
func (p *ConfigParser) Parse(data []byte) (*entities.RunConfig, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg := entities.DefaultRunConfig()
	if raw.Epsilon != nil {
		cfg.Epsilon = *raw.Epsilon
	}
	if raw.Limits.MaxDimension != 0 {
		cfg.Limits.MaxDimension = raw.Limits.MaxDimension
	}
	if raw.Limits.MaxSystems != 0 {
		cfg.Limits.MaxSystems = raw.Limits.MaxSystems
	}
	if raw.OnError != "" {
		cfg.OnError = entities.ErrorPolicy(raw.OnError)
	}
	if raw.Inputs.Systems != "" {
		cfg.Inputs.Systems = raw.Inputs.Systems
	}
	if raw.Inputs.Solutions != "" {
		cfg.Inputs.Solutions = raw.Inputs.Solutions
	}
	cfg.Security = entities.IntegrityConfig{
		Checksums:         raw.Integrity.Checksums,
		GPGKeyFile:        raw.Integrity.GPGKeyFile,
		GPGKeysURL:        raw.Integrity.GPGKeysURL,
		RequireSignatures: raw.Integrity.RequireSignatures,
	}
	if raw.Report.Format != "" {
		cfg.Report.Format = entities.ReportFormat(raw.Report.Format)
	}
	cfg.Report.Output = raw.Report.Output
	cfg.Report.Chart = raw.Report.Chart
	if raw.LogLevel != "" {
		cfg.LogLevel = raw.LogLevel
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateConfig checks value ranges and enums of a RunConfig
func ValidateConfig(cfg *entities.RunConfig) error {
	if math.IsNaN(cfg.Epsilon) || math.IsInf(cfg.Epsilon, 0) || cfg.Epsilon < 0 {
		return fmt.Errorf("epsilon must be a finite non-negative number, got %v", cfg.Epsilon)
	}
	if cfg.Limits.MaxDimension < 1 || cfg.Limits.MaxSystems < 1 {
		return fmt.Errorf("limits must be positive, got max_dimension=%d max_systems=%d",
			cfg.Limits.MaxDimension, cfg.Limits.MaxSystems)
	}
	switch cfg.OnError {
	case entities.PolicyAbort, entities.PolicySkip:
	default:
		return fmt.Errorf("on_error must be %q or %q, got %q", entities.PolicyAbort, entities.PolicySkip, cfg.OnError)
	}
	switch cfg.Report.Format {
	case entities.FormatText, entities.FormatYAML:
	default:
		return fmt.Errorf("report format must be %q or %q, got %q", entities.FormatText, entities.FormatYAML, cfg.Report.Format)
	}
	if cfg.Security.RequireSignatures && cfg.Security.GPGKeyFile == "" && cfg.Security.GPGKeysURL == "" {
		return fmt.Errorf("require_signatures needs gpg_key_file or gpg_keys_url")
	}
	return nil
}
