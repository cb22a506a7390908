package yaml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ochairo/solcheck/internal/domain/entities"
)

func TestConfigParser_Parse_Valid(t *testing.T) {
	parser := NewConfigParser()
	yamlData := []byte(`epsilon: 1.0e-9
limits:
  max_dimension: 8
  max_systems: 20
on_error: skip
inputs:
  systems: data/systems.txt
  solutions: data/solutions.txt
integrity:
  checksums: true
  gpg_key_file: keys/maintainer.asc
  require_signatures: true
report:
  format: yaml
  output: out/report.yml
  chart: out/residuals.png
log_level: debug
`)

	cfg, err := parser.Parse(yamlData)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Epsilon != 1e-9 {
		t.Errorf("Epsilon = %v, want 1e-9", cfg.Epsilon)
	}
	if cfg.Limits.MaxDimension != 8 || cfg.Limits.MaxSystems != 20 {
		t.Errorf("Limits = %+v, want {8 20}", cfg.Limits)
	}
	if cfg.OnError != entities.PolicySkip {
		t.Errorf("OnError = %v, want skip", cfg.OnError)
	}
	if cfg.Inputs.Systems != "data/systems.txt" || cfg.Inputs.Solutions != "data/solutions.txt" {
		t.Errorf("Inputs = %+v", cfg.Inputs)
	}
	if !cfg.Security.Checksums || !cfg.Security.RequireSignatures {
		t.Errorf("Security = %+v, want checksums and signatures required", cfg.Security)
	}
	if cfg.Security.GPGKeyFile != "keys/maintainer.asc" {
		t.Errorf("GPGKeyFile = %v", cfg.Security.GPGKeyFile)
	}
	if cfg.Report.Format != entities.FormatYAML || cfg.Report.Output != "out/report.yml" || cfg.Report.Chart != "out/residuals.png" {
		t.Errorf("Report = %+v", cfg.Report)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestConfigParser_Parse_Defaults(t *testing.T) {
	cfg, err := NewConfigParser().Parse([]byte(`on_error: abort`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := entities.DefaultRunConfig()
	if cfg.Epsilon != want.Epsilon {
		t.Errorf("Epsilon = %v, want %v", cfg.Epsilon, want.Epsilon)
	}
	if cfg.Limits != want.Limits {
		t.Errorf("Limits = %+v, want %+v", cfg.Limits, want.Limits)
	}
	if cfg.Inputs != want.Inputs {
		t.Errorf("Inputs = %+v, want %+v", cfg.Inputs, want.Inputs)
	}
	if cfg.Report.Format != entities.FormatText {
		t.Errorf("Report.Format = %v, want text", cfg.Report.Format)
	}
}

func TestConfigParser_Parse_ZeroEpsilonKept(t *testing.T) {
	cfg, err := NewConfigParser().Parse([]byte("epsilon: 0\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Epsilon != 0 {
		t.Errorf("Epsilon = %v, want 0", cfg.Epsilon)
	}
}

func TestConfigParser_Parse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "negative epsilon", yaml: "epsilon: -1\n", wantErr: "epsilon"},
		{name: "infinite epsilon", yaml: "epsilon: .inf\n", wantErr: "epsilon"},
		{name: "negative limit", yaml: "limits:\n  max_dimension: -2\n", wantErr: "limits"},
		{name: "bad policy", yaml: "on_error: retry\n", wantErr: "on_error"},
		{name: "bad format", yaml: "report:\n  format: json\n", wantErr: "report format"},
		{name: "signatures without key", yaml: "integrity:\n  require_signatures: true\n", wantErr: "require_signatures"},
		{name: "broken yaml", yaml: "epsilon: [1\n", wantErr: "failed to parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfigParser().Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() should return error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigParser_ParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solcheck.yml")
	if err := os.WriteFile(path, []byte("epsilon: 0.5\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewConfigParser().ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if cfg.Epsilon != 0.5 {
		t.Errorf("Epsilon = %v, want 0.5", cfg.Epsilon)
	}

	if _, err := NewConfigParser().ParseFile(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("ParseFile() should fail for a missing file")
	}
}
