package entities

// Capacity and tolerance defaults
const (
	DefaultEpsilon      = 1e-6
	DefaultMaxDimension = 5
	DefaultMaxSystems   = 6
)

// ErrorPolicy decides what a malformed system does to the batch
type ErrorPolicy string

// Error policies
const (
	PolicyAbort ErrorPolicy = "abort"
	PolicySkip  ErrorPolicy = "skip"
)

// ReportFormat selects the report renderer
type ReportFormat string

// Report formats
const (
	FormatText ReportFormat = "text"
	FormatYAML ReportFormat = "yaml"
)

// RunConfig is the resolved configuration of a check run
type RunConfig struct {
	Epsilon  float64
	Limits   Limits
	OnError  ErrorPolicy
	Inputs   InputFiles
	Security IntegrityConfig
	Report   ReportConfig
	LogLevel string
}

// Limits bounds n and k
type Limits struct {
	MaxDimension int
	MaxSystems   int
}

// InputFiles names the two input files
type InputFiles struct {
	Systems   string
	Solutions string
}

// IntegrityConfig controls input checksum and signature checks
type IntegrityConfig struct {
	Checksums         bool
	GPGKeyFile        string
	GPGKeysURL        string
	RequireSignatures bool
}

// Enabled reports whether any integrity check is requested
func (c IntegrityConfig) Enabled() bool {
	return c.Checksums || c.RequireSignatures || c.GPGKeyFile != "" || c.GPGKeysURL != ""
}

// ReportConfig controls report rendering
type ReportConfig struct {
	Format ReportFormat
	Output string // empty means stdout
	Chart  string // optional residual chart path
}

// DefaultRunConfig returns the built-in configuration
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Epsilon: DefaultEpsilon,
		Limits: Limits{
			MaxDimension: DefaultMaxDimension,
			MaxSystems:   DefaultMaxSystems,
		},
		OnError: PolicyAbort,
		Inputs: InputFiles{
			Systems:   "systems.txt",
			Solutions: "solutions.txt",
		},
		Report: ReportConfig{
			Format: FormatText,
		},
		LogLevel: "info",
	}
}
