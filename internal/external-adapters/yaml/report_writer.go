package yaml

import (
	"fmt"
	"io"

	"github.com/ochairo/solcheck/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

type yamlReport struct {
	Dimension int          `yaml:"dimension"`
	Epsilon   float64      `yaml:"epsilon"`
	Systems   []yamlSystem `yaml:"systems"`
	Summary   yamlSummary  `yaml:"summary"`
}

type yamlSystem struct {
	Index       int           `yaml:"index"`
	Matrix      [][]float64   `yaml:"matrix,flow"`
	Solution    *yamlSolution `yaml:"solution,omitempty"`
	BaseCheck   *yamlCheck    `yaml:"base_check,omitempty"`
	CheckVector *yamlCheck    `yaml:"check_vector,omitempty"`
	Error       string        `yaml:"error,omitempty"`
}

type yamlSolution struct {
	Kind       string               `yaml:"kind"`
	Base       []float64            `yaml:"base,flow"`
	Directions map[string][]float64 `yaml:"directions,omitempty"`
}

type yamlCheck struct {
	Vector      []float64 `yaml:"vector,flow"`
	IsSolution  bool      `yaml:"is_solution"`
	Residuals   []float64 `yaml:"residuals,flow"`
	MaxResidual float64   `yaml:"max_residual"`
}

type yamlSummary struct {
	Systems         int     `yaml:"systems"`
	Verified        int     `yaml:"verified"`
	Skipped         int     `yaml:"skipped"`
	FailedVectors   int     `yaml:"failed_vectors"`
	LargestResidual float64 `yaml:"largest_residual"`
}

// ReportWriter renders a batch report as YAML
type ReportWriter struct{}

// NewReportWriter creates a YAML report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Format writes the report document
func (r *ReportWriter) Format(w io.Writer, report *entities.BatchReport) error {
	doc := yamlReport{
		Dimension: report.Dimension,
		Epsilon:   report.Epsilon,
		Systems:   make([]yamlSystem, 0, len(report.Results)),
		Summary: yamlSummary{
			Systems:         report.Summary.Systems,
			Verified:        report.Summary.Verified,
			Skipped:         report.Summary.Skipped,
			FailedVectors:   report.Summary.FailedVectors,
			LargestResidual: report.Summary.LargestResidue,
		},
	}

	for _, result := range report.Results {
		sys := yamlSystem{
			Index:       result.Index,
			Matrix:      result.Matrix,
			Solution:    convertSolution(result.Solution),
			BaseCheck:   convertCheck(result.BaseCheck),
			CheckVector: convertCheck(result.CheckCheck),
		}
		if result.Err != nil {
			sys.Error = result.Err.Error()
		}
		doc.Systems = append(doc.Systems, sys)
	}

	return encode(w, doc)
}

// WriteSolution renders a single parsed solution
func (r *ReportWriter) WriteSolution(w io.Writer, solution *entities.GeneralSolution) error {
	return encode(w, convertSolution(solution))
}

func encode(w io.Writer, doc interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func convertSolution(s *entities.GeneralSolution) *yamlSolution {
	if s == nil {
		return nil
	}
	out := &yamlSolution{
		Kind: s.Kind.String(),
		Base: s.Base,
	}
	if s.IsParametric() {
		out.Directions = make(map[string][]float64, len(s.Supplied))
		for _, label := range s.Supplied {
			out.Directions[label.String()] = s.Direction(label)
		}
	}
	return out
}

func convertCheck(c *entities.VectorCheck) *yamlCheck {
	if c == nil {
		return nil
	}
	return &yamlCheck{
		Vector:      c.Vector,
		IsSolution:  c.IsSolution,
		Residuals:   c.Residuals,
		MaxResidual: c.MaxResidual,
	}
}
