package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/ochairo/solcheck/internal/domain/entities"
)

// ReportFormatter renders the console report
type ReportFormatter struct{}

// NewReportFormatter creates a console report formatter
func NewReportFormatter() *ReportFormatter {
	return &ReportFormatter{}
}

// Format writes every system followed by a summary
func (f *ReportFormatter) Format(w io.Writer, report *entities.BatchReport) error {
	var b strings.Builder
	for _, result := range report.Results {
		writeSystem(&b, result)
	}
	writeSummary(&b, report)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSystem(b *strings.Builder, r *entities.SystemResult) {
	fmt.Fprintf(b, "Matrix #%d:\n", r.Index)
	if r.Matrix != nil {
		writeEquations(b, r.Matrix)
	}

	if r.Skipped() {
		fmt.Fprintf(b, "SKIPPED: %v\n\n", r.Err)
		return
	}

	if r.Solution.IsParametric() {
		fmt.Fprintf(b, "General solution: %s\n", FormatSolution(r.Solution))
	} else {
		b.WriteString("Solution: ")
		writeComponents(b, r.Solution.Base)
	}
	if r.BaseCheck != nil && !r.BaseCheck.IsSolution {
		fmt.Fprintf(b, "WARNING: The vector is NOT a solution to this system! (max residual %.3e)\n",
			r.BaseCheck.MaxResidual)
	}

	if r.CheckCheck != nil {
		b.WriteString("Check vector: ")
		writeComponents(b, r.CheckCheck.Vector)
		if !r.CheckCheck.IsSolution {
			fmt.Fprintf(b, "WARNING: The check vector is NOT a solution to this system! (max residual %.3e)\n",
				r.CheckCheck.MaxResidual)
		}
	}
	b.WriteString("\n")
}

func writeEquations(b *strings.Builder, m entities.AugmentedMatrix) {
	b.WriteString("System of equations:\n")
	n := m.Dimension()
	for _, row := range m {
		for j := 0; j < n; j++ {
			fmt.Fprintf(b, "%8.3f*x%d ", row[j], j+1)
		}
		fmt.Fprintf(b, "= %8.3f\n", row[n])
	}
}

func writeComponents(b *strings.Builder, v entities.Vector) {
	for i, x := range v {
		fmt.Fprintf(b, "x%d = %8.3f ", i+1, x)
	}
	b.WriteString("\n")
}

func writeSummary(b *strings.Builder, report *entities.BatchReport) {
	s := report.Summary
	fmt.Fprintf(b, "Summary: %d systems, %d verified, %d skipped, %d vector(s) NOT a solution (epsilon %g)\n",
		s.Systems, s.Verified, s.Skipped, s.FailedVectors, report.Epsilon)
	fmt.Fprintf(b, "Largest residual: %.3e\n", s.LargestResidue)
}

// FormatSolution renders a general solution as "x = [..] + a*[..] ..."
// listing only the directions present in the text
func FormatSolution(s *entities.GeneralSolution) string {
	var b strings.Builder
	b.WriteString("x = ")
	writeBracket(&b, s.Base)
	if s.IsParametric() {
		for _, label := range entities.Labels {
			if !s.HasDirection(label) {
				continue
			}
			fmt.Fprintf(&b, " + %s*", label)
			writeBracket(&b, s.Direction(label))
		}
	}
	return b.String()
}

func writeBracket(b *strings.Builder, v entities.Vector) {
	b.WriteString("[")
	for _, x := range v {
		fmt.Fprintf(b, "%8.3f", x)
	}
	b.WriteString(" ]")
}
