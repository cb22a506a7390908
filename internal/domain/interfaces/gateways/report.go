// Package gateways defines interfaces for the tool's output and integrity collaborators.
package gateways

import (
	"io"

	"github.com/ochairo/solcheck/internal/domain/entities"
)

// ReportFormatter renders a finished batch
type ReportFormatter interface {
	Format(w io.Writer, report *entities.BatchReport) error
}

// ChartRenderer draws residuals of a finished batch to a file
type ChartRenderer interface {
	Render(report *entities.BatchReport, path string) error
}
