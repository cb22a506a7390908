// Package services defines interfaces for domain service contracts.
package services

import (
	"github.com/ochairo/solcheck/internal/domain/entities"
)

// SolutionService parses solution text and verifies vectors against a system
type SolutionService interface {
	// Parsing
	ParseSolution(line string, n int) (*entities.GeneralSolution, error)
	ParseCheckVector(line string, n int) (entities.Vector, error)

	// Verification
	Check(matrix entities.AugmentedMatrix, vector entities.Vector) *entities.VectorCheck
	Epsilon() float64
}
