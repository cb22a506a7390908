package services

import (
	"github.com/ochairo/solcheck/internal/domain/entities"
	"github.com/ochairo/solcheck/internal/domain/interfaces/services"
)

// solutionService implements SolutionService on top of the pure parsers and verifier
type solutionService struct {
	epsilon float64
}

// NewSolutionService creates a solution service with the given tolerance
func NewSolutionService(epsilon float64) services.SolutionService {
	return &solutionService{epsilon: epsilon}
}

// ParseSolution parses the general solution line
func (s *solutionService) ParseSolution(line string, n int) (*entities.GeneralSolution, error) {
	return ParseSolutionLine(line, n)
}

// ParseCheckVector parses the check vector line
func (s *solutionService) ParseCheckVector(line string, n int) (entities.Vector, error) {
	return ParseCheckVector(line, n)
}

// Check verifies one vector and records its residuals; the result owns a copy of vector
func (s *solutionService) Check(matrix entities.AugmentedMatrix, vector entities.Vector) *entities.VectorCheck {
	residuals := Residuals(matrix, vector)
	return &entities.VectorCheck{
		Vector:      vector.Clone(),
		IsSolution:  IsSolution(matrix, vector, s.epsilon),
		Residuals:   residuals,
		MaxResidual: MaxResidual(residuals),
	}
}

// Epsilon returns the configured tolerance
func (s *solutionService) Epsilon() float64 {
	return s.epsilon
}
