// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/solcheck/internal/domain/entities"
)

// MatrixSource yields the augmented matrices of a run, one per system
type MatrixSource interface {
	// Header returns the number of systems k and the dimension n
	Header(ctx context.Context) (k, n int, err error)

	// NextMatrix returns the next n x (n+1) augmented matrix
	NextMatrix(ctx context.Context, n int) (entities.AugmentedMatrix, error)
}

// SolutionSource yields the two solution text lines of each system
type SolutionSource interface {
	// NextLines returns the general solution line and the check vector line
	NextLines(ctx context.Context) (solution, check string, err error)
}
