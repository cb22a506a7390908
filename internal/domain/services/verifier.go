package services

import (
	"math"

	"github.com/ochairo/solcheck/internal/domain/entities"
)

// IsSolution reports whether every row satisfies |sum_j a_ij*v_j - b_i| <= epsilon.
// Only the rows present are checked. A row whose width is not len(vector)+1, or a
// NaN residual, is never a solution.
func IsSolution(matrix entities.AugmentedMatrix, vector entities.Vector, epsilon float64) bool {
	if !shapeMatches(matrix, vector) {
		return false
	}
	for _, row := range matrix {
		if !(rowResidual(row, vector) <= epsilon) {
			return false
		}
	}
	return true
}

// Residuals returns the absolute residual of each row, or nil when a row has the wrong width
func Residuals(matrix entities.AugmentedMatrix, vector entities.Vector) []float64 {
	if !shapeMatches(matrix, vector) {
		return nil
	}
	out := make([]float64, len(matrix))
	for i, row := range matrix {
		out[i] = rowResidual(row, vector)
	}
	return out
}

// MaxResidual returns the largest residual; NaN wins over any number
func MaxResidual(residuals []float64) float64 {
	largest := 0.0
	for _, r := range residuals {
		if math.IsNaN(r) {
			return r
		}
		if r > largest {
			largest = r
		}
	}
	return largest
}

func rowResidual(row []float64, vector entities.Vector) float64 {
	n := len(vector)
	sum := 0.0
	for j := 0; j < n; j++ {
		sum += row[j] * vector[j]
	}
	return math.Abs(sum - row[n])
}

func shapeMatches(matrix entities.AugmentedMatrix, vector entities.Vector) bool {
	width := len(vector) + 1
	for _, row := range matrix {
		if len(row) != width {
			return false
		}
	}
	return true
}
