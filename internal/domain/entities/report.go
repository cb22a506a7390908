package entities

import "time"

// SystemInput is everything read for one system before parsing
type SystemInput struct {
	Index        int // 1-based
	Matrix       AugmentedMatrix
	SolutionLine string
	CheckLine    string
}

// VectorCheck is the verification outcome for one candidate vector
type VectorCheck struct {
	Vector      Vector
	IsSolution  bool
	Residuals   []float64
	MaxResidual float64
}

// SystemResult holds the outcome for one system
type SystemResult struct {
	Index    int
	Matrix   AugmentedMatrix
	Solution *GeneralSolution
	// BaseCheck is nil for parametric solutions
	BaseCheck  *VectorCheck
	CheckCheck *VectorCheck
	// Err is set when the system was skipped
	Err error
}

// Skipped reports whether the system could not be verified
func (r *SystemResult) Skipped() bool {
	return r.Err != nil
}

// Failed reports whether any verified vector is not a solution
func (r *SystemResult) Failed() bool {
	if r.BaseCheck != nil && !r.BaseCheck.IsSolution {
		return true
	}
	return r.CheckCheck != nil && !r.CheckCheck.IsSolution
}

// BatchSummary aggregates a run
type BatchSummary struct {
	Systems        int
	Verified       int
	Skipped        int
	FailedVectors  int
	LargestResidue float64
}

// BatchReport is the full result of a run
type BatchReport struct {
	Dimension int
	Epsilon   float64
	Results   []*SystemResult
	Summary   BatchSummary
	Duration  time.Duration
}
