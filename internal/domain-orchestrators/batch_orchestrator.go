// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ochairo/solcheck/internal/domain/entities"
	"github.com/ochairo/solcheck/internal/domain/interfaces"
	"github.com/ochairo/solcheck/internal/domain/interfaces/repositories"
	"github.com/ochairo/solcheck/internal/domain/interfaces/services"
)

// BatchOrchestrator runs every system of a batch through parsing and verification
type BatchOrchestrator struct {
	solutions services.SolutionService
	logger    interfaces.Logger
	limits    entities.Limits
	policy    entities.ErrorPolicy
}

// BatchOrchestratorConfig holds configuration for the orchestrator
type BatchOrchestratorConfig struct {
	Limits  entities.Limits
	OnError entities.ErrorPolicy
}

// NewBatchOrchestrator creates a new batch orchestrator
func NewBatchOrchestrator(solutions services.SolutionService, logger interfaces.Logger, config BatchOrchestratorConfig) *BatchOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	limits := config.Limits
	if limits.MaxDimension == 0 {
		limits.MaxDimension = entities.DefaultMaxDimension
	}
	if limits.MaxSystems == 0 {
		limits.MaxSystems = entities.DefaultMaxSystems
	}
	policy := config.OnError
	if policy == "" {
		policy = entities.PolicyAbort
	}

	return &BatchOrchestrator{
		solutions: solutions,
		logger:    logger,
		limits:    limits,
		policy:    policy,
	}
}

// Run processes systems in input order.
//
// Matrix read failures always abort since the systems stream cannot be
// resynchronised. Solution failures abort or skip per the error policy. On
// abort the returned report still holds every system processed so far,
// including the failing one.
func (o *BatchOrchestrator) Run(ctx context.Context, matrices repositories.MatrixSource, solutions repositories.SolutionSource) (*entities.BatchReport, error) {
	startTime := time.Now()
	report := &entities.BatchReport{Epsilon: o.solutions.Epsilon()}

	// Step 1: Read and bound the header
	k, n, err := matrices.Header(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to read header: %w", err)
	}
	if err := o.checkCapacity(k, n); err != nil {
		return report, err
	}
	report.Dimension = n
	report.Summary.Systems = k
	o.logger.Info("starting batch", interfaces.F("systems", k), interfaces.F("dimension", n),
		interfaces.F("epsilon", report.Epsilon), interfaces.F("on_error", o.policy))

	for index := 1; index <= k; index++ {
		if err := ctx.Err(); err != nil {
			return o.finish(report, startTime), err
		}

		// Step 2: Read the augmented matrix
		matrix, err := matrices.NextMatrix(ctx, n)
		if err != nil {
			sysErr := &entities.SystemError{Index: index, Err: err}
			o.logger.Error("failed to read matrix", interfaces.F("system", index), interfaces.F("error", err))
			return o.finish(report, startTime), sysErr
		}

		// Step 3: Parse and verify
		result := o.processSystem(ctx, index, n, matrix, solutions)
		report.Results = append(report.Results, result)

		if result.Skipped() {
			if o.policy == entities.PolicyAbort {
				o.logger.Error("aborting batch", interfaces.F("system", index), interfaces.F("error", result.Err))
				return o.finish(report, startTime), &entities.SystemError{Index: index, Err: result.Err}
			}
			o.logger.Warn("skipping system", interfaces.F("system", index), interfaces.F("error", result.Err))
		}
	}

	return o.finish(report, startTime), nil
}

func (o *BatchOrchestrator) processSystem(ctx context.Context, index, n int, matrix entities.AugmentedMatrix, source repositories.SolutionSource) *entities.SystemResult {
	solutionLine, checkLine, err := source.NextLines(ctx)
	if err != nil {
		return &entities.SystemResult{
			Index:  index,
			Matrix: matrix,
			Err:    fmt.Errorf("failed to read solution lines: %w", err),
		}
	}

	return o.verifySystem(entities.SystemInput{
		Index:        index,
		Matrix:       matrix,
		SolutionLine: solutionLine,
		CheckLine:    checkLine,
	}, n)
}

func (o *BatchOrchestrator) verifySystem(input entities.SystemInput, n int) *entities.SystemResult {
	result := &entities.SystemResult{Index: input.Index, Matrix: input.Matrix}

	solution, err := o.solutions.ParseSolution(input.SolutionLine, n)
	if err != nil {
		result.Err = fmt.Errorf("general solution: %w", err)
		return result
	}
	check, err := o.solutions.ParseCheckVector(input.CheckLine, n)
	if err != nil {
		result.Err = fmt.Errorf("check vector: %w", err)
		return result
	}

	result.Solution = solution
	if !solution.IsParametric() {
		result.BaseCheck = o.solutions.Check(input.Matrix, solution.Base)
	}
	result.CheckCheck = o.solutions.Check(input.Matrix, check)

	o.logger.Debug("system verified",
		interfaces.F("system", input.Index),
		interfaces.F("kind", solution.Kind),
		interfaces.F("failed", result.Failed()),
	)
	return result
}

func (o *BatchOrchestrator) checkCapacity(k, n int) error {
	if n > o.limits.MaxDimension {
		return fmt.Errorf("%w: dimension %d exceeds limit %d", entities.ErrDimensionExceeded, n, o.limits.MaxDimension)
	}
	if k > o.limits.MaxSystems {
		return fmt.Errorf("%w: %d systems exceed limit %d", entities.ErrDimensionExceeded, k, o.limits.MaxSystems)
	}
	return nil
}

func (o *BatchOrchestrator) finish(report *entities.BatchReport, startTime time.Time) *entities.BatchReport {
	summary := &report.Summary
	summary.Verified, summary.Skipped, summary.FailedVectors = 0, 0, 0
	summary.LargestResidue = 0

	for _, r := range report.Results {
		if r.Skipped() {
			summary.Skipped++
			continue
		}
		summary.Verified++
		for _, c := range []*entities.VectorCheck{r.BaseCheck, r.CheckCheck} {
			if c == nil {
				continue
			}
			if !c.IsSolution {
				summary.FailedVectors++
			}
			if math.IsNaN(c.MaxResidual) || c.MaxResidual > summary.LargestResidue {
				summary.LargestResidue = c.MaxResidual
			}
		}
	}

	report.Duration = time.Since(startTime)
	return report
}
