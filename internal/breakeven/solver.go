package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	two         = decimal.NewFromInt(2)
	three       = decimal.NewFromInt(3)
	upperMargin = decimal.NewFromInt(10000)
	centime     = decimal.New(1, -2)
)

// Solver finds the gross salary needed to reach a net salary
type Solver struct {
	Engine  *calculation.SalaryEngine
	Options SolverOptions
}

// NewSolver creates a new reverse solver
func NewSolver(engine *calculation.SalaryEngine, options SolverOptions) *Solver {
	return &Solver{
		Engine:  engine,
		Options: options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(engine *calculation.SalaryEngine) *Solver {
	return NewSolver(engine, DefaultSolverOptions())
}

// GrossForNet bisects on the base gross salary until the computed net is within
// tolerance of the target. Net is non-decreasing in gross, so the bracket
// [target / (1 + seniority rate), 3 × target + 10000] always holds the answer.
func (s *Solver) GrossForNet(ctx context.Context, req ReverseRequest) (*ReverseResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	seniority := calculation.SeniorityRate(s.Engine.FiscalYear.Seniority, req.Options.YearsOfService)
	low := req.TargetNet.Div(decimal.NewFromInt(1).Add(seniority))
	high := req.TargetNet.Mul(three).Add(upperMargin)

	top, err := s.Engine.ComputeSalary(high, req.Options)
	if err != nil {
		return nil, &BreakEvenError{Operation: "gross_for_net", Message: "failed to evaluate upper bound", Cause: err}
	}
	if top.NetSalary.LessThan(req.TargetNet) {
		return nil, &BreakEvenError{
			Operation: "gross_for_net",
			Message:   fmt.Sprintf("target net %s MAD is out of range", req.TargetNet.StringFixed(2)),
		}
	}

	var mid decimal.Decimal
	iterations := 0
	converged := false

	for iterations < req.MaxIterations {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid = low.Add(high).Div(two)
		result, err := s.Engine.ComputeSalary(mid, req.Options)
		if err != nil {
			return nil, &BreakEvenError{Operation: "gross_for_net", Message: "failed to calculate salary", Cause: err}
		}

		diff := result.NetSalary.Sub(req.TargetNet)
		if diff.Abs().LessThanOrEqual(req.Tolerance) {
			converged = true
			break
		}

		if diff.IsNegative() {
			low = mid
		} else {
			high = mid
		}
	}

	gross, final, err := s.nearestCentime(mid, req)
	if err != nil {
		return nil, err
	}
	diff := final.NetSalary.Sub(req.TargetNet)
	success := diff.Abs().LessThanOrEqual(req.Tolerance)

	out := &ReverseResult{
		Request:     req,
		Success:     success,
		Iterations:  iterations,
		GrossSalary: gross,
		NetSalary:   final.NetSalary,
		Difference:  diff,
		Result:      final,
	}
	switch {
	case success:
		out.ConvergenceInfo = fmt.Sprintf("Converged to target net within %s MAD", req.Tolerance.String())
	case converged:
		out.ConvergenceInfo = fmt.Sprintf("Nearest centime misses target net by %s MAD", diff.Abs().StringFixed(4))
	default:
		out.ConvergenceInfo = fmt.Sprintf("Stopped after %d iterations", iterations)
	}

	if s.Engine.Logger != nil {
		s.Engine.Logger.Debugf("reverse solve: target=%s gross=%s iterations=%d converged=%t",
			req.TargetNet.StringFixed(2), gross.StringFixed(2), iterations, success)
	}

	return out, nil
}

// nearestCentime rounds gross to the centime and keeps whichever of it and its two
// neighbouring centimes yields the net closest to the target
func (s *Solver) nearestCentime(gross decimal.Decimal, req ReverseRequest) (decimal.Decimal, *domain.SalaryResult, error) {
	rounded := gross.Round(2)
	var best decimal.Decimal
	var bestResult *domain.SalaryResult
	for _, candidate := range []decimal.Decimal{rounded, rounded.Sub(centime), rounded.Add(centime)} {
		if !candidate.IsPositive() {
			continue
		}
		result, err := s.Engine.ComputeSalary(candidate, req.Options)
		if err != nil {
			return decimal.Zero, nil, &BreakEvenError{Operation: "gross_for_net", Message: "failed to calculate salary", Cause: err}
		}
		if bestResult == nil || result.NetSalary.Sub(req.TargetNet).Abs().LessThan(bestResult.NetSalary.Sub(req.TargetNet).Abs()) {
			best, bestResult = candidate, result
		}
	}
	return best, bestResult, nil
}

// GrossForNetValue is a shorthand for GrossForNet with default tolerance
func (s *Solver) GrossForNetValue(ctx context.Context, targetNet decimal.Decimal, opts domain.AdvancedOptions) (*ReverseResult, error) {
	return s.GrossForNet(ctx, ReverseRequest{TargetNet: targetNet, Options: opts})
}
