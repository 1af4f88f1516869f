package breakeven

import (
	"fmt"

	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

// ReverseRequest asks for the gross salary producing a target net salary
type ReverseRequest struct {
	TargetNet     decimal.Decimal        `json:"targetNet"`
	Options       domain.AdvancedOptions `json:"options"`
	Tolerance     decimal.Decimal        `json:"tolerance"`     // Maximum |net - target| in MAD
	MaxIterations int                    `json:"maxIterations"` // Maximum bisection steps
}

// ReverseResult contains the outcome of a reverse solve
type ReverseResult struct {
	Request         ReverseRequest `json:"request"`
	Success         bool           `json:"success"`
	Iterations      int            `json:"iterations"`
	ConvergenceInfo string         `json:"convergenceInfo,omitempty"`

	// Gross salary found, rounded to the centime
	GrossSalary decimal.Decimal      `json:"grossSalary"`
	NetSalary   decimal.Decimal      `json:"netSalary"`
	Difference  decimal.Decimal      `json:"difference"` // NetSalary - TargetNet
	Result      *domain.SalaryResult `json:"result"`
}

// ScenarioReverseResult pairs a scenario name with its reverse solve
type ScenarioReverseResult struct {
	ScenarioName string `json:"scenarioName"`
	ReverseResult
}

// MultiScenarioResult contains reverse solves for every scenario of a configuration
type MultiScenarioResult struct {
	TargetNet       decimal.Decimal         `json:"targetNet"`
	Results         []ScenarioReverseResult `json:"results"`
	Cheapest        *ScenarioReverseResult  `json:"cheapest,omitempty"`
	Recommendations []string                `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance in MAD
	MaxIterations int             // Maximum iterations
}

// Request limits; zero values select the solver defaults
var (
	MaxRequestIterations = 100
	MinRequestTolerance  = decimal.New(1, -3)
)

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromFloat(0.01),
		MaxIterations: 100,
	}
}

// Validate checks the request before solving
func (r *ReverseRequest) Validate() error {
	if !r.TargetNet.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "target net salary must be positive",
			Cause:     calculation.ErrInvalidInput,
		}
	}
	if r.Tolerance.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "tolerance cannot be negative",
			Cause:     calculation.ErrInvalidInput,
		}
	}
	if r.MaxIterations < 0 {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   fmt.Sprintf("max iterations cannot be negative: %d", r.MaxIterations),
			Cause:     calculation.ErrInvalidInput,
		}
	}
	if r.MaxIterations > MaxRequestIterations {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   fmt.Sprintf("max iterations %d exceeds limit %d", r.MaxIterations, MaxRequestIterations),
			Cause:     calculation.ErrInvalidInput,
		}
	}
	if !r.Tolerance.IsZero() && r.Tolerance.LessThan(MinRequestTolerance) {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   fmt.Sprintf("tolerance %s is below minimum %s", r.Tolerance.String(), MinRequestTolerance.String()),
			Cause:     calculation.ErrInvalidInput,
		}
	}
	return nil
}

// BreakEvenError represents errors from the reverse solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
