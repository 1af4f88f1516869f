package transform

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/salairenet/internal/domain"
)

// ScenarioTransform is one "what if" change to a salary scenario: a raise, more
// seniority, another fund rate. Apply never modifies its argument.
type ScenarioTransform interface {
	Apply(base *domain.SalaryScenario) (*domain.SalaryScenario, error)
	Name() string        // e.g. "apply_raise"
	Description() string // e.g. "Change gross salary by +10%"
	Validate(base *domain.SalaryScenario) error
}

// ApplyTransforms runs transforms in order, each on the previous output, and returns
// the resulting scenario. Errors are *ChainError naming the scenario and the step.
// A chain that leaves the gross salary non-positive is rejected as a whole.
func ApplyTransforms(base *domain.SalaryScenario, transforms []ScenarioTransform) (*domain.SalaryScenario, error) {
	if base == nil {
		return nil, fmt.Errorf("base scenario cannot be nil")
	}

	current := base.DeepCopy()
	for i, t := range transforms {
		if t == nil {
			return nil, &ChainError{Scenario: base.Name, Step: i, Err: fmt.Errorf("transform at index %d is nil", i)}
		}
		if err := t.Validate(current); err != nil {
			return nil, &ChainError{Scenario: base.Name, Step: i, Transform: t.Name(), Err: err}
		}
		next, err := t.Apply(current)
		if err != nil {
			return nil, &ChainError{Scenario: base.Name, Step: i, Transform: t.Name(), Err: err}
		}
		current = next
	}

	if len(transforms) > 0 && !current.GrossSalary.IsPositive() {
		return nil, &ChainError{
			Scenario: base.Name,
			Step:     len(transforms) - 1,
			Err:      fmt.Errorf("gross salary %s MAD is not positive after %s", current.GrossSalary.StringFixed(2), DescribeChain(transforms)),
		}
	}
	return current, nil
}

// DescribeChain joins transform descriptions, e.g. "Change gross salary by +10%, then Add 2 years of service"
func DescribeChain(transforms []ScenarioTransform) string {
	parts := make([]string, 0, len(transforms))
	for _, t := range transforms {
		if t != nil {
			parts = append(parts, t.Description())
		}
	}
	if len(parts) == 0 {
		return "no changes"
	}
	return strings.Join(parts, ", then ")
}

// ChainError reports which scenario and which step of a transform chain failed
type ChainError struct {
	Scenario  string
	Step      int
	Transform string
	Err       error
}

func (e *ChainError) Error() string {
	if e.Transform == "" {
		return fmt.Sprintf("scenario %q, step %d: %v", e.Scenario, e.Step+1, e.Err)
	}
	return fmt.Sprintf("scenario %q, step %d (%s): %v", e.Scenario, e.Step+1, e.Transform, e.Err)
}

func (e *ChainError) Unwrap() error { return e.Err }

// TransformError is a single transform's refusal of its parameters or its base
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error { return e.Err }

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
