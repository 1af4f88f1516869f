package transform

import (
	"fmt"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ApplyRaise multiplies the base gross salary by (1 + Percent/100).
// A negative percent models a pay cut.
type ApplyRaise struct {
	Percent decimal.Decimal // e.g. 5 for +5%
}

func (ar *ApplyRaise) Name() string {
	return "apply_raise"
}

func (ar *ApplyRaise) Description() string {
	sign := "+"
	if ar.Percent.IsNegative() {
		sign = ""
	}
	return fmt.Sprintf("Change gross salary by %s%s%%", sign, ar.Percent.String())
}

func (ar *ApplyRaise) Validate(base *domain.SalaryScenario) error {
	if base == nil {
		return NewTransformError(ar.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if ar.Percent.LessThanOrEqual(hundred.Neg()) {
		return NewTransformError(ar.Name(), "validate", fmt.Sprintf("raise must be greater than -100%%, got %s%%", ar.Percent.String()), nil)
	}
	return nil
}

func (ar *ApplyRaise) Apply(base *domain.SalaryScenario) (*domain.SalaryScenario, error) {
	modified := base.DeepCopy()
	factor := decimal.NewFromInt(1).Add(ar.Percent.Div(hundred))
	modified.GrossSalary = base.GrossSalary.Mul(factor)
	return modified, nil
}

// SetGross replaces the base gross salary, e.g. to model a job offer
type SetGross struct {
	Amount decimal.Decimal
}

func (sg *SetGross) Name() string {
	return "set_gross"
}

func (sg *SetGross) Description() string {
	return fmt.Sprintf("Set gross salary to %s MAD", sg.Amount.StringFixed(2))
}

func (sg *SetGross) Validate(base *domain.SalaryScenario) error {
	if base == nil {
		return NewTransformError(sg.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if sg.Amount.LessThanOrEqual(decimal.Zero) {
		return NewTransformError(sg.Name(), "validate", fmt.Sprintf("gross salary must be positive, got %s", sg.Amount.String()), nil)
	}
	return nil
}

func (sg *SetGross) Apply(base *domain.SalaryScenario) (*domain.SalaryScenario, error) {
	modified := base.DeepCopy()
	modified.GrossSalary = sg.Amount
	return modified, nil
}

// SetContractType changes the contract label. It has no effect on the figures.
type SetContractType struct {
	ContractType domain.ContractType
}

func (sc *SetContractType) Name() string {
	return "set_contract"
}

func (sc *SetContractType) Description() string {
	return fmt.Sprintf("Set contract type to %s", sc.ContractType)
}

func (sc *SetContractType) Validate(base *domain.SalaryScenario) error {
	if base == nil {
		return NewTransformError(sc.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if sc.ContractType == "" || !sc.ContractType.IsKnown() {
		return NewTransformError(sc.Name(), "validate", fmt.Sprintf("unknown contract type %q", sc.ContractType), nil)
	}
	return nil
}

func (sc *SetContractType) Apply(base *domain.SalaryScenario) (*domain.SalaryScenario, error) {
	modified := base.DeepCopy()
	modified.ContractType = sc.ContractType
	return modified, nil
}
