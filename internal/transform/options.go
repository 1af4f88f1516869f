package transform

import (
	"fmt"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

// AddYearsOfService adds tenure, which can move the scenario up the seniority scale
type AddYearsOfService struct {
	Years int
}

func (ay *AddYearsOfService) Name() string {
	return "add_years_of_service"
}

func (ay *AddYearsOfService) Description() string {
	return fmt.Sprintf("Add %d years of service", ay.Years)
}

func (ay *AddYearsOfService) Validate(base *domain.SalaryScenario) error {
	if base == nil {
		return NewTransformError(ay.Name(), "validate", "base scenario cannot be nil", nil)
	}
	total := base.Options.YearsOfService + ay.Years
	if total < 0 || total > domain.MaxYearsOfService {
		return NewTransformError(ay.Name(), "validate",
			fmt.Sprintf("years of service would be %d, must be between 0 and %d", total, domain.MaxYearsOfService), nil)
	}
	return nil
}

func (ay *AddYearsOfService) Apply(base *domain.SalaryScenario) (*domain.SalaryScenario, error) {
	modified := base.DeepCopy()
	modified.Options.YearsOfService += ay.Years
	return modified, nil
}

// SetDependents replaces the number of dependents
type SetDependents struct {
	Count int
}

func (sd *SetDependents) Name() string {
	return "set_dependents"
}

func (sd *SetDependents) Description() string {
	return fmt.Sprintf("Set dependents to %d", sd.Count)
}

func (sd *SetDependents) Validate(base *domain.SalaryScenario) error {
	if base == nil {
		return NewTransformError(sd.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if sd.Count < 0 || sd.Count > domain.MaxDependents {
		return NewTransformError(sd.Name(), "validate",
			fmt.Sprintf("dependents must be between 0 and %d, got %d", domain.MaxDependents, sd.Count), nil)
	}
	return nil
}

func (sd *SetDependents) Apply(base *domain.SalaryScenario) (*domain.SalaryScenario, error) {
	modified := base.DeepCopy()
	modified.Options.Dependents = sd.Count
	return modified, nil
}

// AddDependents adds dependents on top of the base scenario
type AddDependents struct {
	Count int
}

func (ad *AddDependents) Name() string {
	return "add_dependents"
}

func (ad *AddDependents) Description() string {
	return fmt.Sprintf("Add %d dependent(s)", ad.Count)
}

func (ad *AddDependents) Validate(base *domain.SalaryScenario) error {
	if base == nil {
		return NewTransformError(ad.Name(), "validate", "base scenario cannot be nil", nil)
	}
	total := base.Options.Dependents + ad.Count
	if total < 0 || total > domain.MaxDependents {
		return NewTransformError(ad.Name(), "validate",
			fmt.Sprintf("dependents would be %d, must be between 0 and %d", total, domain.MaxDependents), nil)
	}
	return nil
}

func (ad *AddDependents) Apply(base *domain.SalaryScenario) (*domain.SalaryScenario, error) {
	modified := base.DeepCopy()
	modified.Options.Dependents += ad.Count
	return modified, nil
}

// SetFundRate replaces the supplementary pension fund rate (CIMR etc.), in percent
type SetFundRate struct {
	Rate decimal.Decimal
}

func (sf *SetFundRate) Name() string {
	return "set_fund_rate"
}

func (sf *SetFundRate) Description() string {
	if sf.Rate.IsZero() {
		return "Remove supplementary fund contribution"
	}
	return fmt.Sprintf("Set supplementary fund rate to %s%%", sf.Rate.String())
}

func (sf *SetFundRate) Validate(base *domain.SalaryScenario) error {
	if base == nil {
		return NewTransformError(sf.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if sf.Rate.IsNegative() || sf.Rate.GreaterThan(domain.MaxAdditionalFundRate) {
		return NewTransformError(sf.Name(), "validate",
			fmt.Sprintf("fund rate must be between 0 and %s, got %s", domain.MaxAdditionalFundRate, sf.Rate), nil)
	}
	return nil
}

func (sf *SetFundRate) Apply(base *domain.SalaryScenario) (*domain.SalaryScenario, error) {
	modified := base.DeepCopy()
	modified.Options.AdditionalFundRate = sf.Rate
	return modified, nil
}
