package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one row of the monthly IR table, applied with the
// subtraction method: tax = taxable * Rate - Subtraction.
// UpperBound is zero for the open-ended top bracket.
type TaxBracket struct {
	LowerBound  decimal.Decimal `yaml:"lower_bound" json:"lowerBound"`
	UpperBound  decimal.Decimal `yaml:"upper_bound" json:"upperBound"`
	Rate        decimal.Decimal `yaml:"rate" json:"rate"`
	Subtraction decimal.Decimal `yaml:"subtraction" json:"subtraction"`
}

// IsOpen reports whether the bracket has no upper bound
func (b TaxBracket) IsOpen() bool {
	return b.UpperBound.IsZero()
}

// Contains reports whether taxable income falls at or below the bracket ceiling
func (b TaxBracket) Contains(taxable decimal.Decimal) bool {
	return b.IsOpen() || taxable.LessThanOrEqual(b.UpperBound)
}

// Tax applies the bracket formula, floored at zero
func (b TaxBracket) Tax(taxable decimal.Decimal) decimal.Decimal {
	tax := taxable.Mul(b.Rate).Sub(b.Subtraction)
	if tax.IsNegative() {
		return decimal.Zero
	}
	return tax
}

// ContributionRates holds the employee-side social contribution rates and caps
type ContributionRates struct {
	CNSSRate decimal.Decimal `yaml:"cnss_rate" json:"cnssRate"`
	CNSSCap  decimal.Decimal `yaml:"cnss_cap" json:"cnssCap"`
	AMORate  decimal.Decimal `yaml:"amo_rate" json:"amoRate"`
	IPERate  decimal.Decimal `yaml:"ipe_rate" json:"ipeRate"`
	IPECap   decimal.Decimal `yaml:"ipe_cap" json:"ipeCap"`

	// Professional-expense allowance (frais professionnels)
	FraisProRate decimal.Decimal `yaml:"frais_pro_rate" json:"fraisProRate"`
	FraisProCap  decimal.Decimal `yaml:"frais_pro_cap" json:"fraisProCap"`
}

// SeniorityStep grants Rate once MinYears of service are reached
type SeniorityStep struct {
	MinYears int             `yaml:"min_years" json:"minYears"`
	Rate     decimal.Decimal `yaml:"rate" json:"rate"`
}

// FiscalYear bundles every statutory constant valid for one tax year
type FiscalYear struct {
	Year                     int               `json:"year"`
	Brackets                 []TaxBracket      `json:"brackets"`
	Contributions            ContributionRates `json:"contributions"`
	Seniority                []SeniorityStep   `json:"seniority"`
	DependentAllowanceAnnual decimal.Decimal   `json:"dependentAllowanceAnnual"`
}

// ExemptionCeiling returns the upper bound of the zero-rate bracket
func (fy FiscalYear) ExemptionCeiling() decimal.Decimal {
	if len(fy.Brackets) == 0 {
		return decimal.Zero
	}
	return fy.Brackets[0].UpperBound
}
