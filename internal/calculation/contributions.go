package calculation

import (
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ContributionCalculator computes the employee social contributions and the
// professional-expense allowance
type ContributionCalculator struct {
	Rates domain.ContributionRates
}

// NewContributionCalculator creates a calculator for the given rates
func NewContributionCalculator(rates domain.ContributionRates) *ContributionCalculator {
	return &ContributionCalculator{Rates: rates}
}

// cappedBase returns min(gross, ceiling) and whether the cap was hit.
// A gross exactly at the ceiling is not reported as capped.
func cappedBase(gross, ceiling decimal.Decimal) (decimal.Decimal, bool) {
	if gross.GreaterThan(ceiling) {
		return ceiling, true
	}
	return gross, false
}

// CNSS returns the social security contribution on the capped base
func (cc *ContributionCalculator) CNSS(gross decimal.Decimal) (decimal.Decimal, bool) {
	base, capped := cappedBase(gross, cc.Rates.CNSSCap)
	return base.Mul(cc.Rates.CNSSRate), capped
}

// AMO returns the health insurance contribution, uncapped
func (cc *ContributionCalculator) AMO(gross decimal.Decimal) decimal.Decimal {
	return gross.Mul(cc.Rates.AMORate)
}

// IPE returns the job-loss allowance contribution on the capped base
func (cc *ContributionCalculator) IPE(gross decimal.Decimal) (decimal.Decimal, bool) {
	base, capped := cappedBase(gross, cc.Rates.IPECap)
	return base.Mul(cc.Rates.IPERate), capped
}

// AdditionalFund returns the supplementary fund (CIMR etc.) deduction for a percentage rate
func (cc *ContributionCalculator) AdditionalFund(gross, ratePercent decimal.Decimal) decimal.Decimal {
	if ratePercent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return gross.Mul(ratePercent).Div(hundred)
}

// FraisProfessionnels returns the flat-rate expense allowance. It reduces the
// taxable base only, never the net pay.
func (cc *ContributionCalculator) FraisProfessionnels(gross decimal.Decimal) decimal.Decimal {
	return decimal.Min(gross.Mul(cc.Rates.FraisProRate), cc.Rates.FraisProCap)
}
