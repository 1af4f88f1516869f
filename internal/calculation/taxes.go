package calculation

import (
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

// IncomeTaxCalculator handles the progressive IR (impôt sur le revenu) on monthly taxable income
type IncomeTaxCalculator struct {
	Year                     int
	Brackets                 []domain.TaxBracket
	DependentAllowanceAnnual decimal.Decimal
}

// NewIncomeTaxCalculator2025 creates an IR calculator with the 2025 tables
func NewIncomeTaxCalculator2025() *IncomeTaxCalculator {
	return NewIncomeTaxCalculator(FiscalYear2025())
}

// NewIncomeTaxCalculator creates an IR calculator for a fiscal year
func NewIncomeTaxCalculator(fy domain.FiscalYear) *IncomeTaxCalculator {
	return &IncomeTaxCalculator{
		Year:                     fy.Year,
		Brackets:                 fy.Brackets,
		DependentAllowanceAnnual: fy.DependentAllowanceAnnual,
	}
}

// BracketFor returns the bracket applied to taxable income: the first one whose
// ceiling is at or above it
func (itc *IncomeTaxCalculator) BracketFor(taxable decimal.Decimal) domain.TaxBracket {
	for _, bracket := range itc.Brackets {
		if bracket.Contains(taxable) {
			return bracket
		}
	}
	if len(itc.Brackets) == 0 {
		return domain.TaxBracket{}
	}
	return itc.Brackets[len(itc.Brackets)-1]
}

// CalculateIR returns the monthly IR before family allowances
func (itc *IncomeTaxCalculator) CalculateIR(taxable decimal.Decimal) decimal.Decimal {
	if taxable.LessThanOrEqual(decimal.Zero) || len(itc.Brackets) == 0 {
		return decimal.Zero
	}
	if taxable.LessThanOrEqual(itc.Brackets[0].UpperBound) {
		return decimal.Zero
	}
	return itc.BracketFor(taxable).Tax(taxable)
}

// MonthlyDependentAllowance returns the nominal monthly reduction for n dependents
func (itc *IncomeTaxCalculator) MonthlyDependentAllowance(dependents int) decimal.Decimal {
	if dependents <= 0 {
		return decimal.Zero
	}
	return itc.DependentAllowanceAnnual.Mul(decimal.NewFromInt(int64(dependents))).Div(decimal.NewFromInt(domain.MonthsPerYear))
}

// ApplyDependents reduces tax by the dependents allowance. The applied amount
// never exceeds tax, so the adjusted tax is never negative.
func (itc *IncomeTaxCalculator) ApplyDependents(tax decimal.Decimal, dependents int) (adjusted, applied decimal.Decimal) {
	applied = decimal.Min(itc.MonthlyDependentAllowance(dependents), tax)
	if applied.IsNegative() {
		applied = decimal.Zero
	}
	return tax.Sub(applied), applied
}
