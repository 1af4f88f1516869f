package calculation

import (
	"fmt"
	"sort"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

// FISCAL YEAR 2025 STATUTORY VALUES
//
// 1. IR brackets (monthly, subtraction method), loi de finances 2025:
//    0% up to 3333.33, then 10/20/30/34/37% with subtractions
//    333.33, 833.33, 1500.00, 1833.33, 2283.33
//
// 2. Employee contributions:
//    - CNSS 4.29% on gross capped at 6000/month
//    - AMO 2.26% on full gross
//    - IPE 0.19% on the same 6000 cap as CNSS
//
// 3. Frais professionnels: 25% of gross, capped at 2916.66/month.
//    Earlier revisions used 20% capped at 2500; 25%/2916.66 is the current rule.
//
// 4. Family charges: 500 MAD per dependent per year, deducted monthly (500/12).
//
// 5. Prime d'ancienneté (Code du travail art. 350): 5% after 2 years, 10% after 5,
//    15% after 12, 20% after 20, 25% after 25.

// Year2025 is the fiscal year of the 2025 tables
const Year2025 = 2025

// TaxTable2025 returns the 2025 monthly IR brackets
func TaxTable2025() []domain.TaxBracket {
	return []domain.TaxBracket{
		{LowerBound: decimal.Zero, UpperBound: decimal.NewFromFloat(3333.33), Rate: decimal.Zero, Subtraction: decimal.Zero},
		{LowerBound: decimal.NewFromFloat(3333.34), UpperBound: decimal.NewFromFloat(5000.00), Rate: decimal.NewFromFloat(0.10), Subtraction: decimal.NewFromFloat(333.33)},
		{LowerBound: decimal.NewFromFloat(5000.01), UpperBound: decimal.NewFromFloat(6666.67), Rate: decimal.NewFromFloat(0.20), Subtraction: decimal.NewFromFloat(833.33)},
		{LowerBound: decimal.NewFromFloat(6666.68), UpperBound: decimal.NewFromFloat(8333.33), Rate: decimal.NewFromFloat(0.30), Subtraction: decimal.NewFromFloat(1500.00)},
		{LowerBound: decimal.NewFromFloat(8333.34), UpperBound: decimal.NewFromFloat(15000.00), Rate: decimal.NewFromFloat(0.34), Subtraction: decimal.NewFromFloat(1833.33)},
		{LowerBound: decimal.NewFromFloat(15000.01), UpperBound: decimal.Zero, Rate: decimal.NewFromFloat(0.37), Subtraction: decimal.NewFromFloat(2283.33)},
	}
}

// Contributions2025 returns the 2025 employee contribution rates and caps
func Contributions2025() domain.ContributionRates {
	return domain.ContributionRates{
		CNSSRate:     decimal.NewFromFloat(0.0429),
		CNSSCap:      decimal.NewFromInt(6000),
		AMORate:      decimal.NewFromFloat(0.0226),
		IPERate:      decimal.NewFromFloat(0.0019),
		IPECap:       decimal.NewFromInt(6000),
		FraisProRate: decimal.NewFromFloat(0.25),
		FraisProCap:  decimal.NewFromFloat(2916.66),
	}
}

// SeniorityScale2025 returns the seniority bonus steps, ascending by MinYears
func SeniorityScale2025() []domain.SeniorityStep {
	return []domain.SeniorityStep{
		{MinYears: 2, Rate: decimal.NewFromFloat(0.05)},
		{MinYears: 5, Rate: decimal.NewFromFloat(0.10)},
		{MinYears: 12, Rate: decimal.NewFromFloat(0.15)},
		{MinYears: 20, Rate: decimal.NewFromFloat(0.20)},
		{MinYears: 25, Rate: decimal.NewFromFloat(0.25)},
	}
}

// DependentAllowance2025 returns the yearly IR reduction per dependent
func DependentAllowance2025() decimal.Decimal {
	return decimal.NewFromInt(500)
}

// FiscalYear2025 bundles every 2025 table
func FiscalYear2025() domain.FiscalYear {
	return domain.FiscalYear{
		Year:                     Year2025,
		Brackets:                 TaxTable2025(),
		Contributions:            Contributions2025(),
		Seniority:                SeniorityScale2025(),
		DependentAllowanceAnnual: DependentAllowance2025(),
	}
}

// fiscalYears maps a year to the constructor of its tables.
// Constructors return fresh values so callers can never alter the statutory data.
var fiscalYears = map[int]func() domain.FiscalYear{
	Year2025: FiscalYear2025,
}

// DefaultFiscalYear is used when a scenario file or request does not name a year
const DefaultFiscalYear = Year2025

// LookupFiscalYear returns the tables for year; zero selects DefaultFiscalYear
func LookupFiscalYear(year int) (domain.FiscalYear, error) {
	if year == 0 {
		year = DefaultFiscalYear
	}
	build, ok := fiscalYears[year]
	if !ok {
		return domain.FiscalYear{}, fmt.Errorf("no tax tables for fiscal year %d (available: %v)", year, SupportedFiscalYears())
	}
	return build(), nil
}

// SupportedFiscalYears lists the years with tables, ascending
func SupportedFiscalYears() []int {
	years := make([]int, 0, len(fiscalYears))
	for year := range fiscalYears {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
