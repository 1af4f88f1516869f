package calculation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidInput is returned when the gross salary is not a positive finite number.
// It is the only input the engine refuses.
var ErrInvalidInput = errors.New("invalid input")

// SalaryEngine orchestrates the gross-to-net decomposition and the market lookup
type SalaryEngine struct {
	FiscalYear    domain.FiscalYear
	Contributions *ContributionCalculator
	IncomeTax     *IncomeTaxCalculator
	Market        *MarketEstimator
	Logger        Logger
	Debug         bool // Enable debug traces for each step
}

// NewSalaryEngine creates an engine for the default fiscal year
func NewSalaryEngine() *SalaryEngine {
	return newSalaryEngine(FiscalYear2025())
}

// NewSalaryEngineForYear creates an engine for a specific fiscal year; zero selects the default
func NewSalaryEngineForYear(year int) (*SalaryEngine, error) {
	fy, err := LookupFiscalYear(year)
	if err != nil {
		return nil, err
	}
	return newSalaryEngine(fy), nil
}

func newSalaryEngine(fy domain.FiscalYear) *SalaryEngine {
	return &SalaryEngine{
		FiscalYear:    fy,
		Contributions: NewContributionCalculator(fy.Contributions),
		IncomeTax:     NewIncomeTaxCalculator(fy),
		Market:        NewMarketEstimator2025(),
		Logger:        NopLogger{},
	}
}

// SetLogger sets the engine logger; nil installs a NopLogger
func (se *SalaryEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

func (se *SalaryEngine) debugf(format string, args ...any) {
	if se.Debug && se.Logger != nil {
		se.Logger.Debugf(format, args...)
	}
}

// ComputeSalary decomposes a monthly gross salary into contributions, IR and net pay.
// Identical inputs always yield identical results; nothing is rounded.
func (se *SalaryEngine) ComputeSalary(gross decimal.Decimal, opts domain.AdvancedOptions) (*domain.SalaryResult, error) {
	if gross.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: gross salary must be positive, got %s", ErrInvalidInput, gross.String())
	}
	opts = normalizeOptions(opts)

	// 1. Seniority bonus inflates the base of every deduction
	seniorityRate := SeniorityRate(se.FiscalYear.Seniority, opts.YearsOfService)
	bonus := gross.Mul(seniorityRate)
	effective := gross.Add(bonus)
	se.debugf("gross=%s seniority=%s bonus=%s effective=%s", gross, seniorityRate, bonus, effective)

	// 2-5. Social contributions
	cnss, cnssCapped := se.Contributions.CNSS(effective)
	amo := se.Contributions.AMO(effective)
	ipe, ipeCapped := se.Contributions.IPE(effective)
	fund := se.Contributions.AdditionalFund(effective, opts.AdditionalFundRate)
	se.debugf("cnss=%s (capped=%t) amo=%s ipe=%s (capped=%t) fund=%s", cnss, cnssCapped, amo, ipe, ipeCapped, fund)

	// 6-7. Taxable base
	fraisPro := se.Contributions.FraisProfessionnels(effective)
	taxable := effective.Sub(cnss).Sub(amo).Sub(ipe).Sub(fund).Sub(fraisPro)

	// 8-9. IR and family allowance
	grossTax := se.IncomeTax.CalculateIR(taxable)
	ir, dependentsApplied := se.IncomeTax.ApplyDependents(grossTax, opts.Dependents)
	bracket := se.IncomeTax.BracketFor(taxable)
	se.debugf("fraisPro=%s taxable=%s bracket=%s%% grossTax=%s dependents=%d applied=%s ir=%s",
		fraisPro, taxable, bracket.Rate.Mul(hundred), grossTax, opts.Dependents, dependentsApplied, ir)

	// 10. Net pay; frais professionnels only ever reduced the taxable base
	net := effective.Sub(cnss).Sub(amo).Sub(fund).Sub(ipe).Sub(ir)

	return &domain.SalaryResult{
		FiscalYear:              se.FiscalYear.Year,
		BaseGrossSalary:         gross,
		SeniorityRate:           seniorityRate,
		SeniorityBonus:          bonus,
		GrossSalary:             effective,
		CNSSDeduction:           cnss,
		CNSSCapped:              cnssCapped,
		AMODeduction:            amo,
		IPEDeduction:            ipe,
		IPECapped:               ipeCapped,
		AdditionalFundRate:      opts.AdditionalFundRate,
		AdditionalFundDeduction: fund,
		FraisProfessionnels:     fraisPro,
		TaxableIncome:           taxable,
		Bracket:                 bracket,
		GrossTax:                grossTax,
		Dependents:              opts.Dependents,
		DependentsDeduction:     dependentsApplied,
		IRDeduction:             ir,
		NetSalary:               net,
	}, nil
}

// ComputeSalaryFloat is ComputeSalary for callers holding a float64; NaN and ±Inf are rejected
func (se *SalaryEngine) ComputeSalaryFloat(gross float64, opts domain.AdvancedOptions) (*domain.SalaryResult, error) {
	if math.IsNaN(gross) || math.IsInf(gross, 0) {
		return nil, fmt.Errorf("%w: gross salary must be a finite number", ErrInvalidInput)
	}
	return se.ComputeSalary(decimal.NewFromFloat(gross), opts)
}

// normalizeOptions maps negative modifiers to their neutral value
func normalizeOptions(opts domain.AdvancedOptions) domain.AdvancedOptions {
	if opts.AdditionalFundRate.IsNegative() {
		opts.AdditionalFundRate = decimal.Zero
	}
	if opts.Dependents < 0 {
		opts.Dependents = 0
	}
	if opts.YearsOfService < 0 {
		opts.YearsOfService = 0
	}
	return opts
}

// ParseGross parses a user-typed amount such as "10000", "10 000", "10000,50",
// "10.000,50" or "12 500 dh". NFKC folds no-break spaces and full-width digits to
// ASCII first. When both '.' and ',' appear the last one is the decimal separator;
// a lone ',' is decimal, repeated '.' are thousands separators and a single '.' is
// decimal, so "1.500" reads as 1.5.
func ParseGross(input string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(norm.NFKC.String(input))
	for _, suffix := range currencySuffixes {
		if n := len(cleaned) - len(suffix); n >= 0 && strings.EqualFold(cleaned[n:], suffix) {
			cleaned = cleaned[:n]
			break
		}
	}
	cleaned = normalizeSeparators(strings.ReplaceAll(cleaned, " ", ""))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: gross salary is required", ErrInvalidInput)
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, input)
	}
	if value.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: gross salary must be positive, got %s", ErrInvalidInput, value.String())
	}
	return value, nil
}

var currencySuffixes = []string{"MAD", "DHS", "DH"}

func normalizeSeparators(amount string) string {
	lastDot := strings.LastIndex(amount, ".")
	lastComma := strings.LastIndex(amount, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			return strings.Replace(strings.ReplaceAll(amount, ".", ""), ",", ".", 1)
		}
		return strings.ReplaceAll(amount, ",", "")
	case lastComma >= 0:
		return strings.Replace(amount, ",", ".", 1)
	case strings.Count(amount, ".") > 1:
		return strings.ReplaceAll(amount, ".", "")
	}
	return amount
}

// Evaluate computes one scenario together with its market position
func (se *SalaryEngine) Evaluate(scenario *domain.SalaryScenario, stats domain.ReferenceStats) (*domain.ScenarioResult, error) {
	result, err := se.ComputeSalary(scenario.GrossSalary, scenario.Options)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	return &domain.ScenarioResult{
		Scenario: *scenario,
		Result:   result,
		Market:   se.Market.MarketPosition(result, stats),
	}, nil
}

// RunScenarios evaluates every scenario in a configuration. A configuration naming
// another fiscal year is computed with that year's tables.
func (se *SalaryEngine) RunScenarios(config *domain.Configuration) (*domain.ScenarioResults, error) {
	engine := se
	if config.FiscalYear != 0 && config.FiscalYear != se.FiscalYear.Year {
		other, err := NewSalaryEngineForYear(config.FiscalYear)
		if err != nil {
			return nil, err
		}
		other.SetLogger(se.Logger)
		other.Debug = se.Debug
		engine = other
	}

	stats := se.Market.ReferenceFor(config.Reference)
	results := &domain.ScenarioResults{
		FiscalYear: engine.FiscalYear.Year,
		Reference:  stats,
		Results:    make([]domain.ScenarioResult, 0, len(config.Scenarios)),
	}
	for i := range config.Scenarios {
		sr, err := engine.Evaluate(&config.Scenarios[i], stats)
		if err != nil {
			return nil, err
		}
		results.Results = append(results.Results, *sr)
	}
	engine.Logger.Infof("evaluated %d scenarios for fiscal year %d", len(results.Results), results.FiscalYear)
	return results, nil
}
