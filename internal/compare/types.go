package compare

import (
	"fmt"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string               `json:"scenarioName"`
	Description  string               `json:"description"`
	Result       *domain.SalaryResult `json:"result"`

	// Key Metrics
	GrossSalary      decimal.Decimal `json:"grossSalary"`
	NetSalary        decimal.Decimal `json:"netSalary"`
	AnnualNet        decimal.Decimal `json:"annualNet"`
	IRDeduction      decimal.Decimal `json:"irDeduction"`
	TotalDeductions  decimal.Decimal `json:"totalDeductions"`
	EffectiveTaxRate decimal.Decimal `json:"effectiveTaxRate"` // percent of effective gross
	NetPercentile    float64         `json:"netPercentile"`

	// Comparison to Base
	NetDiffFromBase   decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase    decimal.Decimal `json:"netPctFromBase"`
	AnnualNetDiff     decimal.Decimal `json:"annualNetDiff"`
	IRDiffFromBase    decimal.Decimal `json:"irDiffFromBase"`
	PercentileDiff    float64         `json:"percentileDiff"`
	GrossDiffFromBase decimal.Decimal `json:"grossDiffFromBase"`
	MarginalRetention decimal.Decimal `json:"marginalRetention"` // net kept per extra MAD of gross

	// Scenario Specifics (extracted from scenario for display)
	ContractType   string `json:"contractType,omitempty"`
	FundRate       string `json:"fundRate,omitempty"`
	Dependents     int    `json:"dependents"`
	YearsOfService int    `json:"yearsOfService"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
	FiscalYear         int                `json:"fiscalYear"`
}

// MetricsCalculator extracts key metrics from scenario results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for an evaluated scenario
func (mc *MetricsCalculator) CalculateMetrics(sr *domain.ScenarioResult) ComparisonResult {
	r := sr.Result
	result := ComparisonResult{
		ScenarioName:     sr.Scenario.Name,
		Result:           r,
		GrossSalary:      r.GrossSalary,
		NetSalary:        r.NetSalary,
		AnnualNet:        r.Annual().NetSalary,
		IRDeduction:      r.IRDeduction,
		TotalDeductions:  r.TotalDeductions(),
		EffectiveTaxRate: r.EffectiveTaxRate().Mul(hundred),
		NetPercentile:    sr.Market.NetPercentile,
		ContractType:     string(sr.Scenario.ContractType),
		Dependents:       r.Dependents,
		YearsOfService:   sr.Scenario.Options.YearsOfService,
	}
	if !r.AdditionalFundRate.IsZero() {
		result.FundRate = r.AdditionalFundRate.String() + "%"
	}
	return result
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.NetDiffFromBase = scenario.NetSalary.Sub(base.NetSalary)
	if !base.NetSalary.IsZero() {
		scenario.NetPctFromBase = scenario.NetDiffFromBase.Div(base.NetSalary).Mul(hundred)
	}
	scenario.AnnualNetDiff = scenario.AnnualNet.Sub(base.AnnualNet)
	scenario.IRDiffFromBase = scenario.IRDeduction.Sub(base.IRDeduction)
	scenario.PercentileDiff = scenario.NetPercentile - base.NetPercentile
	scenario.GrossDiffFromBase = scenario.GrossSalary.Sub(base.GrossSalary)
	if !scenario.GrossDiffFromBase.IsZero() {
		scenario.MarginalRetention = scenario.NetDiffFromBase.Div(scenario.GrossDiffFromBase)
	}
	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}

	// Find best scenario by net pay
	bestNet := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.NetSalary.GreaterThan(bestNet.NetSalary) {
			bestNet = alt
		}
	}

	if bestNet != compSet.BaseResult {
		diff := bestNet.NetSalary.Sub(compSet.BaseResult.NetSalary)
		recommendations = append(recommendations,
			"Best Net: "+bestNet.ScenarioName+" pays "+diff.StringFixed(2)+
				" MAD more per month ("+diff.Mul(decimal.NewFromInt(domain.MonthsPerYear)).StringFixed(0)+" MAD per year) than the base scenario")
	}

	// Find lowest effective tax rate
	lowestRate := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.EffectiveTaxRate.LessThan(lowestRate.EffectiveTaxRate) {
			lowestRate = alt
		}
	}

	if lowestRate != compSet.BaseResult {
		recommendations = append(recommendations,
			"Lowest Tax Rate: "+lowestRate.ScenarioName+" has an effective IR rate of "+
				lowestRate.EffectiveTaxRate.StringFixed(2)+"% vs "+compSet.BaseResult.EffectiveTaxRate.StringFixed(2)+"%")
	}

	// Highlight the highest market position
	bestPercentile := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.NetPercentile > bestPercentile.NetPercentile {
			bestPercentile = alt
		}
	}

	if bestPercentile != compSet.BaseResult {
		recommendations = append(recommendations,
			fmt.Sprintf("Market Position: %s moves from the %se to the %se percentile",
				bestPercentile.ScenarioName,
				formatPercentile(compSet.BaseResult.NetPercentile),
				formatPercentile(bestPercentile.NetPercentile)))
	}

	return recommendations
}

func formatPercentile(p float64) string {
	return decimal.NewFromFloat(p).String()
}
