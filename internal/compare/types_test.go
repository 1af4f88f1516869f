package compare

import (
	"strings"
	"testing"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	calc := NewMetricsCalculator()

	sr := &domain.ScenarioResult{
		Scenario: domain.SalaryScenario{
			Name:         "Test Scenario",
			GrossSalary:  decimal.NewFromInt(10000),
			ContractType: domain.ContractCDI,
			Options: domain.AdvancedOptions{
				AdditionalFundRate: decimal.NewFromInt(6),
				YearsOfService:     3,
			},
		},
		Result: &domain.SalaryResult{
			GrossSalary:             decimal.NewFromInt(10000),
			CNSSDeduction:           decimal.NewFromFloat(268.8),
			AMODeduction:            decimal.NewFromFloat(226),
			AdditionalFundDeduction: decimal.NewFromInt(600),
			IRDeduction:             decimal.NewFromFloat(447.71),
			NetSalary:               decimal.NewFromFloat(8457.49),
			AdditionalFundRate:      decimal.NewFromInt(6),
			Dependents:              1,
		},
		Market: domain.MarketPosition{NetPercentile: 80},
	}

	result := calc.CalculateMetrics(sr)

	if result.ScenarioName != "Test Scenario" {
		t.Errorf("Expected scenario name 'Test Scenario', got %s", result.ScenarioName)
	}
	if !result.AnnualNet.Equal(decimal.NewFromFloat(101489.88)) {
		t.Errorf("Expected annual net 101489.88, got %s", result.AnnualNet)
	}
	// 268.8 + 226 + 600 + 447.71
	if !result.TotalDeductions.Equal(decimal.NewFromFloat(1542.51)) {
		t.Errorf("Expected total deductions 1542.51, got %s", result.TotalDeductions)
	}
	if result.EffectiveTaxRate.StringFixed(4) != "4.4771" {
		t.Errorf("Expected effective rate 4.4771, got %s", result.EffectiveTaxRate)
	}
	if result.NetPercentile != 80 {
		t.Errorf("Expected percentile 80, got %v", result.NetPercentile)
	}
	if result.FundRate != "6%" {
		t.Errorf("Expected fund rate 6%%, got %q", result.FundRate)
	}
	if result.ContractType != "CDI" || result.YearsOfService != 3 || result.Dependents != 1 {
		t.Errorf("Unexpected scenario specifics: %+v", result)
	}
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	calc := NewMetricsCalculator()

	base := ComparisonResult{
		ScenarioName:  "Base",
		GrossSalary:   decimal.NewFromInt(10000),
		NetSalary:     decimal.NewFromInt(8000),
		AnnualNet:     decimal.NewFromInt(96000),
		IRDeduction:   decimal.NewFromInt(600),
		NetPercentile: 80,
	}

	scenario := ComparisonResult{
		ScenarioName:  "Alternative",
		GrossSalary:   decimal.NewFromInt(11000),
		NetSalary:     decimal.NewFromInt(8700),
		AnnualNet:     decimal.NewFromInt(104400),
		IRDeduction:   decimal.NewFromInt(800),
		NetPercentile: 85,
	}

	result := calc.CalculateComparison(scenario, base)

	if !result.NetDiffFromBase.Equal(decimal.NewFromInt(700)) {
		t.Errorf("Expected net diff 700, got %s", result.NetDiffFromBase)
	}
	if result.NetPctFromBase.StringFixed(2) != "8.75" {
		t.Errorf("Expected net pct 8.75, got %s", result.NetPctFromBase)
	}
	if !result.AnnualNetDiff.Equal(decimal.NewFromInt(8400)) {
		t.Errorf("Expected annual diff 8400, got %s", result.AnnualNetDiff)
	}
	if !result.IRDiffFromBase.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Expected IR diff 200, got %s", result.IRDiffFromBase)
	}
	if result.PercentileDiff != 5 {
		t.Errorf("Expected percentile diff 5, got %v", result.PercentileDiff)
	}
	if result.MarginalRetention.StringFixed(2) != "0.70" {
		t.Errorf("Expected marginal retention 0.70, got %s", result.MarginalRetention)
	}
}

func TestMetricsCalculator_CalculateComparison_SameGross(t *testing.T) {
	calc := NewMetricsCalculator()
	base := ComparisonResult{GrossSalary: decimal.NewFromInt(10000), NetSalary: decimal.NewFromInt(8000)}
	scenario := ComparisonResult{GrossSalary: decimal.NewFromInt(10000), NetSalary: decimal.NewFromInt(8100)}

	result := calc.CalculateComparison(scenario, base)
	if !result.MarginalRetention.IsZero() {
		t.Errorf("Expected no marginal retention without a gross change, got %s", result.MarginalRetention)
	}
}

func TestGenerateRecommendations(t *testing.T) {
	compSet := &ComparisonSet{
		BaseScenarioName: "Base",
		BaseResult: &ComparisonResult{
			ScenarioName:     "Base",
			NetSalary:        decimal.NewFromInt(8000),
			EffectiveTaxRate: decimal.NewFromInt(6),
			NetPercentile:    80,
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:     "Raise",
				NetSalary:        decimal.NewFromInt(8700),
				EffectiveTaxRate: decimal.NewFromInt(8),
				NetPercentile:    85,
			},
			{
				ScenarioName:     "Family",
				NetSalary:        decimal.NewFromInt(8030),
				EffectiveTaxRate: decimal.NewFromInt(5),
				NetPercentile:    80,
			},
		},
	}

	recs := GenerateRecommendations(compSet)
	if len(recs) != 3 {
		t.Fatalf("Expected 3 recommendations, got %d: %v", len(recs), recs)
	}

	if !strings.Contains(recs[0], "Best Net: Raise") || !strings.Contains(recs[0], "700.00 MAD") ||
		!strings.Contains(recs[0], "8400 MAD per year") {
		t.Errorf("Unexpected best net recommendation: %s", recs[0])
	}
	if !strings.Contains(recs[1], "Lowest Tax Rate: Family") {
		t.Errorf("Unexpected tax recommendation: %s", recs[1])
	}
	if !strings.Contains(recs[2], "Market Position: Raise moves from the 80e to the 85e percentile") {
		t.Errorf("Unexpected market recommendation: %s", recs[2])
	}
}

func TestGenerateRecommendations_EmptyAlternatives(t *testing.T) {
	compSet := &ComparisonSet{
		BaseScenarioName: "Base",
		BaseResult:       &ComparisonResult{ScenarioName: "Base"},
	}

	if recs := GenerateRecommendations(compSet); len(recs) != 0 {
		t.Errorf("Expected no recommendations, got %v", recs)
	}
	if recs := GenerateRecommendations(&ComparisonSet{}); len(recs) != 0 {
		t.Errorf("Expected no recommendations without a base, got %v", recs)
	}
}

func TestGenerateRecommendations_NoBetterThanBase(t *testing.T) {
	compSet := &ComparisonSet{
		BaseScenarioName: "Base",
		BaseResult: &ComparisonResult{
			ScenarioName:     "Base",
			NetSalary:        decimal.NewFromInt(9000),
			EffectiveTaxRate: decimal.NewFromInt(5),
			NetPercentile:    85,
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:     "Worse",
				NetSalary:        decimal.NewFromInt(8000),
				EffectiveTaxRate: decimal.NewFromInt(6),
				NetPercentile:    80,
			},
		},
	}

	if recs := GenerateRecommendations(compSet); len(recs) != 0 {
		t.Errorf("Expected no recommendations when base is best, got %v", recs)
	}
}
