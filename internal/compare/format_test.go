package compare

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func sampleComparisonSet() *ComparisonSet {
	return &ComparisonSet{
		BaseScenarioName: "Offre Casa",
		ConfigPath:       "/path/to/offers.yaml",
		FiscalYear:       2025,
		BaseResult: &ComparisonResult{
			ScenarioName:     "Offre Casa",
			GrossSalary:      decimal.NewFromInt(10000),
			NetSalary:        decimal.NewFromFloat(8903.64),
			AnnualNet:        decimal.NewFromFloat(106843.68),
			IRDeduction:      decimal.NewFromFloat(601.56),
			TotalDeductions:  decimal.NewFromFloat(1096.36),
			EffectiveTaxRate: decimal.NewFromFloat(6.0156),
			NetPercentile:    85,
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:      "Offre Casa_raise_10pct",
				Description:       "Increase gross salary by 10%",
				GrossSalary:       decimal.NewFromInt(11000),
				NetSalary:         decimal.NewFromFloat(9640.38),
				AnnualNet:         decimal.NewFromFloat(115684.56),
				IRDeduction:       decimal.NewFromFloat(811.56),
				EffectiveTaxRate:  decimal.NewFromFloat(7.378),
				NetPercentile:     90,
				NetDiffFromBase:   decimal.NewFromFloat(736.74),
				NetPctFromBase:    decimal.NewFromFloat(8.27),
				AnnualNetDiff:     decimal.NewFromFloat(8840.88),
				IRDiffFromBase:    decimal.NewFromInt(210),
				PercentileDiff:    5,
				GrossDiffFromBase: decimal.NewFromInt(1000),
				MarginalRetention: decimal.NewFromFloat(0.73674),
			},
		},
		Recommendations: []string{
			"Best Net: Offre Casa_raise_10pct pays 736.74 MAD more per month (8841 MAD per year) than the base scenario",
		},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}
	result := formatter.Format(sampleComparisonSet())

	if result == "" {
		t.Fatal("Expected formatted output, got empty string")
	}

	for _, want := range []string{
		"SALARY SCENARIO COMPARISON",
		"Base Scenario: Offre Casa",
		"Configuration: /path/to/offers.yaml",
		"Fiscal Year:   2025",
		"Offre Casa (base)",
		"8903.64",
		"85e",
		"COMPARISON TO BASE",
		"Increase gross salary by 10%",
		"Monthly Net:      +736.74 MAD (8.3%)",
		"IR Impact:        +210.00 MAD",
		"Market Position:  +5 points",
		"Net Kept:         0.74 MAD",
		"RECOMMENDATIONS",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	formatter := &TableFormatter{}
	compSet := sampleComparisonSet()
	compSet.AlternativeResults = nil
	compSet.Recommendations = nil

	result := formatter.Format(compSet)

	if !strings.Contains(result, "SALARY SCENARIO COMPARISON") {
		t.Error("Expected header in output")
	}
	if strings.Contains(result, "COMPARISON TO BASE") {
		t.Error("Did not expect comparison section without alternatives")
	}
	if strings.Contains(result, "RECOMMENDATIONS") {
		t.Error("Did not expect recommendations section")
	}
}

func TestTableFormatter_formatRow(t *testing.T) {
	formatter := &TableFormatter{}
	result := &ComparisonResult{
		ScenarioName:     "A very long scenario name that overflows",
		GrossSalary:      decimal.NewFromInt(3000),
		NetSalary:        decimal.NewFromFloat(2797.8),
		EffectiveTaxRate: decimal.Zero,
		NetPercentile:    30,
	}

	row := formatter.formatRow(result, 26, 13, false)
	if !strings.Contains(row, "...") {
		t.Errorf("Expected truncated name, got %q", row)
	}
	if !strings.Contains(row, "2797.80") || !strings.Contains(row, "0.0%") || !strings.Contains(row, "30e") {
		t.Errorf("Unexpected row: %q", row)
	}

	result.ScenarioName = "Short"
	if baseRow := formatter.formatRow(result, 26, 13, true); !strings.Contains(baseRow, "Short (base)") {
		t.Errorf("Expected base marker, got %q", baseRow)
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}
	compSet := sampleComparisonSet()
	compSet.AlternativeResults = append(compSet.AlternativeResults, ComparisonResult{ScenarioName: "same"})

	got := formatter.FormatCompact(compSet)
	want := "Base: Offre Casa | Offre Casa_raise_10pct: +736.74 MAD | same: ="
	if got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}
	result, err := formatter.Format(sampleComparisonSet())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Scenario,Type,Gross Salary,Net Salary") {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Offre Casa,base,10000.00,8903.64") {
		t.Errorf("Unexpected base row: %s", lines[1])
	}
	if !strings.Contains(lines[2], "alternative") || !strings.Contains(lines[2], "736.74") {
		t.Errorf("Unexpected alternative row: %s", lines[2])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		formatter := &JSONFormatter{Pretty: pretty}
		result, err := formatter.Format(sampleComparisonSet())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		var decoded map[string]any
		if err := json.Unmarshal([]byte(result), &decoded); err != nil {
			t.Fatalf("Output is not valid JSON: %v", err)
		}
		if decoded["baseScenarioName"] != "Offre Casa" {
			t.Errorf("Expected base scenario name, got %v", decoded["baseScenarioName"])
		}
		if _, ok := decoded["alternativeResults"]; !ok {
			t.Error("Expected alternativeResults key")
		}
		if _, ok := decoded["recommendations"]; !ok {
			t.Error("Expected recommendations key")
		}
		if pretty != strings.Contains(result, "\n  ") {
			t.Errorf("Pretty=%v produced unexpected indentation", pretty)
		}
	}
}
