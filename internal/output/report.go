package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Report is everything a formatter renders: one entry per computed salary
type Report struct {
	GeneratedAt time.Time             `json:"generatedAt"`
	FiscalYear  int                   `json:"fiscalYear"`
	Reference   domain.ReferenceStats `json:"reference"`
	Entries     []ReportEntry         `json:"entries"`
}

// ReportEntry is a single salary breakdown with its market position
type ReportEntry struct {
	Name      string                `json:"name"`
	Result    *domain.SalaryResult  `json:"result"`
	Market    domain.MarketPosition `json:"market"`
	Annual    domain.AnnualSummary  `json:"annual"`
	Seniority string                `json:"seniority,omitempty"`
	Breakdown []BreakdownSlice      `json:"breakdown"`
}

// NewReportEntry builds an entry from a computed result
func NewReportEntry(name string, result *domain.SalaryResult, market domain.MarketPosition, scale []domain.SeniorityStep, years int) ReportEntry {
	entry := ReportEntry{
		Name:      name,
		Result:    result,
		Market:    market,
		Annual:    result.Annual(),
		Breakdown: BreakdownSlices(result),
	}
	if result.SeniorityBonus.IsPositive() {
		entry.Seniority = calculation.SeniorityDescription(scale, years)
	}
	return entry
}

// NewSingleReport wraps one computation in a report
func NewSingleReport(engine *calculation.SalaryEngine, name string, result *domain.SalaryResult, years int, stats domain.ReferenceStats) *Report {
	return &Report{
		GeneratedAt: time.Now(),
		FiscalYear:  result.FiscalYear,
		Reference:   stats,
		Entries: []ReportEntry{
			NewReportEntry(name, result, engine.Market.MarketPosition(result, stats), engine.FiscalYear.Seniority, years),
		},
	}
}

// NewReport converts evaluated scenarios into a report
func NewReport(results *domain.ScenarioResults) *Report {
	fy, err := calculation.LookupFiscalYear(results.FiscalYear)
	if err != nil {
		fy = calculation.FiscalYear2025()
	}
	report := &Report{
		GeneratedAt: time.Now(),
		FiscalYear:  results.FiscalYear,
		Reference:   results.Reference,
		Entries:     make([]ReportEntry, 0, len(results.Results)),
	}
	for _, sr := range results.Results {
		report.Entries = append(report.Entries,
			NewReportEntry(sr.Scenario.Name, sr.Result, sr.Market, fy.Seniority, sr.Scenario.Options.YearsOfService))
	}
	return report
}

// SaveConfiguration saves a configuration to a file
func SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// FormatCurrency formats an amount the Moroccan way: "8 903,64 MAD"
func FormatCurrency(amount decimal.Decimal) string {
	return FormatAmount(amount) + " MAD"
}

// FormatAmount formats an amount with space-grouped thousands and a decimal comma
func FormatAmount(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var sb strings.Builder
	if amount.IsNegative() && !amount.Round(2).IsZero() {
		sb.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte(',')
	sb.WriteString(frac)
	return sb.String()
}

// FormatPercentage formats a percent value (already scaled by 100)
func FormatPercentage(amount decimal.Decimal) string {
	return strings.Replace(amount.StringFixed(2), ".", ",", 1) + " %"
}

// FormatRate formats a fraction (0.0429) as a percent ("4,29 %")
func FormatRate(rate decimal.Decimal) string {
	return FormatPercentage(rate.Mul(decimal.NewFromInt(100)))
}

// FormatPercentile renders a percentile as "85e"
func FormatPercentile(p float64) string {
	return fmt.Sprintf("%se", decimal.NewFromFloat(p).String())
}
