package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Gross Salary",
		"Net Salary",
		"Annual Net",
		"IR",
		"Total Deductions",
		"Effective Tax Rate %",
		"Net Percentile",
		"Net Diff from Base",
		"Net % Change",
		"Annual Net Diff",
		"IR Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.GrossSalary.StringFixed(2),
		result.NetSalary.StringFixed(2),
		result.AnnualNet.StringFixed(2),
		result.IRDeduction.StringFixed(2),
		result.TotalDeductions.StringFixed(2),
		result.EffectiveTaxRate.StringFixed(2),
		strconv.FormatFloat(result.NetPercentile, 'f', -1, 64),
		result.NetDiffFromBase.StringFixed(2),
		result.NetPctFromBase.StringFixed(2),
		result.AnnualNetDiff.StringFixed(2),
		result.IRDiffFromBase.StringFixed(2),
	}
}
