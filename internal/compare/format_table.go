package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("SALARY SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 84) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	if compSet.FiscalYear != 0 {
		sb.WriteString(fmt.Sprintf("Fiscal Year:   %d\n", compSet.FiscalYear))
	}
	sb.WriteString("\n")

	nameWidth := 26
	numWidth := 13

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Gross (MAD)",
		numWidth, "Net (MAD)",
		numWidth, "IR (MAD)",
		7, "Rate",
		8, "Pctile"))
	sb.WriteString(strings.Repeat("-", 84) + "\n")

	if base := compSet.BaseResult; base != nil {
		sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 84) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 84) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 84) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}

			sb.WriteString(fmt.Sprintf("  Monthly Net:      %s%s MAD (%s%%)\n",
				tf.deltaSymbol(alt.NetDiffFromBase),
				alt.NetDiffFromBase.StringFixed(2),
				alt.NetPctFromBase.StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Annual Net:       %s%s MAD\n",
				tf.deltaSymbol(alt.AnnualNetDiff),
				alt.AnnualNetDiff.StringFixed(2)))

			if !alt.IRDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  IR Impact:        %s%s MAD\n",
					tf.deltaSymbol(alt.IRDiffFromBase),
					alt.IRDiffFromBase.StringFixed(2)))
			}

			if alt.PercentileDiff != 0 {
				sb.WriteString(fmt.Sprintf("  Market Position:  %+.0f points\n", alt.PercentileDiff))
			}

			if !alt.GrossDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Net Kept:         %s MAD per extra MAD of gross\n",
					alt.MarginalRetention.StringFixed(2)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 84) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, result.GrossSalary.StringFixed(2),
		numWidth, result.NetSalary.StringFixed(2),
		numWidth, result.IRDeduction.StringFixed(2),
		7, result.EffectiveTaxRate.StringFixed(1)+"%",
		8, formatPercentile(result.NetPercentile)+"e")
}

// deltaSymbol returns "+" for positive deltas; negative deltas carry their own sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		netChange := "="
		if !alt.NetDiffFromBase.IsZero() {
			netChange = tf.deltaSymbol(alt.NetDiffFromBase) + alt.NetDiffFromBase.StringFixed(2) + " MAD"
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, netChange))
	}

	return sb.String()
}
