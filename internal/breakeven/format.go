package breakeven

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// TableFormatter formats reverse solve results as a console table
type TableFormatter struct{}

// Format generates a formatted table for a reverse solve
func (tf *TableFormatter) Format(result *ReverseResult) string {
	var sb strings.Builder

	sb.WriteString("GROSS SALARY FOR TARGET NET\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	sb.WriteString(fmt.Sprintf("Target Net:          %s MAD\n", result.Request.TargetNet.StringFixed(2)))
	opts := result.Request.Options
	if !opts.AdditionalFundRate.IsZero() {
		sb.WriteString(fmt.Sprintf("Supplementary Fund:  %s%%\n", opts.AdditionalFundRate.String()))
	}
	if opts.Dependents > 0 {
		sb.WriteString(fmt.Sprintf("Dependents:          %d\n", opts.Dependents))
	}
	if opts.YearsOfService > 0 {
		sb.WriteString(fmt.Sprintf("Years of Service:    %d\n", opts.YearsOfService))
	}
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("RESULT\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Required Gross:      %s MAD\n", result.GrossSalary.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Resulting Net:       %s MAD\n", result.NetSalary.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Difference:          %s%s MAD\n", tf.deltaSymbol(result.Difference), result.Difference.StringFixed(2)))
	if r := result.Result; r != nil {
		sb.WriteString(fmt.Sprintf("CNSS:                %s MAD\n", r.CNSSDeduction.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("AMO:                 %s MAD\n", r.AMODeduction.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("IR:                  %s MAD\n", r.IRDeduction.StringFixed(2)))
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatScenarios formats per-scenario reverse solves
func (tf *TableFormatter) FormatScenarios(result *MultiScenarioResult) string {
	var sb strings.Builder

	sb.WriteString("GROSS SALARY FOR TARGET NET BY SCENARIO\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Target Net: %s MAD\n\n", result.TargetNet.StringFixed(2)))

	sb.WriteString(fmt.Sprintf("%-28s %15s %15s\n", "Scenario", "Gross (MAD)", "Net (MAD)"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, r := range result.Results {
		name := r.ScenarioName
		if result.Cheapest != nil && r.ScenarioName == result.Cheapest.ScenarioName {
			name += " *"
		}
		sb.WriteString(fmt.Sprintf("%-28s %15s %15s\n",
			tf.truncate(name, 28), r.GrossSalary.StringFixed(2), r.NetSalary.StringFixed(2)))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats reverse solve results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output for a reverse solve
func (jf *JSONFormatter) Format(result *ReverseResult) (string, error) {
	return jf.marshal(result)
}

// FormatScenarios generates JSON output for per-scenario solves
func (jf *JSONFormatter) FormatScenarios(result *MultiScenarioResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatStatus formats success status
func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "✗ Did not converge"
}

// deltaSymbol returns "+" for positive deltas
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
