package breakeven

import (
	"context"
	"strings"
	"testing"

	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

func TestDefaultSolverOptions(t *testing.T) {
	opts := DefaultSolverOptions()

	if opts.MaxIterations != 100 {
		t.Errorf("Expected MaxIterations 100, got %d", opts.MaxIterations)
	}
	if !opts.Tolerance.Equal(decimal.NewFromFloat(0.01)) {
		t.Errorf("Expected Tolerance 0.01, got %s", opts.Tolerance)
	}
}

func TestReverseRequest_Validate(t *testing.T) {
	valid := ReverseRequest{TargetNet: decimal.NewFromInt(5000)}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid request, got %v", err)
	}

	invalid := ReverseRequest{TargetNet: decimal.Zero}
	err := invalid.Validate()
	if err == nil {
		t.Fatal("Expected error for zero target")
	}
	if !strings.Contains(err.Error(), "target net salary must be positive") {
		t.Errorf("Unexpected message: %v", err)
	}
}

func TestBreakEvenError(t *testing.T) {
	err := &BreakEvenError{
		Operation: "test_op",
		Message:   "test message",
	}

	expected := "test_op: test message"
	if err.Error() != expected {
		t.Errorf("Expected error message '%s', got '%s'", expected, err.Error())
	}

	causeErr := &BreakEvenError{
		Operation: "cause_op",
		Message:   "cause message",
	}

	err = &BreakEvenError{
		Operation: "test_op",
		Message:   "test message",
		Cause:     causeErr,
	}

	expectedWithCause := "test_op: test message: cause_op: cause message"
	if err.Error() != expectedWithCause {
		t.Errorf("Expected error message '%s', got '%s'", expectedWithCause, err.Error())
	}

	if err.Unwrap() != causeErr {
		t.Error("Unwrap() should return the cause error")
	}
}

func TestTableFormatter_Format(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewSalaryEngine())
	result, err := solver.GrossForNet(context.Background(), ReverseRequest{
		TargetNet: decimal.NewFromInt(7000),
		Options:   domain.AdvancedOptions{Dependents: 2, YearsOfService: 3},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := (&TableFormatter{}).Format(result)
	for _, want := range []string{
		"GROSS SALARY FOR TARGET NET",
		"Target Net:          7000.00 MAD",
		"Dependents:          2",
		"Years of Service:    3",
		"✓ Converged",
		"Required Gross:",
		"IR:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "Supplementary Fund") {
		t.Error("Did not expect fund line without a fund rate")
	}
}

func TestFormatters_Scenarios(t *testing.T) {
	multi := &MultiScenarioResult{
		TargetNet: decimal.NewFromInt(8000),
		Results: []ScenarioReverseResult{
			{ScenarioName: "plain", ReverseResult: ReverseResult{GrossSalary: decimal.NewFromFloat(8950.12), NetSalary: decimal.NewFromInt(8000)}},
			{ScenarioName: "family", ReverseResult: ReverseResult{GrossSalary: decimal.NewFromFloat(8800.5), NetSalary: decimal.NewFromInt(8000)}},
		},
		Recommendations: []string{"Lowest gross needed: family"},
	}
	multi.Cheapest = &multi.Results[1]

	table := (&TableFormatter{}).FormatScenarios(multi)
	if !strings.Contains(table, "family *") || !strings.Contains(table, "8950.12") || !strings.Contains(table, "RECOMMENDATIONS") {
		t.Errorf("Unexpected table:\n%s", table)
	}

	js, err := (&JSONFormatter{}).FormatScenarios(multi)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(js, `"scenarioName":"family"`) || !strings.Contains(js, `"targetNet":"8000"`) {
		t.Errorf("Unexpected JSON: %s", js)
	}
}
