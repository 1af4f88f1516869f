package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ValidationError reports an out-of-range or missing field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML scenario document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.FiscalYear != 0 {
		if _, err := calculation.LookupFiscalYear(config.FiscalYear); err != nil {
			return invalid("fiscal_year", "%v", err)
		}
	}

	switch config.Reference {
	case "", domain.BasisNet, domain.BasisGross:
	default:
		return invalid("reference", "must be 'net' or 'gross', got %q", config.Reference)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.SalaryScenario) error {
	if scenario.Name == "" {
		return invalid("name", "scenario name is required")
	}
	if scenario.GrossSalary.LessThanOrEqual(decimal.Zero) {
		return invalid("gross_salary", "must be positive")
	}
	if !scenario.ContractType.IsKnown() {
		return invalid("contract_type", "unknown contract type %q (expected one of %v)", scenario.ContractType, domain.KnownContractTypes)
	}
	return ValidateOptions(scenario.Options)
}

// ValidateOptions checks the advanced options against the limits accepted by the
// calculator form. Shared by the scenario files, the CLI flags and the HTTP API.
func ValidateOptions(opts domain.AdvancedOptions) error {
	if opts.AdditionalFundRate.IsNegative() || opts.AdditionalFundRate.GreaterThan(domain.MaxAdditionalFundRate) {
		return invalid("additional_fund_rate", "must be between 0 and %s%%", domain.MaxAdditionalFundRate)
	}
	if opts.Dependents < 0 || opts.Dependents > domain.MaxDependents {
		return invalid("dependents", "must be between 0 and %d", domain.MaxDependents)
	}
	if opts.YearsOfService < 0 || opts.YearsOfService > domain.MaxYearsOfService {
		return invalid("years_of_service", "must be between 0 and %d", domain.MaxYearsOfService)
	}
	return nil
}
