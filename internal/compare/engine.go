package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/rgehrsitz/salairenet/internal/transform"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	SalaryEngine      *calculation.SalaryEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(salaryEngine *calculation.SalaryEngine) *CompareEngine {
	return &CompareEngine{
		SalaryEngine:      salaryEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Name of the base scenario; empty selects the first one
	Templates        []string // List of template names to apply
}

// engineFor returns an engine using the configuration's fiscal year
func (ce *CompareEngine) engineFor(config *domain.Configuration) (*calculation.SalaryEngine, error) {
	if config.FiscalYear == 0 || config.FiscalYear == ce.SalaryEngine.FiscalYear.Year {
		return ce.SalaryEngine, nil
	}
	engine, err := calculation.NewSalaryEngineForYear(config.FiscalYear)
	if err != nil {
		return nil, err
	}
	engine.SetLogger(ce.SalaryEngine.Logger)
	return engine, nil
}

func findBase(config *domain.Configuration, name string) (*domain.SalaryScenario, error) {
	if name == "" {
		if len(config.Scenarios) == 0 {
			return nil, fmt.Errorf("configuration has no scenarios")
		}
		return &config.Scenarios[0], nil
	}
	base := config.FindScenario(name)
	if base == nil {
		return nil, fmt.Errorf("base scenario %s not found in configuration", name)
	}
	return base, nil
}

// Compare evaluates the base scenario and one alternative per template
func (ce *CompareEngine) Compare(
	ctx context.Context,
	config *domain.Configuration,
	options CompareOptions,
) (*ComparisonSet, error) {
	engine, err := ce.engineFor(config)
	if err != nil {
		return nil, err
	}
	stats := engine.Market.ReferenceFor(config.Reference)

	baseScenario, err := findBase(config, options.BaseScenarioName)
	if err != nil {
		return nil, err
	}

	baseEval, err := engine.Evaluate(baseScenario, stats)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseEval)

	alternatives := []ComparisonResult{}
	for _, templateName := range options.Templates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modifiedScenario, err := transform.ApplyTemplate(baseScenario, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}
		modifiedScenario.Name = baseScenario.Name + "_" + templateName

		altEval, err := engine.Evaluate(modifiedScenario, stats)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", templateName, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(altEval)
		altResult.Description = template.Description
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenario.Name,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		FiscalYear:         engine.FiscalYear.Year,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareScenarios compares explicit scenarios of the configuration (no templates).
// An empty alternative list compares the base against every other scenario.
func (ce *CompareEngine) CompareScenarios(
	ctx context.Context,
	config *domain.Configuration,
	baseScenarioName string,
	alternativeScenarioNames []string,
) (*ComparisonSet, error) {
	engine, err := ce.engineFor(config)
	if err != nil {
		return nil, err
	}
	stats := engine.Market.ReferenceFor(config.Reference)

	baseScenario, err := findBase(config, baseScenarioName)
	if err != nil {
		return nil, err
	}
	baseEval, err := engine.Evaluate(baseScenario, stats)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseEval)

	if len(alternativeScenarioNames) == 0 {
		for _, s := range config.Scenarios {
			if s.Name != baseScenario.Name {
				alternativeScenarioNames = append(alternativeScenarioNames, s.Name)
			}
		}
	}

	alternatives := []ComparisonResult{}
	for _, altName := range alternativeScenarioNames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		altScenario := config.FindScenario(altName)
		if altScenario == nil {
			return nil, fmt.Errorf("alternative scenario %s not found", altName)
		}

		altEval, err := engine.Evaluate(altScenario, stats)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", altName, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(altEval)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenario.Name,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		FiscalYear:         engine.FiscalYear.Year,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
