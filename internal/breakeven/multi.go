package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

// GrossForNetScenarios solves the same target net under the options of every
// scenario in a configuration and reports which package needs the lowest gross
func (s *Solver) GrossForNetScenarios(
	ctx context.Context,
	targetNet decimal.Decimal,
	config *domain.Configuration,
) (*MultiScenarioResult, error) {
	if len(config.Scenarios) == 0 {
		return nil, &BreakEvenError{
			Operation: "gross_for_net_scenarios",
			Message:   "configuration has no scenarios",
		}
	}

	multi := &MultiScenarioResult{TargetNet: targetNet}

	for _, scenario := range config.Scenarios {
		result, err := s.GrossForNet(ctx, ReverseRequest{
			TargetNet: targetNet,
			Options:   scenario.Options,
		})
		if err != nil {
			return nil, &BreakEvenError{
				Operation: "gross_for_net_scenarios",
				Message:   fmt.Sprintf("scenario %s", scenario.Name),
				Cause:     err,
			}
		}
		multi.Results = append(multi.Results, ScenarioReverseResult{
			ScenarioName:  scenario.Name,
			ReverseResult: *result,
		})
	}

	for i := range multi.Results {
		if multi.Cheapest == nil || multi.Results[i].GrossSalary.LessThan(multi.Cheapest.GrossSalary) {
			multi.Cheapest = &multi.Results[i]
		}
	}

	multi.Recommendations = s.generateScenarioRecommendations(multi)
	return multi, nil
}

// generateScenarioRecommendations creates recommendations from per-scenario solves
func (s *Solver) generateScenarioRecommendations(result *MultiScenarioResult) []string {
	var recommendations []string

	if result.Cheapest == nil {
		return recommendations
	}

	recommendations = append(recommendations,
		fmt.Sprintf("Lowest gross needed: %s reaches %s MAD net with %s MAD gross",
			result.Cheapest.ScenarioName,
			result.TargetNet.StringFixed(2),
			result.Cheapest.GrossSalary.StringFixed(2)))

	// Spread between the most and least favourable option sets
	highest := result.Cheapest
	for i := range result.Results {
		if result.Results[i].GrossSalary.GreaterThan(highest.GrossSalary) {
			highest = &result.Results[i]
		}
	}
	if highest != result.Cheapest {
		spread := highest.GrossSalary.Sub(result.Cheapest.GrossSalary)
		recommendations = append(recommendations,
			fmt.Sprintf("%s needs %s MAD more gross per month than %s for the same net",
				highest.ScenarioName, spread.StringFixed(2), result.Cheapest.ScenarioName))
	}

	return recommendations
}
