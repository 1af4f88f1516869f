package calculation

import (
	"fmt"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

// SeniorityRate returns the bonus rate for the given years of service.
// Steps must be ascending by MinYears.
func SeniorityRate(scale []domain.SeniorityStep, years int) decimal.Decimal {
	rate := decimal.Zero
	for _, step := range scale {
		if years < step.MinYears {
			break
		}
		rate = step.Rate
	}
	return rate
}

// SeniorityBonus returns baseGross * SeniorityRate
func SeniorityBonus(scale []domain.SeniorityStep, baseGross decimal.Decimal, years int) decimal.Decimal {
	return baseGross.Mul(SeniorityRate(scale, years))
}

// SeniorityDescription describes the bonus tier for display, e.g. "Prime d'ancienneté: 10%"
func SeniorityDescription(scale []domain.SeniorityStep, years int) string {
	rate := SeniorityRate(scale, years)
	if rate.IsZero() {
		if len(scale) > 0 {
			return fmt.Sprintf("Pas de prime d'ancienneté (moins de %d ans)", scale[0].MinYears)
		}
		return "Pas de prime d'ancienneté"
	}
	return fmt.Sprintf("Prime d'ancienneté: %s%%", rate.Mul(hundred).String())
}
