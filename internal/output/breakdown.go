package output

import (
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakdownSlice is one share of the effective gross, as drawn in the breakdown chart
type BreakdownSlice struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Share  decimal.Decimal `json:"share"` // percent of effective gross
	Color  string          `json:"color"`
}

// BreakdownSlices splits the effective gross into net pay and each deduction.
// The supplementary fund slice only appears when a fund is withheld.
func BreakdownSlices(result *domain.SalaryResult) []BreakdownSlice {
	slices := []BreakdownSlice{
		{Label: "Salaire Net", Amount: result.NetSalary, Color: "#0d9488"},
		{Label: "CNSS", Amount: result.CNSSDeduction, Color: "#ef4444"},
		{Label: "AMO", Amount: result.AMODeduction, Color: "#f97316"},
		{Label: "IPE", Amount: result.IPEDeduction, Color: "#eab308"},
		{Label: "IR", Amount: result.IRDeduction, Color: "#dc2626"},
	}
	if result.AdditionalFundDeduction.IsPositive() {
		slices = append(slices, BreakdownSlice{
			Label:  "Caisse Sociale",
			Amount: result.AdditionalFundDeduction,
			Color:  "#6366f1",
		})
	}

	if result.GrossSalary.IsPositive() {
		hundred := decimal.NewFromInt(100)
		for i := range slices {
			slices[i].Share = slices[i].Amount.Div(result.GrossSalary).Mul(hundred)
		}
	}
	return slices
}
