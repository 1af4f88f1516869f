package tuimsg

import (
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateRequestMsg asks the root model to compute a salary
type CalculateRequestMsg struct {
	Name    string
	Gross   decimal.Decimal
	Options domain.AdvancedOptions
}

// CalculationCompleteMsg carries a computed salary and its market context
type CalculationCompleteMsg struct {
	Name   string
	Result *domain.SalaryResult
	Market domain.MarketPosition
	Curve  []domain.CurvePoint
	User   domain.CurvePoint
	Err    error
}

// ScenarioSelectedMsg signals a scenario was picked from the loaded file
type ScenarioSelectedMsg struct {
	Scenario domain.SalaryScenario
}

// ConfigLoadedMsg signals a scenario file has been loaded
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
