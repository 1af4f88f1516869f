package domain

import (
	"github.com/shopspring/decimal"
)

// SalaryScenario is one named gross salary with its modifiers, as read from a scenario file
type SalaryScenario struct {
	Name         string          `yaml:"name" json:"name"`
	GrossSalary  decimal.Decimal `yaml:"gross_salary" json:"grossSalary"`
	ContractType ContractType    `yaml:"contract_type,omitempty" json:"contractType,omitempty"`
	Options      AdvancedOptions `yaml:"options,omitempty" json:"options"`
}

// DeepCopy returns an independent copy of the scenario
func (s *SalaryScenario) DeepCopy() *SalaryScenario {
	if s == nil {
		return nil
	}
	copied := *s
	return &copied
}

// Configuration is the complete content of a scenario file
type Configuration struct {
	FiscalYear int              `yaml:"fiscal_year" json:"fiscalYear"`
	Reference  SalaryBasis      `yaml:"reference,omitempty" json:"reference,omitempty"`
	Scenarios  []SalaryScenario `yaml:"scenarios" json:"scenarios"`
}

// FindScenario returns the scenario with the given name, or nil
func (c *Configuration) FindScenario(name string) *SalaryScenario {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i]
		}
	}
	return nil
}

// ScenarioResult pairs a scenario with its computed breakdown
type ScenarioResult struct {
	Scenario SalaryScenario `json:"scenario"`
	Result   *SalaryResult  `json:"result"`
	Market   MarketPosition `json:"market"`
}

// ScenarioResults holds the evaluation of a whole configuration
type ScenarioResults struct {
	FiscalYear int              `json:"fiscalYear"`
	Reference  ReferenceStats   `json:"reference"`
	Results    []ScenarioResult `json:"results"`
}
