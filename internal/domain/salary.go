package domain

import (
	"github.com/shopspring/decimal"
)

// ContractType is the employment contract selected by the user.
// It is presentational only: every contract type goes through the same formulas.
type ContractType string

const (
	ContractCDI              ContractType = "CDI"
	ContractCDD              ContractType = "CDD"
	ContractCNE              ContractType = "CNE"
	ContractANAPEC           ContractType = "ANAPEC"
	ContractFonctionPublique ContractType = "FONCTION_PUBLIQUE"
)

// KnownContractTypes lists the contract types accepted in scenario files
var KnownContractTypes = []ContractType{
	ContractCDI,
	ContractCDD,
	ContractCNE,
	ContractANAPEC,
	ContractFonctionPublique,
}

// IsKnown reports whether the contract type is empty or one of KnownContractTypes
func (c ContractType) IsKnown() bool {
	if c == "" {
		return true
	}
	for _, known := range KnownContractTypes {
		if c == known {
			return true
		}
	}
	return false
}

// Option limits accepted at the input boundary (form, scenario file, API)
var (
	MaxAdditionalFundRate = decimal.NewFromInt(15)
)

const (
	MaxDependents     = 10
	MaxYearsOfService = 40
)

// AdvancedOptions holds the optional modifiers of a calculation.
// The zero value is neutral: no supplementary fund, no dependents, no seniority.
type AdvancedOptions struct {
	// AdditionalFundRate is a percentage (0-15) of the effective gross, e.g. 6 for CIMR at 6%
	AdditionalFundRate decimal.Decimal `yaml:"additional_fund_rate" json:"additionalFundRate"`
	Dependents         int             `yaml:"dependents" json:"dependents"`
	YearsOfService     int             `yaml:"years_of_service" json:"yearsOfService"`
}

// IsNeutral reports whether the options leave the base calculation untouched
func (o AdvancedOptions) IsNeutral() bool {
	return o.AdditionalFundRate.IsZero() && o.Dependents == 0 && o.YearsOfService == 0
}

// SalaryResult is the full gross-to-net breakdown of one monthly salary.
// All amounts are monthly MAD, unrounded.
type SalaryResult struct {
	FiscalYear int `json:"fiscalYear"`

	// BaseGrossSalary is the gross entered by the user, before seniority bonus
	BaseGrossSalary decimal.Decimal `json:"baseGrossSalary"`
	SeniorityRate   decimal.Decimal `json:"seniorityRate"`
	SeniorityBonus  decimal.Decimal `json:"seniorityBonus"`
	// GrossSalary is the effective gross every deduction is computed on
	GrossSalary decimal.Decimal `json:"grossSalary"`

	CNSSDeduction           decimal.Decimal `json:"cnssDeduction"`
	CNSSCapped              bool            `json:"cnssCapped"`
	AMODeduction            decimal.Decimal `json:"amoDeduction"`
	IPEDeduction            decimal.Decimal `json:"ipeDeduction"`
	IPECapped               bool            `json:"ipeCapped"`
	AdditionalFundRate      decimal.Decimal `json:"additionalFundRate"`
	AdditionalFundDeduction decimal.Decimal `json:"additionalFundDeduction"`

	FraisProfessionnels decimal.Decimal `json:"fraisProfessionnels"`
	TaxableIncome       decimal.Decimal `json:"taxableIncome"`
	Bracket             TaxBracket      `json:"bracket"`

	// GrossTax is the income tax before the dependents allowance
	GrossTax            decimal.Decimal `json:"grossTax"`
	Dependents          int             `json:"dependents"`
	DependentsDeduction decimal.Decimal `json:"dependentsDeduction"`
	IRDeduction         decimal.Decimal `json:"irDeduction"`

	NetSalary decimal.Decimal `json:"netSalary"`
}

// SocialContributions returns CNSS + AMO + IPE + supplementary fund
func (r *SalaryResult) SocialContributions() decimal.Decimal {
	return r.CNSSDeduction.Add(r.AMODeduction).Add(r.IPEDeduction).Add(r.AdditionalFundDeduction)
}

// TotalDeductions returns everything withheld from the effective gross
func (r *SalaryResult) TotalDeductions() decimal.Decimal {
	return r.SocialContributions().Add(r.IRDeduction)
}

// EffectiveTaxRate returns IR as a fraction of the effective gross
func (r *SalaryResult) EffectiveTaxRate() decimal.Decimal {
	if r.GrossSalary.IsZero() {
		return decimal.Zero
	}
	return r.IRDeduction.Div(r.GrossSalary)
}

// NetToGrossRatio returns net as a fraction of the effective gross
func (r *SalaryResult) NetToGrossRatio() decimal.Decimal {
	if r.GrossSalary.IsZero() {
		return decimal.Zero
	}
	return r.NetSalary.Div(r.GrossSalary)
}

// Annual projects the monthly figures over twelve months
func (r *SalaryResult) Annual() AnnualSummary {
	twelve := decimal.NewFromInt(MonthsPerYear)
	return AnnualSummary{
		GrossSalary:         r.GrossSalary.Mul(twelve),
		SocialContributions: r.SocialContributions().Mul(twelve),
		IRDeduction:         r.IRDeduction.Mul(twelve),
		NetSalary:           r.NetSalary.Mul(twelve),
	}
}

// MonthsPerYear is the number of salary payments assumed per year
const MonthsPerYear = 12

// AnnualSummary holds yearly totals derived from a monthly result
type AnnualSummary struct {
	GrossSalary         decimal.Decimal `json:"grossSalary"`
	SocialContributions decimal.Decimal `json:"socialContributions"`
	IRDeduction         decimal.Decimal `json:"irDeduction"`
	NetSalary           decimal.Decimal `json:"netSalary"`
}
