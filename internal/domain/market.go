package domain

import (
	"github.com/shopspring/decimal"
)

// PercentileEntry maps a salary ceiling to the percentile reached at or below it
type PercentileEntry struct {
	Threshold  decimal.Decimal `json:"threshold"`
	Percentile float64         `json:"percentile"`
}

// GrossReferencePoint is one published point of the gross salary distribution
type GrossReferencePoint struct {
	Label  string          `json:"label"`
	Salary decimal.Decimal `json:"salary"`
	// PositionLabel is shown for a user whose gross falls at or below Salary
	PositionLabel string `json:"positionLabel"`
}

// ChartPoint is one bar of the gross percentile chart
type ChartPoint struct {
	Label  string          `json:"label"`
	Salary decimal.Decimal `json:"salary"`
	IsUser bool            `json:"isUser,omitempty"`
}

// DistributionBand is the share of employees whose salary falls in (Min, Max]
type DistributionBand struct {
	Label string          `json:"label"`
	Min   decimal.Decimal `json:"min"`
	Max   decimal.Decimal `json:"max"` // zero means open-ended
	Share decimal.Decimal `json:"share"`
	Note  string          `json:"note,omitempty"`
}

// Contains reports whether value falls in the band
func (b DistributionBand) Contains(value decimal.Decimal) bool {
	if value.LessThanOrEqual(b.Min) && !b.Min.IsZero() {
		return false
	}
	return b.Max.IsZero() || value.LessThanOrEqual(b.Max)
}

// SalaryBasis says whether reference figures describe net or gross pay
type SalaryBasis string

const (
	BasisNet   SalaryBasis = "net"
	BasisGross SalaryBasis = "gross"
)

// ReferenceStats are the presentational median/mean figures used for "vs. market" display
type ReferenceStats struct {
	Name   string             `json:"name"`
	Basis  SalaryBasis        `json:"basis"`
	Median decimal.Decimal    `json:"median"`
	Mean   decimal.Decimal    `json:"mean"`
	Bands  []DistributionBand `json:"bands,omitempty"`
}

// ReferenceComparison expresses a salary relative to a ReferenceStats table, in percent
type ReferenceComparison struct {
	Reference   string          `json:"reference"`
	Value       decimal.Decimal `json:"value"`
	VsMedianPct decimal.Decimal `json:"vsMedianPct"`
	VsMeanPct   decimal.Decimal `json:"vsMeanPct"`
	AboveMedian bool            `json:"aboveMedian"`
	AboveMean   bool            `json:"aboveMean"`
	Band        string          `json:"band,omitempty"`
	BandShare   decimal.Decimal `json:"bandShare"`
	Note        string          `json:"note,omitempty"`
}

// MarketPosition contextualises a SalaryResult against the reference tables
type MarketPosition struct {
	NetPercentile      float64             `json:"netPercentile"`
	GrossPositionLabel string              `json:"grossPositionLabel"`
	Comparison         ReferenceComparison `json:"comparison"`
	Summary            string              `json:"summary"`
	GrossChart         []ChartPoint        `json:"grossChart,omitempty"`
}

// CurvePoint is one sample of the display distribution curve
type CurvePoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Salary     float64 `json:"salary"`
	Percentile float64 `json:"percentile"`
}
