package calculation

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

// MARKET REFERENCE DATA (2025)
//
// The NET percentile table and the gross reference points are fixed,
// presentational approximations of the Moroccan private-sector distribution.
// They are not survey data and are never interpolated.

// TopNetPercentile is reported for a net above the last NET table threshold
const TopNetPercentile = 99.5

// NetPercentileTable2025 returns the NET salary percentile steps, ascending
func NetPercentileTable2025() []domain.PercentileEntry {
	steps := []struct {
		threshold  int64
		percentile float64
	}{
		{2500, 10}, {3000, 20}, {3500, 30}, {4000, 40}, {4500, 50},
		{5500, 60}, {6500, 70}, {8000, 80}, {10000, 85}, {12000, 90},
		{15000, 92}, {18000, 95}, {22000, 97}, {28000, 98}, {35000, 99},
	}
	table := make([]domain.PercentileEntry, len(steps))
	for i, s := range steps {
		table[i] = domain.PercentileEntry{Threshold: decimal.NewFromInt(s.threshold), Percentile: s.percentile}
	}
	return table
}

// TopGrossPositionLabel is shown for a gross above every reference point
const TopGrossPositionLabel = ">99e"

// GrossReferenceTable2025 returns the published gross distribution points
func GrossReferenceTable2025() []domain.GrossReferencePoint {
	return []domain.GrossReferencePoint{
		{Label: "10e", Salary: decimal.NewFromInt(3500), PositionLabel: "<10e"},
		{Label: "25e", Salary: decimal.NewFromInt(4200), PositionLabel: "~15e"},
		{Label: "50e", Salary: decimal.NewFromInt(6500), PositionLabel: "~40e"},
		{Label: "75e", Salary: decimal.NewFromInt(10000), PositionLabel: "~70e"},
		{Label: "90e", Salary: decimal.NewFromInt(15000), PositionLabel: "~85e"},
		{Label: "95e", Salary: decimal.NewFromInt(22000), PositionLabel: "~97e"},
		{Label: "99e", Salary: decimal.NewFromInt(35000), PositionLabel: TopGrossPositionLabel},
	}
}

// Net2025 returns the NET reference figures and band distribution
func Net2025() domain.ReferenceStats {
	return domain.ReferenceStats{
		Name:   "Salaire NET 2025",
		Basis:  domain.BasisNet,
		Median: decimal.NewFromInt(4500),
		Mean:   decimal.NewFromInt(5800),
		Bands: []domain.DistributionBand{
			{Label: "Moins de 3 500 MAD NET", Max: decimal.NewFromInt(3500), Share: decimal.NewFromInt(30),
				Note: "Votre salaire NET se situe dans la tranche basse du marché"},
			{Label: "3 500 - 5 000 MAD NET", Min: decimal.NewFromInt(3500), Max: decimal.NewFromInt(5000), Share: decimal.NewFromInt(25),
				Note: "Votre salaire NET est proche de la médiane du marché"},
			{Label: "5 000 - 8 000 MAD NET", Min: decimal.NewFromInt(5000), Max: decimal.NewFromInt(8000), Share: decimal.NewFromInt(25),
				Note: "Votre salaire NET est au-dessus de la médiane"},
			{Label: "8 000 - 12 000 MAD NET", Min: decimal.NewFromInt(8000), Max: decimal.NewFromInt(12000), Share: decimal.NewFromInt(12),
				Note: "Votre salaire NET est dans la tranche supérieure"},
			{Label: "Plus de 12 000 MAD NET", Min: decimal.NewFromInt(12000), Share: decimal.NewFromInt(8),
				Note: "Votre salaire NET est dans le top 8% du marché (92e percentile)"},
		},
	}
}

// Gross2025 returns the gross reference figures
func Gross2025() domain.ReferenceStats {
	return domain.ReferenceStats{
		Name:   "Salaire brut 2025",
		Basis:  domain.BasisGross,
		Median: decimal.NewFromInt(6500),
		Mean:   decimal.NewFromInt(8200),
	}
}

// CurveParams shape the display-only normal curve
type CurveParams struct {
	Mean      float64
	StdDev    float64
	MinSalary float64
	MaxSalary float64
	YScale    float64
	Points    int
}

// DefaultCurveParams centres the curve on the NET median
func DefaultCurveParams() CurveParams {
	return CurveParams{
		Mean:      4500,
		StdDev:    2500,
		MinSalary: 3000,
		MaxSalary: 50000,
		YScale:    8000,
		Points:    200,
	}
}

// MarketEstimator places a salary against the reference tables
type MarketEstimator struct {
	NetTable       []domain.PercentileEntry
	GrossReference []domain.GrossReferencePoint
	Net            domain.ReferenceStats
	Gross          domain.ReferenceStats
	Curve          CurveParams
}

// NewMarketEstimator2025 creates an estimator with the 2025 reference data
func NewMarketEstimator2025() *MarketEstimator {
	return &MarketEstimator{
		NetTable:       NetPercentileTable2025(),
		GrossReference: GrossReferenceTable2025(),
		Net:            Net2025(),
		Gross:          Gross2025(),
		Curve:          DefaultCurveParams(),
	}
}

// PercentileIn returns the percentile of the first entry whose threshold is at or
// above value, or top when value exceeds every threshold
func PercentileIn(table []domain.PercentileEntry, top float64, value decimal.Decimal) float64 {
	for _, entry := range table {
		if value.LessThanOrEqual(entry.Threshold) {
			return entry.Percentile
		}
	}
	return top
}

// PercentileOf returns the approximate market percentile of a monthly net salary
func (me *MarketEstimator) PercentileOf(net decimal.Decimal) float64 {
	return PercentileIn(me.NetTable, TopNetPercentile, net)
}

// GrossPercentileLabel returns the coarse position label of a gross salary, e.g. "~40e"
func (me *MarketEstimator) GrossPercentileLabel(gross decimal.Decimal) string {
	// the last reference point only bounds the chart; anything above 95e is ">99e"
	for _, point := range me.GrossReference[:max(len(me.GrossReference)-1, 0)] {
		if gross.LessThanOrEqual(point.Salary) {
			return point.PositionLabel
		}
	}
	return TopGrossPositionLabel
}

// GrossPercentileChart returns the reference points with the user's gross inserted
// before the first point strictly above it
func (me *MarketEstimator) GrossPercentileChart(gross decimal.Decimal) []domain.ChartPoint {
	chart := make([]domain.ChartPoint, 0, len(me.GrossReference)+1)
	inserted := false
	user := domain.ChartPoint{
		Label:  fmt.Sprintf("Vous (%s)", me.GrossPercentileLabel(gross)),
		Salary: gross,
		IsUser: true,
	}
	for _, point := range me.GrossReference {
		if !inserted && point.Salary.GreaterThan(gross) {
			chart = append(chart, user)
			inserted = true
		}
		chart = append(chart, domain.ChartPoint{Label: point.Label, Salary: point.Salary})
	}
	if !inserted {
		chart = append(chart, user)
	}
	return chart
}

// ReferenceFor returns the reference table for a basis; empty selects net
func (me *MarketEstimator) ReferenceFor(basis domain.SalaryBasis) domain.ReferenceStats {
	if basis == domain.BasisGross {
		return me.Gross
	}
	return me.Net
}

// CompareToReference expresses value relative to the median and mean of stats, in percent
func (me *MarketEstimator) CompareToReference(value decimal.Decimal, stats domain.ReferenceStats) domain.ReferenceComparison {
	cmp := domain.ReferenceComparison{
		Reference:   stats.Name,
		Value:       value,
		VsMedianPct: relativeDelta(value, stats.Median),
		VsMeanPct:   relativeDelta(value, stats.Mean),
		AboveMedian: value.GreaterThan(stats.Median),
		AboveMean:   value.GreaterThan(stats.Mean),
	}
	for _, band := range stats.Bands {
		if band.Contains(value) {
			cmp.Band = band.Label
			cmp.BandShare = band.Share
			cmp.Note = band.Note
			break
		}
	}
	return cmp
}

func relativeDelta(value, reference decimal.Decimal) decimal.Decimal {
	if reference.IsZero() {
		return decimal.Zero
	}
	return value.Sub(reference).Div(reference).Mul(hundred)
}

// MarketPosition bundles every market view of a computed salary
func (me *MarketEstimator) MarketPosition(result *domain.SalaryResult, stats domain.ReferenceStats) domain.MarketPosition {
	value := result.NetSalary
	if stats.Basis == domain.BasisGross {
		value = result.GrossSalary
	}
	percentile := me.PercentileOf(result.NetSalary)
	return domain.MarketPosition{
		NetPercentile:      percentile,
		GrossPositionLabel: me.GrossPercentileLabel(result.GrossSalary),
		Comparison:         me.CompareToReference(value, stats),
		Summary:            PercentileSummary(percentile),
		GrossChart:         me.GrossPercentileChart(result.GrossSalary),
	}
}

// PercentileSummary phrases a percentile from the reader's side: above the median
// it counts who earns less, otherwise who earns more
func PercentileSummary(percentile float64) string {
	if percentile > 50 {
		return fmt.Sprintf("Vous gagnez plus que %s%% des salariés", strconv.FormatFloat(percentile, 'f', -1, 64))
	}
	return fmt.Sprintf("%s%% des salariés gagnent plus que vous", strconv.FormatFloat(100-percentile, 'f', -1, 64))
}

// CurveX maps a salary onto the [-5, 5] chart axis, clamping to the salary range
func (cp CurveParams) CurveX(salary float64) float64 {
	clamped := math.Max(cp.MinSalary, math.Min(cp.MaxSalary, salary))
	return (clamped-cp.MinSalary)/(cp.MaxSalary-cp.MinSalary)*10 - 5
}

// Density returns the scaled normal density at salary
func (cp CurveParams) Density(salary float64) float64 {
	z := (salary - cp.Mean) / cp.StdDev
	return math.Exp(-0.5*z*z) / (cp.StdDev * math.Sqrt(2*math.Pi)) * cp.YScale
}

// DistributionCurve samples the display curve evenly over the salary range.
// points <= 0 uses the configured count; the result has points+1 samples.
func (me *MarketEstimator) DistributionCurve(points int) []domain.CurvePoint {
	cp := me.Curve
	if points <= 0 {
		points = cp.Points
	}
	curve := make([]domain.CurvePoint, 0, points+1)
	for i := 0; i <= points; i++ {
		salary := cp.MinSalary + (cp.MaxSalary-cp.MinSalary)*float64(i)/float64(points)
		curve = append(curve, domain.CurvePoint{
			X:          cp.CurveX(salary),
			Y:          cp.Density(salary),
			Salary:     salary,
			Percentile: me.PercentileOf(decimal.NewFromFloat(salary)),
		})
	}
	return curve
}

// UserPointOnCurve places a net salary on the curve. X and Y are clamped to the
// salary range; Salary and Percentile keep the real value.
func (me *MarketEstimator) UserPointOnCurve(net decimal.Decimal) domain.CurvePoint {
	cp := me.Curve
	salary := net.InexactFloat64()
	clamped := math.Max(cp.MinSalary, math.Min(cp.MaxSalary, salary))
	return domain.CurvePoint{
		X:          cp.CurveX(clamped),
		Y:          cp.Density(clamped),
		Salary:     salary,
		Percentile: me.PercentileOf(net),
	}
}
