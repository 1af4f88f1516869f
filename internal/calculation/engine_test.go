package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, actual.Equal(d(expected)), "%s: expected %s, got %s", field, expected, actual.String())
}

type recordingLogger struct {
	debug []string
	info  []string
}

func (l *recordingLogger) Debugf(format string, args ...any) { l.debug = append(l.debug, format) }
func (l *recordingLogger) Infof(format string, args ...any)  { l.info = append(l.info, format) }
func (l *recordingLogger) Warnf(string, ...any)              {}
func (l *recordingLogger) Errorf(string, ...any)             {}

func TestNewSalaryEngine(t *testing.T) {
	engine := NewSalaryEngine()

	require.NotNil(t, engine)
	assert.Equal(t, 2025, engine.FiscalYear.Year)
	assert.NotNil(t, engine.Contributions)
	assert.NotNil(t, engine.IncomeTax)
	assert.NotNil(t, engine.Market)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestNewSalaryEngineForYear(t *testing.T) {
	engine, err := NewSalaryEngineForYear(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultFiscalYear, engine.FiscalYear.Year)

	_, err = NewSalaryEngineForYear(1999)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "1999")
}

func TestSalaryEngine_SetLogger(t *testing.T) {
	engine := NewSalaryEngine()

	custom := &recordingLogger{}
	engine.SetLogger(custom)
	assert.Equal(t, custom, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger, "nil should fall back to NopLogger")
}

func TestComputeSalary_Scenarios(t *testing.T) {
	engine := NewSalaryEngine()

	tests := []struct {
		name     string
		gross    string
		opts     domain.AdvancedOptions
		expected map[string]string
	}{
		{
			name:  "10000 no options",
			gross: "10000",
			expected: map[string]string{
				"cnss": "257.40", "amo": "226", "ipe": "11.40", "frais": "2500",
				"taxable": "7005.20", "ir": "601.56", "net": "8903.64",
			},
		},
		{
			name:  "3000 below exemption ceiling",
			gross: "3000",
			expected: map[string]string{
				"cnss": "128.70", "amo": "67.80", "ipe": "5.70", "frais": "750",
				"taxable": "2047.80", "ir": "0", "net": "2797.80",
			},
		},
		{
			name:  "8000 with three dependents",
			gross: "8000",
			opts:  domain.AdvancedOptions{Dependents: 3},
			expected: map[string]string{
				"cnss": "257.40", "amo": "180.80", "ipe": "11.40", "frais": "2000",
				"taxable": "5550.40", "ir": "151.75", "net": "7398.65",
			},
		},
		{
			name:  "5000 with six years of service",
			gross: "5000",
			opts:  domain.AdvancedOptions{YearsOfService: 6},
			expected: map[string]string{
				"cnss": "235.95", "amo": "124.30", "ipe": "10.45", "frais": "1375",
				"taxable": "3754.30", "ir": "42.10", "net": "5087.20",
			},
		},
		{
			name:  "10000 with 6% supplementary fund",
			gross: "10000",
			opts:  domain.AdvancedOptions{AdditionalFundRate: d("6")},
			expected: map[string]string{
				"cnss": "257.40", "amo": "226", "ipe": "11.40", "frais": "2500",
				"taxable": "6405.20", "ir": "447.71", "net": "8457.49",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.ComputeSalary(d(tt.gross), tt.opts)
			require.NoError(t, err)

			assertDecimal(t, tt.expected["cnss"], result.CNSSDeduction, "cnss")
			assertDecimal(t, tt.expected["amo"], result.AMODeduction, "amo")
			assertDecimal(t, tt.expected["ipe"], result.IPEDeduction, "ipe")
			assertDecimal(t, tt.expected["frais"], result.FraisProfessionnels, "frais professionnels")
			assertDecimal(t, tt.expected["taxable"], result.TaxableIncome, "taxable income")
			assertDecimal(t, tt.expected["ir"], result.IRDeduction, "ir")
			assertDecimal(t, tt.expected["net"], result.NetSalary, "net")
		})
	}
}

func TestComputeSalary_SeniorityBonusMetadata(t *testing.T) {
	engine := NewSalaryEngine()

	result, err := engine.ComputeSalary(d("5000"), domain.AdvancedOptions{YearsOfService: 6})
	require.NoError(t, err)

	assertDecimal(t, "5000", result.BaseGrossSalary, "base gross")
	assertDecimal(t, "0.10", result.SeniorityRate, "seniority rate")
	assertDecimal(t, "500", result.SeniorityBonus, "seniority bonus")
	assertDecimal(t, "5500", result.GrossSalary, "effective gross")
}

func TestComputeSalary_Caps(t *testing.T) {
	engine := NewSalaryEngine()

	atCap, err := engine.ComputeSalary(d("6000"), domain.AdvancedOptions{})
	require.NoError(t, err)
	assert.False(t, atCap.CNSSCapped, "6000 is not above the ceiling")
	assertDecimal(t, "257.40", atCap.CNSSDeduction, "cnss at cap")

	for _, gross := range []string{"6000.01", "12000", "50000", "250000"} {
		result, err := engine.ComputeSalary(d(gross), domain.AdvancedOptions{})
		require.NoError(t, err)
		assertDecimal(t, "257.40", result.CNSSDeduction, "cnss "+gross)
		assertDecimal(t, "11.40", result.IPEDeduction, "ipe "+gross)
		assert.True(t, result.CNSSCapped)
		assert.True(t, result.IPECapped)
	}
}

func TestComputeSalary_AMOIsUncapped(t *testing.T) {
	engine := NewSalaryEngine()

	low, err := engine.ComputeSalary(d("10000"), domain.AdvancedOptions{})
	require.NoError(t, err)
	high, err := engine.ComputeSalary(d("20000"), domain.AdvancedOptions{})
	require.NoError(t, err)

	assertDecimal(t, "226", low.AMODeduction, "amo 10000")
	assertDecimal(t, "452", high.AMODeduction, "amo 20000")
}

func TestComputeSalary_FraisProfessionnelsCap(t *testing.T) {
	engine := NewSalaryEngine()

	atCap, err := engine.ComputeSalary(d("11666.64"), domain.AdvancedOptions{})
	require.NoError(t, err)
	assertDecimal(t, "2916.66", atCap.FraisProfessionnels, "frais at cap")

	above, err := engine.ComputeSalary(d("40000"), domain.AdvancedOptions{})
	require.NoError(t, err)
	assertDecimal(t, "2916.66", above.FraisProfessionnels, "frais above cap")

	// frais professionnels lowers the taxable base only
	expectedNet := above.GrossSalary.Sub(above.CNSSDeduction).Sub(above.AMODeduction).
		Sub(above.IPEDeduction).Sub(above.IRDeduction)
	assert.True(t, above.NetSalary.Equal(expectedNet))
}

func TestComputeSalary_DependentsNeverNegative(t *testing.T) {
	engine := NewSalaryEngine()

	// taxable 3413, tax 7.97: one dependent (41.67/month) absorbs it entirely
	result, err := engine.ComputeSalary(d("5000"), domain.AdvancedOptions{Dependents: 1})
	require.NoError(t, err)
	assertDecimal(t, "3413", result.TaxableIncome, "taxable")
	assertDecimal(t, "7.97", result.GrossTax, "gross tax")
	assertDecimal(t, "7.97", result.DependentsDeduction, "applied allowance")
	assert.True(t, result.IRDeduction.IsZero())

	many, err := engine.ComputeSalary(d("3000"), domain.AdvancedOptions{Dependents: 10})
	require.NoError(t, err)
	assert.True(t, many.IRDeduction.IsZero())
	assert.True(t, many.DependentsDeduction.IsZero())
}

func TestComputeSalary_NegativeOptionsAreNeutral(t *testing.T) {
	engine := NewSalaryEngine()

	neutral, err := engine.ComputeSalary(d("9000"), domain.AdvancedOptions{})
	require.NoError(t, err)
	negative, err := engine.ComputeSalary(d("9000"), domain.AdvancedOptions{
		AdditionalFundRate: d("-3"),
		Dependents:         -2,
		YearsOfService:     -7,
	})
	require.NoError(t, err)

	assert.True(t, neutral.NetSalary.Equal(negative.NetSalary))
	assert.True(t, negative.AdditionalFundDeduction.IsZero())
	assert.Equal(t, 0, negative.Dependents)
}

func TestComputeSalary_InvalidInput(t *testing.T) {
	engine := NewSalaryEngine()

	for _, gross := range []string{"0", "-1", "-10000"} {
		result, err := engine.ComputeSalary(d(gross), domain.AdvancedOptions{})
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, ErrInvalidInput), "gross %s should be rejected", gross)
	}

	for _, gross := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 0} {
		_, err := engine.ComputeSalaryFloat(gross, domain.AdvancedOptions{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	result, err := engine.ComputeSalaryFloat(10000, domain.AdvancedOptions{})
	require.NoError(t, err)
	assertDecimal(t, "8903.64", result.NetSalary, "net from float")
}

func TestComputeSalary_Deterministic(t *testing.T) {
	engine := NewSalaryEngine()
	opts := domain.AdvancedOptions{AdditionalFundRate: d("4.5"), Dependents: 2, YearsOfService: 13}

	first, err := engine.ComputeSalary(d("13750.25"), opts)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := engine.ComputeSalary(d("13750.25"), opts)
		require.NoError(t, err)
		assert.True(t, first.NetSalary.Equal(again.NetSalary))
		assert.True(t, first.IRDeduction.Equal(again.IRDeduction))
	}
}

func TestComputeSalary_NetIsMonotonic(t *testing.T) {
	engine := NewSalaryEngine()
	step := d("0.01")

	// walk a cent grid across every bracket boundary
	for _, start := range []string{"4874", "7234", "9525", "11776", "18596"} {
		previous := decimal.Zero
		gross := d(start)
		for i := 0; i < 2000; i++ {
			result, err := engine.ComputeSalary(gross, domain.AdvancedOptions{})
			require.NoError(t, err)
			if i > 0 {
				require.True(t, result.NetSalary.GreaterThanOrEqual(previous),
					"net decreased at gross %s", gross.String())
			}
			previous = result.NetSalary
			gross = gross.Add(step)
		}
	}
}

func TestComputeSalary_ConsistencyInvariants(t *testing.T) {
	engine := NewSalaryEngine()

	for _, gross := range []string{"2500", "4800", "7777.77", "15000", "60000"} {
		result, err := engine.ComputeSalary(d(gross), domain.AdvancedOptions{Dependents: 2, YearsOfService: 3})
		require.NoError(t, err)

		assert.True(t, result.NetSalary.LessThanOrEqual(result.GrossSalary))
		assert.True(t, result.IRDeduction.GreaterThanOrEqual(decimal.Zero))
		assert.True(t, result.NetSalary.Add(result.TotalDeductions()).Equal(result.GrossSalary),
			"net + deductions must equal effective gross for %s", gross)
	}
}

func TestComputeSalary_DebugLogging(t *testing.T) {
	engine := NewSalaryEngine()
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	_, err := engine.ComputeSalary(d("10000"), domain.AdvancedOptions{})
	require.NoError(t, err)
	assert.Empty(t, logger.debug, "no traces unless Debug is set")

	engine.Debug = true
	_, err = engine.ComputeSalary(d("10000"), domain.AdvancedOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, logger.debug)
}

func TestParseGross(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"10000", "10000", false},
		{" 10 000 ", "10000", false},
		{"10000,50", "10000.5", false},
		{"12 500 MAD", "12500", false},
		{"8000DH", "8000", false},
		{"10\u00a0000,50", "10000.5", false},
		{"8\u202f903,64 MAD", "8903.64", false},
		{"\uff11\uff10\uff10\uff10\uff10", "10000", false},
		{"10000 dh", "10000", false},
		{"10000 mad", "10000", false},
		{"7 500 Dhs", "7500", false},
		{"10.000,50", "10000.5", false},
		{"1.250.000", "1250000", false},
		{"1,234.56", "1234.56", false},
		{"8903.64", "8903.64", false},
		{"1.500", "1.5", false},
		{"mad", "", true},
		{"", "", true},
		{"abc", "", true},
		{"-500", "", true},
		{"0", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, err := ParseGross(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assertDecimal(t, tt.expected, value, "parsed gross")
		})
	}
}

func TestRunScenarios(t *testing.T) {
	engine := NewSalaryEngine()
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	cfg := &domain.Configuration{
		FiscalYear: 2025,
		Reference:  domain.BasisNet,
		Scenarios: []domain.SalaryScenario{
			{Name: "actuel", GrossSalary: d("10000")},
			{Name: "offre", GrossSalary: d("8000"), Options: domain.AdvancedOptions{Dependents: 3}},
		},
	}

	results, err := engine.RunScenarios(cfg)
	require.NoError(t, err)
	require.Len(t, results.Results, 2)
	assert.Equal(t, 2025, results.FiscalYear)
	assert.Equal(t, domain.BasisNet, results.Reference.Basis)
	assert.Equal(t, "actuel", results.Results[0].Scenario.Name)
	assertDecimal(t, "8903.64", results.Results[0].Result.NetSalary, "actuel net")
	assertDecimal(t, "7398.65", results.Results[1].Result.NetSalary, "offre net")
	assert.Equal(t, float64(85), results.Results[0].Market.NetPercentile)
	assert.Len(t, logger.info, 1)
}

func TestRunScenarios_Errors(t *testing.T) {
	engine := NewSalaryEngine()

	_, err := engine.RunScenarios(&domain.Configuration{FiscalYear: 2031})
	assert.Error(t, err)

	_, err = engine.RunScenarios(&domain.Configuration{
		Scenarios: []domain.SalaryScenario{{Name: "vide", GrossSalary: decimal.Zero}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "vide")
}
