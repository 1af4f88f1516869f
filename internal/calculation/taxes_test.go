package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateIR(t *testing.T) {
	itc := NewIncomeTaxCalculator2025()

	tests := []struct {
		name     string
		taxable  string
		expected string
	}{
		{"negative", "-100", "0"},
		{"exempt", "2047.80", "0"},
		{"exemption ceiling", "3333.33", "0"},
		{"just above ceiling", "3754.30", "42.10"},
		{"second bracket ceiling", "5000", "166.67"},
		{"third bracket", "5550.40", "276.75"},
		{"fourth bracket", "7005.20", "601.56"},
		{"fifth bracket", "10000", "1566.67"},
		{"top bracket", "20000", "5116.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, itc.CalculateIR(d(tt.taxable)), "ir")
		})
	}
}

func TestBracketFor(t *testing.T) {
	itc := NewIncomeTaxCalculator2025()

	assert.True(t, itc.BracketFor(d("1000")).Rate.IsZero())
	assert.True(t, itc.BracketFor(d("7005.20")).Rate.Equal(d("0.30")))
	assert.True(t, itc.BracketFor(d("8333.33")).Rate.Equal(d("0.30")))
	assert.True(t, itc.BracketFor(d("8333.34")).Rate.Equal(d("0.34")))
	assert.True(t, itc.BracketFor(d("999999")).IsOpen())
}

func TestCalculateIR_NoBrackets(t *testing.T) {
	itc := &IncomeTaxCalculator{}
	assert.True(t, itc.CalculateIR(d("10000")).IsZero())
	assert.True(t, itc.BracketFor(d("10000")).Rate.IsZero())
}

func TestApplyDependents(t *testing.T) {
	itc := NewIncomeTaxCalculator2025()

	assertDecimal(t, "125", itc.MonthlyDependentAllowance(3), "three dependents")
	assert.True(t, itc.MonthlyDependentAllowance(0).IsZero())
	assert.True(t, itc.MonthlyDependentAllowance(-1).IsZero())

	adjusted, applied := itc.ApplyDependents(d("276.75"), 3)
	assertDecimal(t, "151.75", adjusted, "adjusted")
	assertDecimal(t, "125", applied, "applied")

	adjusted, applied = itc.ApplyDependents(d("20"), 6)
	assert.True(t, adjusted.IsZero())
	assertDecimal(t, "20", applied, "applied is capped at tax")

	adjusted, applied = itc.ApplyDependents(d("0"), 4)
	assert.True(t, adjusted.IsZero())
	assert.True(t, applied.IsZero())
}

func TestContributionCalculator(t *testing.T) {
	cc := NewContributionCalculator(Contributions2025())

	cnss, capped := cc.CNSS(d("5000"))
	assertDecimal(t, "214.50", cnss, "cnss")
	assert.False(t, capped)

	cnss, capped = cc.CNSS(d("9000"))
	assertDecimal(t, "257.40", cnss, "cnss capped")
	assert.True(t, capped)

	ipe, capped := cc.IPE(d("9000"))
	assertDecimal(t, "11.40", ipe, "ipe capped")
	assert.True(t, capped)

	assertDecimal(t, "226", cc.AMO(d("10000")), "amo")
	assertDecimal(t, "600", cc.AdditionalFund(d("10000"), d("6")), "fund")
	assertDecimal(t, "0", cc.AdditionalFund(d("10000"), d("0")), "no fund")
	assertDecimal(t, "0", cc.AdditionalFund(d("10000"), d("-2")), "negative fund")
	assertDecimal(t, "2500", cc.FraisProfessionnels(d("10000")), "frais")
	assertDecimal(t, "2916.66", cc.FraisProfessionnels(d("11666.64")), "frais at cap")
	assertDecimal(t, "2916.66", cc.FraisProfessionnels(d("100000")), "frais above cap")
}

func TestSeniorityRate(t *testing.T) {
	scale := SeniorityScale2025()

	tests := []struct {
		years    int
		expected string
	}{
		{-3, "0"}, {0, "0"}, {1, "0"},
		{2, "0.05"}, {4, "0.05"},
		{5, "0.10"}, {11, "0.10"},
		{12, "0.15"}, {19, "0.15"},
		{20, "0.20"}, {24, "0.20"},
		{25, "0.25"}, {40, "0.25"},
	}

	for _, tt := range tests {
		assertDecimal(t, tt.expected, SeniorityRate(scale, tt.years), "seniority rate")
	}

	assertDecimal(t, "750", SeniorityBonus(scale, d("5000"), 12), "bonus")
}

func TestSeniorityDescription(t *testing.T) {
	scale := SeniorityScale2025()

	assert.Equal(t, "Pas de prime d'ancienneté (moins de 2 ans)", SeniorityDescription(scale, 1))
	assert.Equal(t, "Prime d'ancienneté: 10%", SeniorityDescription(scale, 6))
	assert.Equal(t, "Prime d'ancienneté: 25%", SeniorityDescription(scale, 30))
	assert.Equal(t, "Pas de prime d'ancienneté", SeniorityDescription(nil, 30))
}

func TestLookupFiscalYear(t *testing.T) {
	fy, err := LookupFiscalYear(2025)
	require.NoError(t, err)
	assert.Len(t, fy.Brackets, 6)
	assert.True(t, fy.ExemptionCeiling().Equal(d("3333.33")))

	// tables are fresh copies
	fy.Brackets[0].UpperBound = d("1")
	again, err := LookupFiscalYear(0)
	require.NoError(t, err)
	assert.True(t, again.Brackets[0].UpperBound.Equal(d("3333.33")))

	_, err = LookupFiscalYear(2019)
	assert.Error(t, err)
	assert.Equal(t, []int{2025}, SupportedFiscalYears())
}
