package scenes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/rgehrsitz/salairenet/internal/tui/tuimsg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillForm(values ...string) *FormModel {
	m := NewFormModel()
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}
	return m
}

func TestFormParse(t *testing.T) {
	tests := []struct {
		name       string
		values     []string
		wantGross  string
		wantFund   string
		wantDeps   int
		wantYears  int
		wantErrSub string
	}{
		{name: "gross only", values: []string{"10 000"}, wantGross: "10000", wantFund: "0"},
		{name: "all fields", values: []string{"8000,50", "6,5", "2", "12"}, wantGross: "8000.5", wantFund: "6.5", wantDeps: 2, wantYears: 12},
		{name: "missing gross", values: []string{""}, wantErrSub: "required"},
		{name: "bad fund", values: []string{"5000", "abc"}, wantErrSub: "caisse sociale"},
		{name: "fund above limit", values: []string{"5000", "20"}, wantErrSub: "additional_fund_rate"},
		{name: "bad dependents", values: []string{"5000", "", "x"}, wantErrSub: "personnes à charge"},
		{name: "years above limit", values: []string{"5000", "", "", "41"}, wantErrSub: "years_of_service"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gross, opts, err := fillForm(tt.values...).Parse()
			if tt.wantErrSub != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrSub)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantGross, gross.String())
			assert.Equal(t, tt.wantFund, opts.AdditionalFundRate.String())
			assert.Equal(t, tt.wantDeps, opts.Dependents)
			assert.Equal(t, tt.wantYears, opts.YearsOfService)
		})
	}
}

func TestFormSubmit(t *testing.T) {
	m := fillForm("10000", "3")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	req, ok := cmd().(tuimsg.CalculateRequestMsg)
	require.True(t, ok)
	assert.Equal(t, "10000", req.Gross.String())
	assert.Equal(t, "3", req.Options.AdditionalFundRate.String())
	assert.NoError(t, m.Err())
}

func TestFormFill(t *testing.T) {
	m := NewFormModel()
	m.Fill(domain.SalaryScenario{Name: "Offre", GrossSalary: decimal.NewFromInt(9000)})
	assert.Equal(t, "9000", m.Value(FieldGross))
	assert.Empty(t, m.Value(FieldFundRate), "neutral options stay blank")
	assert.Contains(t, m.View(), "Scénario: Offre")
}

func TestResultsModelEmpty(t *testing.T) {
	m := NewResultsModel()
	assert.Nil(t, m.Result())
	assert.Contains(t, m.View(), "Aucun résultat")
}

func TestScenariosModel(t *testing.T) {
	m := NewScenariosModel()
	assert.Nil(t, m.Selected())
	assert.Contains(t, m.View(), "Aucun scénario")

	m.SetScenarios([]domain.SalaryScenario{
		{Name: "A", GrossSalary: decimal.NewFromInt(5000)},
		{Name: "B", GrossSalary: decimal.NewFromInt(7000)},
	})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Equal(t, "B", m.Selected().Name)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, "A", m.Selected().Name)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(tuimsg.ScenarioSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "A", msg.Scenario.Name)
}
