package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/rgehrsitz/salairenet/internal/output"
	"github.com/rgehrsitz/salairenet/internal/tui/components"
	"github.com/rgehrsitz/salairenet/internal/tui/tuimsg"
	"github.com/rgehrsitz/salairenet/internal/tui/tuistyles"
)

// ResultsModel shows one computed salary
type ResultsModel struct {
	name   string
	result *domain.SalaryResult
	market domain.MarketPosition
	curve  []domain.CurvePoint
	user   domain.CurvePoint
	width  int
	height int
}

func NewResultsModel() *ResultsModel {
	return &ResultsModel{width: 80}
}

// SetResults stores a completed calculation
func (m *ResultsModel) SetResults(msg tuimsg.CalculationCompleteMsg) {
	m.name = msg.Name
	m.result = msg.Result
	m.market = msg.Market
	m.curve = msg.Curve
	m.user = msg.User
}

func (m *ResultsModel) Result() *domain.SalaryResult {
	return m.result
}

func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update is a no-op; the results are read-only
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	return m, nil
}

func (m *ResultsModel) View() string {
	if m.result == nil {
		return tuistyles.BorderStyle.Render("Aucun résultat.\n\nSaisissez un salaire brut puis appuyez sur entrée.")
	}

	sections := []string{
		m.renderHeader(),
		m.renderMetrics(),
		m.renderDetails(),
		sectionTitle("Répartition du brut"),
		components.BreakdownBars(output.BreakdownSlices(m.result), m.barWidth()),
		sectionTitle("Position sur le marché"),
		m.renderMarket(),
		"",
		tuistyles.HelpDescStyle.Render("esc modifier • ? aide • q quitter"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *ResultsModel) barWidth() int {
	return min(max(m.width-50, 10), 40)
}

func (m *ResultsModel) renderHeader() string {
	title := fmt.Sprintf("Barème %d", m.result.FiscalYear)
	if m.name != "" {
		title = m.name + " • " + title
	}
	return tuistyles.TitleStyle.Render(title)
}

func (m *ResultsModel) renderMetrics() string {
	r := m.result
	annual := r.Annual()
	cards := []*components.MetricCard{
		components.NewMetricCard("Salaire net mensuel", output.FormatCurrency(r.NetSalary)).
			WithAccent(tuistyles.ColorPrimary).
			WithDescription(output.FormatCurrency(annual.NetSalary) + " / an"),
		components.NewMetricCard("Total retenues", output.FormatCurrency(r.TotalDeductions())).
			WithDescription("Cotisations " + output.FormatCurrency(r.SocialContributions())),
		components.NewMetricCard("IR", output.FormatCurrency(r.IRDeduction)).
			WithDescription("Taux effectif " + output.FormatRate(r.EffectiveTaxRate())),
	}
	if r.SeniorityBonus.IsPositive() {
		cards[0].WithDelta(true, "ancienneté "+output.FormatCurrency(r.SeniorityBonus))
	}
	columns := 3
	if m.width > 0 && m.width < 90 {
		columns = 1
	}
	return components.MetricGrid(cards, columns)
}

func (m *ResultsModel) renderDetails() string {
	r := m.result
	var b strings.Builder
	line := func(label string, amount string) {
		fmt.Fprintf(&b, "%-34s %16s\n", label, amount)
	}

	line("Salaire brut de base", output.FormatCurrency(r.BaseGrossSalary))
	if r.SeniorityBonus.IsPositive() {
		line(fmt.Sprintf("Prime d'ancienneté (%s)", output.FormatRate(r.SeniorityRate)), "+"+output.FormatCurrency(r.SeniorityBonus))
	}
	cnss := "CNSS"
	if r.CNSSCapped {
		cnss += " (plafonné)"
	}
	line(cnss, "-"+output.FormatCurrency(r.CNSSDeduction))
	line("AMO", "-"+output.FormatCurrency(r.AMODeduction))
	line("IPE", "-"+output.FormatCurrency(r.IPEDeduction))
	if r.AdditionalFundDeduction.IsPositive() {
		line(fmt.Sprintf("Caisse sociale (%s %%)", r.AdditionalFundRate.String()), "-"+output.FormatCurrency(r.AdditionalFundDeduction))
	}
	line("Frais professionnels (base IR)", output.FormatCurrency(r.FraisProfessionnels))
	line("Revenu imposable", output.FormatCurrency(r.TaxableIncome))
	line("IR", "-"+output.FormatCurrency(r.IRDeduction))
	if r.DependentsDeduction.IsPositive() {
		line(fmt.Sprintf("  dont personnes à charge (%d)", r.Dependents), output.FormatCurrency(r.DependentsDeduction))
	}
	return tuistyles.BorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *ResultsModel) renderMarket() string {
	parts := []string{
		components.NewPercentileGauge(m.market.NetPercentile).WithLabel("Percentile (net)").Render(),
		tuistyles.SubtitleStyle.Render(m.market.Summary),
		fmt.Sprintf("Brut: %s • vs médiane %s %%", m.market.GrossPositionLabel,
			m.market.Comparison.VsMedianPct.StringFixed(1)),
	}
	if m.market.Comparison.Note != "" {
		parts = append(parts, tuistyles.InfoStyle.Render(m.market.Comparison.Note))
	}
	if len(m.curve) > 0 {
		parts = append(parts, "", components.NewCurveChart("Distribution des salaires", m.curve).
			WithWidth(m.barWidth()+20).
			WithUser(m.user).
			Render())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func sectionTitle(title string) string {
	return "\n" + tuistyles.TitleStyle.Render(strings.ToUpper(title))
}
