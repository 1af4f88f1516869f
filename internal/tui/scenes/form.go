package scenes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/config"
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/rgehrsitz/salairenet/internal/tui/tuimsg"
	"github.com/rgehrsitz/salairenet/internal/tui/tuistyles"
)

// Field indexes of the form inputs
const (
	FieldGross = iota
	FieldFundRate
	FieldDependents
	FieldYears
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Salaire brut mensuel (MAD)",
	"Caisse sociale (%)",
	"Personnes à charge",
	"Années d'ancienneté",
}

var formKeys = struct {
	Next, Prev, Submit key.Binding
}{
	Next:   key.NewBinding(key.WithKeys("tab", "down")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	Submit: key.NewBinding(key.WithKeys("enter")),
}

// FormModel is the calculator input form
type FormModel struct {
	inputs  []textinput.Model
	focused int
	name    string
	err     error
	width   int
}

func NewFormModel() *FormModel {
	m := &FormModel{inputs: make([]textinput.Model, fieldCount)}
	placeholders := [fieldCount]string{"10 000", "0", "0", "0"}
	limits := [fieldCount]int{16, 5, 2, 2}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 16
		ti.Prompt = "› "
		m.inputs[i] = ti
	}
	m.inputs[FieldGross].Focus()
	return m
}

func (m *FormModel) SetSize(width, _ int) {
	m.width = width
}

func (m *FormModel) Focused() int {
	return m.focused
}

func (m *FormModel) Err() error {
	return m.err
}

// Value returns the raw text of a field
func (m *FormModel) Value(field int) string {
	return m.inputs[field].Value()
}

// Fill loads a scenario into the inputs
func (m *FormModel) Fill(scenario domain.SalaryScenario) {
	m.name = scenario.Name
	m.inputs[FieldGross].SetValue(scenario.GrossSalary.String())
	m.inputs[FieldFundRate].SetValue(optionalDecimal(scenario.Options.AdditionalFundRate))
	m.inputs[FieldDependents].SetValue(optionalInt(scenario.Options.Dependents))
	m.inputs[FieldYears].SetValue(optionalInt(scenario.Options.YearsOfService))
	m.err = nil
}

// Reset clears the form error, keeping the values typed so far
func (m *FormModel) Reset() {
	m.err = nil
}

func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, formKeys.Next):
			return m, m.focus((m.focused + 1) % fieldCount)
		case key.Matches(msg, formKeys.Prev):
			return m, m.focus((m.focused + fieldCount - 1) % fieldCount)
		case key.Matches(msg, formKeys.Submit):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *FormModel) focus(field int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = field
	return m.inputs[field].Focus()
}

func (m *FormModel) submit() tea.Cmd {
	gross, opts, err := m.Parse()
	if err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	name := m.name
	return func() tea.Msg {
		return tuimsg.CalculateRequestMsg{Name: name, Gross: gross, Options: opts}
	}
}

// Parse reads and validates the inputs. Empty optional fields mean zero.
func (m *FormModel) Parse() (decimal.Decimal, domain.AdvancedOptions, error) {
	var opts domain.AdvancedOptions

	gross, err := calculation.ParseGross(m.inputs[FieldGross].Value())
	if err != nil {
		return decimal.Zero, opts, err
	}

	if raw := strings.TrimSpace(m.inputs[FieldFundRate].Value()); raw != "" {
		rate, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
		if err != nil {
			return decimal.Zero, opts, fmt.Errorf("caisse sociale: %q n'est pas un nombre", raw)
		}
		opts.AdditionalFundRate = rate
	}
	if opts.Dependents, err = parseCount(m.inputs[FieldDependents].Value(), "personnes à charge"); err != nil {
		return decimal.Zero, opts, err
	}
	if opts.YearsOfService, err = parseCount(m.inputs[FieldYears].Value(), "ancienneté"); err != nil {
		return decimal.Zero, opts, err
	}

	if err := config.ValidateOptions(opts); err != nil {
		return decimal.Zero, opts, err
	}
	return gross, opts, nil
}

func parseCount(raw, field string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q n'est pas un entier", field, raw)
	}
	return n, nil
}

func optionalDecimal(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func optionalInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func (m *FormModel) View() string {
	rows := make([]string, 0, fieldCount+4)
	if m.name != "" {
		rows = append(rows, tuistyles.SubtitleStyle.Render("Scénario: "+m.name), "")
	}
	for i, input := range m.inputs {
		label := tuistyles.FieldLabelStyle.Render(fieldLabels[i])
		if i == m.focused {
			label = tuistyles.FieldLabelStyle.Foreground(tuistyles.ColorPrimary).Bold(true).Render(fieldLabels[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, input.View()))
	}
	if m.err != nil {
		rows = append(rows, "", tuistyles.ErrorStyle.Render(m.err.Error()))
	}
	rows = append(rows, "", tuistyles.HelpDescStyle.Render("tab champ suivant • entrée calculer • ? aide • q quitter"))

	return tuistyles.ActiveBorderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
