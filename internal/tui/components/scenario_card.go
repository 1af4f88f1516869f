package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/rgehrsitz/salairenet/internal/tui/tuistyles"
)

// ScenarioCard summarises one scenario of a loaded file
type ScenarioCard struct {
	Scenario   domain.SalaryScenario
	IsSelected bool
	Width      int
}

func NewScenarioCard(scenario domain.SalaryScenario) *ScenarioCard {
	return &ScenarioCard{Scenario: scenario, Width: 50}
}

func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// Highlights lists the options that differ from the neutral defaults
func (s *ScenarioCard) Highlights() []string {
	opts := s.Scenario.Options
	var out []string
	if s.Scenario.ContractType != "" {
		out = append(out, string(s.Scenario.ContractType))
	}
	if opts.AdditionalFundRate.IsPositive() {
		out = append(out, fmt.Sprintf("caisse %s%%", opts.AdditionalFundRate.String()))
	}
	if opts.Dependents > 0 {
		out = append(out, fmt.Sprintf("%d à charge", opts.Dependents))
	}
	if opts.YearsOfService > 0 {
		out = append(out, fmt.Sprintf("%d ans d'ancienneté", opts.YearsOfService))
	}
	return out
}

func (s *ScenarioCard) Render() string {
	nameStyle := tuistyles.UnselectedItemStyle
	border := tuistyles.BorderStyle
	if s.IsSelected {
		nameStyle = tuistyles.SelectedItemStyle
		border = tuistyles.ActiveBorderStyle
	}

	content := nameStyle.Render(s.Scenario.Name) + "\n" +
		tuistyles.MetricValueStyle.Render(tuistyles.FormatCurrency(s.Scenario.GrossSalary)+" brut")
	if highlights := s.Highlights(); len(highlights) > 0 {
		content += "\n" + tuistyles.SubtitleStyle.Render(strings.Join(highlights, " • "))
	}

	return border.Padding(0, 1).Width(s.Width).Render(content)
}

// RenderCompact renders the card as a single list line
func (s *ScenarioCard) RenderCompact() string {
	prefix := "  "
	style := tuistyles.UnselectedItemStyle
	if s.IsSelected {
		prefix = "▸ "
		style = tuistyles.SelectedItemStyle
	}
	return style.Render(prefix+s.Scenario.Name) + "  " +
		lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(tuistyles.FormatCurrency(s.Scenario.GrossSalary))
}
