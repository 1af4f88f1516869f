package scenes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/rgehrsitz/salairenet/internal/tui/components"
	"github.com/rgehrsitz/salairenet/internal/tui/tuimsg"
	"github.com/rgehrsitz/salairenet/internal/tui/tuistyles"
)

var listKeys = struct {
	Up, Down, Top, Bottom, Select key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Top:    key.NewBinding(key.WithKeys("g")),
	Bottom: key.NewBinding(key.WithKeys("G")),
	Select: key.NewBinding(key.WithKeys("enter")),
}

// ScenariosModel lists the scenarios of a loaded file
type ScenariosModel struct {
	scenarios     []domain.SalaryScenario
	selectedIndex int
	width         int
	height        int
}

func NewScenariosModel() *ScenariosModel {
	return &ScenariosModel{}
}

func (m *ScenariosModel) SetScenarios(scenarios []domain.SalaryScenario) {
	m.scenarios = scenarios
	if m.selectedIndex >= len(scenarios) {
		m.selectedIndex = 0
	}
}

func (m *ScenariosModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the highlighted scenario, or nil when the list is empty
func (m *ScenariosModel) Selected() *domain.SalaryScenario {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.scenarios) {
		return &m.scenarios[m.selectedIndex]
	}
	return nil
}

func (m *ScenariosModel) Update(msg tea.Msg) (*ScenariosModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, listKeys.Up):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, listKeys.Down):
		if m.selectedIndex < len(m.scenarios)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, listKeys.Top):
		m.selectedIndex = 0
	case key.Matches(keyMsg, listKeys.Bottom):
		m.selectedIndex = max(len(m.scenarios)-1, 0)
	case key.Matches(keyMsg, listKeys.Select):
		selected := m.Selected()
		if selected == nil {
			return m, nil
		}
		scenario := *selected
		return m, func() tea.Msg {
			return tuimsg.ScenarioSelectedMsg{Scenario: scenario}
		}
	}
	return m, nil
}

func (m *ScenariosModel) View() string {
	if len(m.scenarios) == 0 {
		return tuistyles.BorderStyle.Render("Aucun scénario chargé.\n\nLancez avec --config fichier.yaml ou appuyez sur esc.")
	}

	lines := make([]string, 0, len(m.scenarios))
	for i, scenario := range m.scenarios {
		lines = append(lines, components.NewScenarioCard(scenario).SetSelected(i == m.selectedIndex).RenderCompact())
	}
	list := lipgloss.JoinVertical(lipgloss.Left, lines...)
	details := components.NewScenarioCard(*m.Selected()).SetSelected(true).WithWidth(40).Render()

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, list, "    ", details),
		"",
		tuistyles.HelpDescStyle.Render("↑/k ↓/j naviguer • entrée calculer • esc saisie libre • q quitter"),
	)
}
