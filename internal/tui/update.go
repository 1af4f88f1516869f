package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.formModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		m.scenariosModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.navigate(msg.Scene)
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		if msg.Config != nil && len(msg.Config.Scenarios) > 0 {
			m.scenariosModel.SetScenarios(msg.Config.Scenarios)
			m.navigate(SceneScenarios)
		}
		return m, nil

	case ScenarioSelectedMsg:
		m.formModel.Fill(msg.Scenario)
		return m, calculateCmd(m.engine, CalculateRequestMsg{
			Name:    msg.Scenario.Name,
			Gross:   msg.Scenario.GrossSalary,
			Options: msg.Scenario.Options,
		})

	case CalculateRequestMsg:
		return m, calculateCmd(m.engine, msg)

	case CalculationCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.resultsModel.SetResults(msg)
		m.navigate(SceneResults)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

func (m *Model) navigate(scene Scene) {
	if scene == m.currentScene {
		return
	}
	m.previousScene = m.currentScene
	m.currentScene = scene
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// any key dismisses an error
	if m.err != nil && msg.String() != "ctrl+c" {
		m.err = nil
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.navigate(SceneHelp)
		return m, nil

	case "esc":
		switch m.currentScene {
		case SceneResults:
			m.navigate(SceneForm)
		case SceneHelp:
			m.navigate(m.previousScene)
		case SceneForm:
			if m.config != nil && len(m.config.Scenarios) > 0 {
				m.navigate(SceneScenarios)
			} else {
				m.formModel.Reset()
			}
		case SceneScenarios:
			m.navigate(SceneForm)
		}
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneForm:
		m.formModel, cmd = m.formModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	case SceneScenarios:
		m.scenariosModel, cmd = m.scenariosModel.Update(msg)
	}
	return m, cmd
}
