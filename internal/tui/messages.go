package tui

import (
	"github.com/rgehrsitz/salairenet/internal/tui/tuimsg"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneForm Scene = iota
	SceneResults
	SceneScenarios
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// Messages shared with the scene packages
type (
	CalculateRequestMsg    = tuimsg.CalculateRequestMsg
	CalculationCompleteMsg = tuimsg.CalculationCompleteMsg
	ScenarioSelectedMsg    = tuimsg.ScenarioSelectedMsg
	ConfigLoadedMsg        = tuimsg.ConfigLoadedMsg
	ErrorMsg               = tuimsg.ErrorMsg
)

func (s Scene) String() string {
	switch s {
	case SceneForm:
		return "Saisie"
	case SceneResults:
		return "Résultat"
	case SceneScenarios:
		return "Scénarios"
	case SceneHelp:
		return "Aide"
	default:
		return "Unknown"
	}
}
