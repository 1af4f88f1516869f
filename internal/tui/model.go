package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/config"
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/rgehrsitz/salairenet/internal/tui/scenes"
)

// curvePoints is the sample count of the distribution chart
const curvePoints = 120

// Model represents the entire application state
type Model struct {
	currentScene  Scene
	previousScene Scene

	width  int
	height int

	configPath string
	config     *domain.Configuration
	engine     *calculation.SalaryEngine

	formModel      *scenes.FormModel
	resultsModel   *scenes.ResultsModel
	scenariosModel *scenes.ScenariosModel

	err error
}

// NewModel creates the application model. configPath may be empty.
func NewModel(engine *calculation.SalaryEngine, configPath string) Model {
	if engine == nil {
		engine = calculation.NewSalaryEngine()
	}
	return Model{
		currentScene:   SceneForm,
		configPath:     configPath,
		engine:         engine,
		formModel:      scenes.NewFormModel(),
		resultsModel:   scenes.NewResultsModel(),
		scenariosModel: scenes.NewScenariosModel(),
		width:          80,
		height:         24,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.configPath == "" {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, loadConfigCmd(m.configPath))
}

// CurrentScene returns the scene being displayed
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

func (m Model) Err() error {
	return m.err
}

func (m Model) Form() *scenes.FormModel {
	return m.formModel
}

func (m Model) Results() *scenes.ResultsModel {
	return m.resultsModel
}

func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// calculateCmd computes a salary off the update loop
func calculateCmd(engine *calculation.SalaryEngine, req CalculateRequestMsg) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.ComputeSalary(req.Gross, req.Options)
		if err != nil {
			return CalculationCompleteMsg{Name: req.Name, Err: err}
		}
		market := engine.Market
		return CalculationCompleteMsg{
			Name:   req.Name,
			Result: result,
			Market: market.MarketPosition(result, market.Net),
			Curve:  market.DistributionCurve(curvePoints),
			User:   market.UserPointOnCurve(result.NetSalary),
		}
	}
}
