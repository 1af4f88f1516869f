package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Erreur: %s\n\nAppuyez sur une touche pour continuer...", m.err)))
	}

	var content string
	switch m.currentScene {
	case SceneForm:
		content = m.formModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneScenarios:
		content = m.scenariosModel.View()
	case SceneHelp:
		content = renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render(fmt.Sprintf("Salaire net • barème %d", m.engine.FiscalYear.Year))
	breadcrumb := m.currentScene.String()
	if m.configPath != "" && m.config != nil {
		breadcrumb = fmt.Sprintf("%s / %s", m.configPath, breadcrumb)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(breadcrumb))
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("tab", "champ"),
		formatShortcut("entrée", "calculer"),
		formatShortcut("esc", "retour"),
		formatShortcut("?", "aide"),
		formatShortcut("q", "quitter"),
	}
	return StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

var helpEntries = [][2]string{
	{"tab / ↓", "champ suivant"},
	{"shift+tab / ↑", "champ précédent"},
	{"entrée", "calculer / choisir un scénario"},
	{"esc", "revenir à la saisie"},
	{"?", "cette aide"},
	{"q / ctrl+c", "quitter"},
}

func renderHelp() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Calculateur de salaire net (Maroc)"))
	b.WriteString("\n\n")
	for _, e := range helpEntries {
		fmt.Fprintf(&b, "%s  %s\n", HelpKeyStyle.Width(16).Render(e[0]), HelpDescStyle.Render(e[1]))
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("CNSS, AMO, IPE, frais professionnels et IR selon le barème en vigueur."))
	return BorderStyle.Render(b.String())
}
