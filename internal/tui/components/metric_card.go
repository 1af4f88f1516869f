package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/salairenet/internal/tui/tuistyles"
)

// MetricCard displays one headline figure of a salary breakdown
type MetricCard struct {
	Label       string
	Value       string
	Delta       *Delta
	Description string
	Width       int
	Accent      lipgloss.Color
}

// Delta is a signed change shown under the value, e.g. "+446,15 MAD"
type Delta struct {
	IsPositive bool
	Change     string
}

func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label:  label,
		Value:  value,
		Width:  26,
		Accent: tuistyles.ColorBorder,
	}
}

func (m *MetricCard) WithDelta(isPositive bool, change string) *MetricCard {
	m.Delta = &Delta{IsPositive: isPositive, Change: change}
	return m
}

func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// WithAccent colours the card border, used to highlight the net salary
func (m *MetricCard) WithAccent(color lipgloss.Color) *MetricCard {
	m.Accent = color
	return m
}

func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + tuistyles.MetricValueStyle.Render(m.Value)

	if m.Delta != nil {
		style := tuistyles.DeltaStyle(m.Delta.IsPositive)
		content += "\n" + style.Render(fmt.Sprintf("%s %s", tuistyles.DeltaIndicator(m.Delta.IsPositive), m.Delta.Change))
	}
	if m.Description != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Accent).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// RenderCompact returns a single "label: value" line without border
func (m *MetricCard) RenderCompact() string {
	line := tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + tuistyles.MetricValueStyle.Render(m.Value)
	if m.Delta != nil {
		style := tuistyles.DeltaStyle(m.Delta.IsPositive)
		line += " " + style.Render(fmt.Sprintf("%s %s", tuistyles.DeltaIndicator(m.Delta.IsPositive), m.Delta.Change))
	}
	return line
}

// MetricGrid lays cards out in rows of columns
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 || columns <= 0 {
		return ""
	}

	var rows, current []string
	for i, card := range cards {
		current = append(current, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
