package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/salairenet/internal/output"
	"github.com/rgehrsitz/salairenet/internal/tui/tuistyles"
)

// BreakdownBars draws one horizontal bar per slice of the gross, scaled to width
func BreakdownBars(slices []output.BreakdownSlice, width int) string {
	if len(slices) == 0 {
		return tuistyles.InfoStyle.Render("Aucune donnée")
	}
	if width < 10 {
		width = 10
	}

	labelWidth := 0
	for _, s := range slices {
		labelWidth = max(labelWidth, lipgloss.Width(s.Label))
	}

	var b strings.Builder
	for i, s := range slices {
		share := s.Share.InexactFloat64()
		filled := min(int(float64(width)*share/100+0.5), width)

		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(strings.Repeat("█", filled))
		rest := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder).Render(strings.Repeat("░", width-filled))

		fmt.Fprintf(&b, "%-*s %s%s %6.2f%%  %s", labelWidth, s.Label, bar, rest, share, output.FormatCurrency(s.Amount))
		if i < len(slices)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// PercentileGauge shows where a percentile sits on a 0-100 track
type PercentileGauge struct {
	Percentile float64
	Width      int
	Label      string
}

func NewPercentileGauge(percentile float64) *PercentileGauge {
	return &PercentileGauge{Percentile: percentile, Width: 40}
}

func (g *PercentileGauge) WithLabel(label string) *PercentileGauge {
	g.Label = label
	return g
}

func (g *PercentileGauge) WithWidth(width int) *PercentileGauge {
	g.Width = width
	return g
}

func (g *PercentileGauge) Render() string {
	var b strings.Builder
	if g.Label != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorForeground).Render(g.Label))
		b.WriteByte('\n')
	}

	p := min(max(g.Percentile, 0), 100)
	filled := min(int(float64(g.Width)*p/100), g.Width)

	b.WriteString("[")
	b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorBorder).Render(strings.Repeat("░", g.Width-filled)))
	b.WriteString("] ")
	b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Bold(true).Render(output.FormatPercentile(g.Percentile)))
	return b.String()
}
