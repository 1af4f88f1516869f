package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/rgehrsitz/salairenet/internal/tui/tuistyles"
)

var levels = []rune("▁▂▃▄▅▆▇█")

// CurveChart renders the market distribution curve as one row of block
// characters, with a marker under the column closest to the user's salary
type CurveChart struct {
	Title  string
	Points []domain.CurvePoint
	User   *domain.CurvePoint
	Width  int
}

func NewCurveChart(title string, points []domain.CurvePoint) *CurveChart {
	return &CurveChart{Title: title, Points: points, Width: 60}
}

func (c *CurveChart) WithUser(user domain.CurvePoint) *CurveChart {
	c.User = &user
	return c
}

func (c *CurveChart) WithWidth(width int) *CurveChart {
	c.Width = width
	return c
}

// Columns resamples the curve heights to Width columns
func (c *CurveChart) Columns() []float64 {
	if len(c.Points) == 0 || c.Width <= 0 {
		return nil
	}
	cols := make([]float64, c.Width)
	for i := range cols {
		idx := i * (len(c.Points) - 1) / max(c.Width-1, 1)
		cols[i] = c.Points[idx].Y
	}
	return cols
}

// UserColumn returns the column index of the user marker, or -1
func (c *CurveChart) UserColumn() int {
	if c.User == nil || c.Width <= 0 {
		return -1
	}
	// X spans [-5, 5]
	col := int((c.User.X + 5) / 10 * float64(c.Width-1))
	return min(max(col, 0), c.Width-1)
}

func (c *CurveChart) Render() string {
	cols := c.Columns()
	if len(cols) == 0 {
		return tuistyles.InfoStyle.Render("Aucune donnée")
	}

	peak := 0.0
	for _, y := range cols {
		peak = max(peak, y)
	}

	userCol := c.UserColumn()
	lineStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSecondary)
	userStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Bold(true)

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		b.WriteByte('\n')
	}
	for i, y := range cols {
		level := 0
		if peak > 0 {
			level = min(int(y/peak*float64(len(levels)-1)+0.5), len(levels)-1)
		}
		glyph := string(levels[level])
		if i == userCol {
			b.WriteString(userStyle.Render(glyph))
		} else {
			b.WriteString(lineStyle.Render(glyph))
		}
	}
	if userCol >= 0 {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", userCol))
		b.WriteString(userStyle.Render("▲"))
		b.WriteByte('\n')
		b.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf("Vous: %.0f MAD (%se)",
			c.User.Salary, formatFloat(c.User.Percentile))))
	}
	return b.String()
}

func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.1f", f)
}
