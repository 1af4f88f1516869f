// Package tuistyles holds the lipgloss palette shared by the TUI packages.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/salairenet/internal/output"
	"github.com/shopspring/decimal"
)

var (
	ColorPrimary   = lipgloss.Color("#0d9488") // teal, net salary
	ColorSecondary = lipgloss.Color("#6366f1")
	ColorAccent    = lipgloss.Color("#f97316")
	ColorSuccess   = lipgloss.Color("#22c55e")
	ColorDanger    = lipgloss.Color("#dc2626")
	ColorInfo      = lipgloss.Color("#3b82f6")

	ColorForeground = lipgloss.Color("#e5e7eb")
	ColorMuted      = lipgloss.Color("#9ca3af")
	ColorBorder     = lipgloss.Color("#4b5563")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = BorderStyle.
				BorderForeground(ColorPrimary)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Width(28)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)
)

// DeltaStyle colours a change; a lower deduction is good news
func DeltaStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// DeltaIndicator returns an arrow for the direction of a change
func DeltaIndicator(isPositive bool) string {
	if isPositive {
		return "↑"
	}
	return "↓"
}

// FormatCurrency renders a MAD amount as the reports do
func FormatCurrency(amount decimal.Decimal) string {
	return output.FormatCurrency(amount)
}
