package output

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PDFFormatter renders a payslip-style PDF, one page per entry
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; accented labels need translating
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	row := func(label string, amount decimal.Decimal, prefix string) {
		pdf.CellFormat(120, 7, tr(label), "B", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, tr(prefix+FormatCurrency(amount)), "B", 1, "R", false, 0, "")
	}

	for _, e := range report.Entries {
		r := e.Result
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(0, 10, tr(fmt.Sprintf("Calcul du salaire net - barème %d", report.FiscalYear)))
		pdf.Ln(12)
		if e.Name != "" {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.Cell(0, 8, tr(e.Name))
			pdf.Ln(10)
		}

		pdf.SetFont("Helvetica", "", 11)
		row("Salaire brut de base", r.BaseGrossSalary, "")
		if r.SeniorityBonus.IsPositive() {
			row(fmt.Sprintf("Prime d'ancienneté (%s)", FormatRate(r.SeniorityRate)), r.SeniorityBonus, "+")
		}
		row("Salaire brut total", r.GrossSalary, "")
		row("CNSS", r.CNSSDeduction, "-")
		row("AMO", r.AMODeduction, "-")
		if r.AdditionalFundDeduction.IsPositive() {
			row("Caisse sociale", r.AdditionalFundDeduction, "-")
		}
		row("IPE", r.IPEDeduction, "-")
		row("IR", r.IRDeduction, "-")
		if r.DependentsDeduction.IsPositive() {
			row(fmt.Sprintf("Déduction personnes à charge (%d)", r.Dependents), r.DependentsDeduction, "")
		}
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "B", 12)
		row("Salaire net mensuel", r.NetSalary, "")
		pdf.SetFont("Helvetica", "", 11)
		row("Salaire net annuel", e.Annual.NetSalary, "")
		pdf.Ln(6)

		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr("Position sur le marché"))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 7, tr(fmt.Sprintf("Percentile: %s (brut: %s)", FormatPercentile(e.Market.NetPercentile), e.Market.GrossPositionLabel)))
		pdf.Ln(7)
		pdf.MultiCell(0, 6, tr(e.Market.Summary), "", "L", false)
	}

	if pdf.PageCount() == 0 {
		pdf.AddPage()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
