package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders the detailed console report
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintf(&buf, "CALCUL DU SALAIRE NET - BARÈME %d\n", report.FiscalYear)
	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintln(&buf)

	for i, entry := range report.Entries {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		writeEntry(&buf, entry, report.Reference)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "HYPOTHÈSES:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}

	return buf.Bytes(), nil
}

func writeEntry(buf *bytes.Buffer, entry ReportEntry, reference domain.ReferenceStats) {
	r := entry.Result
	if entry.Name != "" {
		fmt.Fprintf(buf, "SCÉNARIO: %s\n", entry.Name)
		fmt.Fprintln(buf, strings.Repeat("-", 64))
	}

	line(buf, "Salaire brut de base", r.BaseGrossSalary, "")
	if r.SeniorityBonus.IsPositive() {
		line(buf, fmt.Sprintf("Prime d'ancienneté (%s)", FormatRate(r.SeniorityRate)), r.SeniorityBonus, "+")
	}
	line(buf, "Salaire brut total", r.GrossSalary, "")
	fmt.Fprintln(buf)

	line(buf, "CNSS (4,29 %"+capped(r.CNSSCapped)+")", r.CNSSDeduction, "-")
	line(buf, "AMO (2,26 %)", r.AMODeduction, "-")
	if r.AdditionalFundDeduction.IsPositive() {
		line(buf, fmt.Sprintf("Caisse sociale (%s %%)", r.AdditionalFundRate.String()), r.AdditionalFundDeduction, "-")
	}
	line(buf, "IPE (0,19 %"+capped(r.IPECapped)+")", r.IPEDeduction, "-")
	line(buf, "IR (Impôt sur le revenu)", r.IRDeduction, "-")
	if r.DependentsDeduction.IsPositive() {
		line(buf, fmt.Sprintf("  dont déduction personnes à charge (%d)", r.Dependents), r.DependentsDeduction, "")
	}
	fmt.Fprintln(buf)

	line(buf, "Frais professionnels", r.FraisProfessionnels, "")
	line(buf, "Revenu net imposable", r.TaxableIncome, "")
	fmt.Fprintf(buf, "  %-40s %s\n", "Tranche IR", bracketLabel(r.Bracket))
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "  %-40s %18s\n", "SALAIRE NET MENSUEL", FormatCurrency(r.NetSalary))
	fmt.Fprintf(buf, "  %-40s %18s\n", "Salaire net annuel", FormatCurrency(entry.Annual.NetSalary))
	fmt.Fprintf(buf, "  %-40s %18s\n", "Taux effectif d'IR", FormatRate(r.EffectiveTaxRate()))
	if entry.Seniority != "" {
		fmt.Fprintf(buf, "  %s\n", entry.Seniority)
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "RÉPARTITION DU BRUT:")
	for _, s := range entry.Breakdown {
		fmt.Fprintf(buf, "  %-16s %18s  %6s %%  %s\n",
			s.Label, FormatCurrency(s.Amount), s.Share.StringFixed(1), bar(s.Share, 30))
	}
	fmt.Fprintln(buf)

	writeMarket(buf, entry.Market, reference)
}

func writeMarket(buf *bytes.Buffer, m domain.MarketPosition, reference domain.ReferenceStats) {
	fmt.Fprintln(buf, "POSITION SUR LE MARCHÉ:")
	fmt.Fprintf(buf, "  Percentile (net):   %s\n", FormatPercentile(m.NetPercentile))
	fmt.Fprintf(buf, "  Percentile (brut):  %s\n", m.GrossPositionLabel)
	fmt.Fprintf(buf, "  %s\n", m.Summary)

	cmp := m.Comparison
	if reference.Name != "" {
		fmt.Fprintf(buf, "  Référence: %s (médiane %s, moyenne %s)\n",
			reference.Name, FormatCurrency(reference.Median), FormatCurrency(reference.Mean))
		fmt.Fprintf(buf, "  vs médiane: %s%s %%   vs moyenne: %s%s %%\n",
			sign(cmp.VsMedianPct), cmp.VsMedianPct.StringFixed(1),
			sign(cmp.VsMeanPct), cmp.VsMeanPct.StringFixed(1))
	}
	if cmp.Band != "" {
		fmt.Fprintf(buf, "  Tranche: %s (%s %% des salariés)\n", cmp.Band, cmp.BandShare.String())
	}
	if cmp.Note != "" {
		fmt.Fprintf(buf, "  %s\n", cmp.Note)
	}
}

func line(buf *bytes.Buffer, label string, amount decimal.Decimal, prefix string) {
	fmt.Fprintf(buf, "  %-40s %18s\n", label, prefix+FormatCurrency(amount))
}

func capped(isCapped bool) string {
	if isCapped {
		return " - plafonné"
	}
	return ""
}

func sign(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+"
	}
	return ""
}

// bracketLabel describes an IR bracket, e.g. "5 000,01 - 6 666,67 MAD à 20 %"
func bracketLabel(b domain.TaxBracket) string {
	rate := FormatRate(b.Rate)
	if b.IsOpen() {
		return fmt.Sprintf("au-delà de %s à %s", FormatCurrency(b.LowerBound), rate)
	}
	return fmt.Sprintf("%s - %s à %s", FormatAmount(b.LowerBound), FormatCurrency(b.UpperBound), rate)
}

// bar draws a horizontal bar proportional to a percent share
func bar(share decimal.Decimal, width int) string {
	n := int(share.Mul(decimal.NewFromInt(int64(width))).Div(decimal.NewFromInt(100)).Round(0).IntPart())
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}

// ConsoleLiteFormatter renders one summary line per entry
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%-24s %16s %16s %14s %8s\n", "Scénario", "Brut", "Net", "IR", "Pctile")
	fmt.Fprintln(&buf, strings.Repeat("-", 82))
	for _, e := range report.Entries {
		name := e.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(&buf, "%-24s %16s %16s %14s %8s\n",
			name,
			FormatCurrency(e.Result.GrossSalary),
			FormatCurrency(e.Result.NetSalary),
			FormatCurrency(e.Result.IRDeduction),
			FormatPercentile(e.Market.NetPercentile))
	}
	return buf.Bytes(), nil
}
