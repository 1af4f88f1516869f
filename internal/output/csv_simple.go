package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVSummarizer implements the summary CSV output (one row per entry).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "BaseGross", "SeniorityBonus", "Gross", "CNSS", "AMO", "IPE", "AdditionalFund",
		"FraisPro", "Taxable", "GrossTax", "DependentsDeduction", "IR", "Net", "AnnualNet", "NetPercentile", "GrossPosition"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range report.Entries {
		r := e.Result
		row := []string{
			e.Name,
			r.BaseGrossSalary.StringFixed(2),
			r.SeniorityBonus.StringFixed(2),
			r.GrossSalary.StringFixed(2),
			r.CNSSDeduction.StringFixed(2),
			r.AMODeduction.StringFixed(2),
			r.IPEDeduction.StringFixed(2),
			r.AdditionalFundDeduction.StringFixed(2),
			r.FraisProfessionnels.StringFixed(2),
			r.TaxableIncome.StringFixed(2),
			r.GrossTax.StringFixed(2),
			r.DependentsDeduction.StringFixed(2),
			r.IRDeduction.StringFixed(2),
			r.NetSalary.StringFixed(2),
			e.Annual.NetSalary.StringFixed(2),
			strconv.FormatFloat(e.Market.NetPercentile, 'f', -1, 64),
			e.Market.GrossPositionLabel,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
