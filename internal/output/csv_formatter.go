package output

import (
	"bytes"
	"encoding/csv"

	"github.com/beastwood12/nuskin-insurance-calc/internal/domain"
)

// CSVFormatter writes one row per plan with the reference figures and the
// computed cost breakdown, for pulling the comparison into a spreadsheet.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Plan", "MonthlyPremium", "PerPayPeriodPremium", "Deductible", "OutOfPocketMax", "HSAMatch", "AnnualPremiumCost", "HSABenefit", "PreDeductibleCost", "PostDeductibleCost", "TotalAnnualCost", "TotalHSAWithMatch"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range results.Plans {
		row := []string{
			p.PlanName,
			p.Premium.Monthly.StringFixed(2),
			p.Premium.PerPayPeriod.StringFixed(2),
			p.Deductible.StringFixed(2),
			p.OutOfPocketMax.StringFixed(2),
			p.HSAMatch.StringFixed(2),
			p.Breakdown.AnnualPremiumCost.StringFixed(2),
			p.Breakdown.HSABenefit.StringFixed(2),
			p.Breakdown.PreDeductibleCost.StringFixed(2),
			p.Breakdown.PostDeductibleCost.StringFixed(2),
			p.Breakdown.TotalAnnualCost.StringFixed(2),
			p.TotalHSAWithMatch.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
