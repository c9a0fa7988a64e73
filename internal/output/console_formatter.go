package output

import (
	"bytes"
	"fmt"

	"github.com/beastwood12/nuskin-insurance-calc/internal/domain"
)

// ConsoleFormatter renders the side-by-side comparison table the way the
// benefits page lays it out: one column per plan, one row per figure.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

const (
	labelWidth  = 26
	columnWidth = 22
)

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "HEALTH PLAN COMPARISON")
	fmt.Fprintln(&buf, "======================")
	fmt.Fprintf(&buf, "Coverage: %s | Expected spend: %s | HSA contribution: %s\n\n",
		results.Tier.Label(), FormatUSD(results.ExpectedAnnualSpend), FormatUSD(results.HSAContribution))

	writeRow(&buf, results, "", func(p *domain.PlanResult) string { return p.PlanName })

	premiumLabel := "Premium (monthly)"
	if results.DisplayMode == domain.DisplayPerPayPeriod {
		premiumLabel = "Premium (per pay period)"
	}
	writeRow(&buf, results, premiumLabel, func(p *domain.PlanResult) string {
		if results.DisplayMode == domain.DisplayPerPayPeriod {
			return FormatUSD(p.Premium.PerPayPeriod)
		}
		return FormatUSD(p.Premium.Monthly)
	})
	writeRow(&buf, results, "Deductible", func(p *domain.PlanResult) string { return FormatUSD(p.Deductible) })
	writeRow(&buf, results, "Out-of-pocket max", func(p *domain.PlanResult) string { return FormatUSD(p.OutOfPocketMax) })
	writeRow(&buf, results, "Employer HSA match", func(p *domain.PlanResult) string { return FormatUSD(p.HSAMatch) })

	fmt.Fprintln(&buf)
	writeRow(&buf, results, "Annual premium", func(p *domain.PlanResult) string { return FormatUSD(p.Breakdown.AnnualPremiumCost) })
	writeRow(&buf, results, "HSA benefit", func(p *domain.PlanResult) string { return FormatUSD(p.Breakdown.HSABenefit) })
	writeRow(&buf, results, "Cost before deductible", func(p *domain.PlanResult) string { return FormatUSD(p.Breakdown.PreDeductibleCost) })
	writeRow(&buf, results, "Coinsurance cost", func(p *domain.PlanResult) string { return FormatUSD(p.Breakdown.PostDeductibleCost) })
	writeRow(&buf, results, "Estimated annual cost", func(p *domain.PlanResult) string { return FormatUSD(p.Breakdown.TotalAnnualCost) })

	fmt.Fprintln(&buf)
	writeRow(&buf, results, "HSA total incl. match", func(p *domain.PlanResult) string { return FormatUSD(p.TotalHSAWithMatch) })

	if best := results.BestPlan(); best != nil {
		fmt.Fprintf(&buf, "\nLowest estimated cost: %s (%s)\n", best.PlanName, FormatUSD(best.Breakdown.TotalAnnualCost))
	}

	fmt.Fprintln(&buf, "\nPharmacy benefits:")
	for i := range results.Plans {
		fmt.Fprintf(&buf, "  %s: %s\n", results.Plans[i].PlanName, results.Plans[i].PharmacyBenefit)
	}

	fmt.Fprintln(&buf, "\nNegative amounts are annual cash out of pocket; the HSA benefit is employer money in.")

	return buf.Bytes(), nil
}

func writeRow(buf *bytes.Buffer, results *domain.PlanComparison, label string, cell func(*domain.PlanResult) string) {
	fmt.Fprintf(buf, "%-*s", labelWidth, label)
	for i := range results.Plans {
		fmt.Fprintf(buf, "%*s", columnWidth, cell(&results.Plans[i]))
	}
	fmt.Fprintln(buf)
}
