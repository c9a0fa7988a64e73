package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beastwood12/nuskin-insurance-calc/internal/calculation"
	"github.com/beastwood12/nuskin-insurance-calc/internal/catalog"
	"github.com/beastwood12/nuskin-insurance-calc/internal/config"
	"github.com/beastwood12/nuskin-insurance-calc/internal/domain"
	"github.com/beastwood12/nuskin-insurance-calc/internal/output"
)

var (
	compareTier         string
	compareSpend        float64
	compareContribution float64
	compareFormat       string
	compareDisplay      string
	compareInputFile    string
	compareCatalogFile  string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all plans under a coverage tier and spending assumption",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareTier, "tier", "t", "employee_only", "coverage tier (employee_only, employee_spouse, employee_children, employee_family)")
	compareCmd.Flags().Float64VarP(&compareSpend, "spend", "s", 0, "expected annual medical spend")
	compareCmd.Flags().Float64VarP(&compareContribution, "contribution", "c", 0, "annual employee HSA contribution")
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "console", "output format (console, json, csv)")
	compareCmd.Flags().StringVarP(&compareDisplay, "display", "d", "monthly", "premium display mode (monthly, per_pay_period)")
	compareCmd.Flags().StringVarP(&compareInputFile, "input", "i", "", "scenario YAML file (overrides the other flags)")
	compareCmd.Flags().StringVar(&compareCatalogFile, "catalog", "", "plan catalog YAML override")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	tierName, displayName := compareTier, compareDisplay
	spend, contribution := compareSpend, compareContribution
	catalogFile := compareCatalogFile

	if compareInputFile != "" {
		scenario, err := config.NewInputParser().LoadFromFile(compareInputFile)
		if err != nil {
			return err
		}
		tierName = scenario.CoverageTier
		displayName = scenario.DisplayMode
		spend = scenario.ExpectedAnnualSpend
		contribution = scenario.HSAContribution
		if catalogFile == "" {
			catalogFile = scenario.CatalogFile
		}
	}

	tier, err := domain.ParseCoverageTier(tierName)
	if err != nil {
		return err
	}
	mode, err := domain.ParseDisplayMode(displayName)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(catalogFile)
	if err != nil {
		return err
	}

	engine := calculation.NewCostEngine()
	comparison := engine.ComparePlans(cat, tier, mode,
		calculation.NormalizeAmount(spend),
		calculation.ClampContribution(tier, calculation.NormalizeAmount(contribution)))

	if err := output.GenerateReport(comparison, compareFormat, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	return nil
}

// loadCatalog resolves the built-in catalog or a plan-year override file.
func loadCatalog(filename string) (*catalog.Catalog, error) {
	if filename == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFromFile(filename)
}
