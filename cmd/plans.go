package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beastwood12/nuskin-insurance-calc/internal/config"
	"github.com/beastwood12/nuskin-insurance-calc/internal/domain"
	"github.com/beastwood12/nuskin-insurance-calc/internal/output"
)

var plansCatalogFile string

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Print the plan catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := loadCatalog(plansCatalogFile)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for i := range cat.Plans {
			p := &cat.Plans[i]
			fmt.Fprintf(w, "%s\n", p.Name)
			for _, tier := range domain.AllTiers() {
				cost := p.Costs[tier]
				fmt.Fprintf(w, "  %-20s %s/month (%s per pay period), HSA match %s\n",
					tier.Label(), output.FormatUSD(cost.Monthly), output.FormatUSD(cost.PerPayPeriod),
					output.FormatUSD(p.HSAMatchByTier[tier]))
			}
			if p.DeductibleByEnrollment != nil {
				fmt.Fprintf(w, "  Deductible: %s employee only / %s two or more enrollees\n",
					output.FormatUSD(p.DeductibleByEnrollment.EmployeeOnly), output.FormatUSD(p.DeductibleByEnrollment.TwoPlusEnrollees))
			} else {
				fmt.Fprintf(w, "  Deductible: %s per person / %s family\n",
					output.FormatUSD(p.DeductiblePerPerson.Person), output.FormatUSD(p.DeductiblePerPerson.Family))
			}
			fmt.Fprintf(w, "  Out-of-pocket max: %s person / %s family\n",
				output.FormatUSD(p.OutOfPocketMax.Person), output.FormatUSD(p.OutOfPocketMax.Family))
			fmt.Fprintf(w, "  Pharmacy: %s\n\n", p.PharmacyBenefit)
		}
		return nil
	},
}

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config [file]",
	Short: "Write a starter scenario YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "scenario.yaml"
		if len(args) == 1 {
			filename = args[0]
		}
		if err := config.NewInputParser().WriteExampleScenario(filename); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", filename)
		return nil
	},
}

func init() {
	plansCmd.Flags().StringVar(&plansCatalogFile, "catalog", "", "plan catalog YAML override")
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(exampleConfigCmd)
}
