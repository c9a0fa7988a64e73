package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "insurance-calc",
	Short: "Compare employer health insurance plan options",
	Long: "Compare the three plan options (traditional PPO and two HDHPs) under a\n" +
		"coverage tier and spending assumption: estimated annual cost, premium\n" +
		"outflow and HSA benefit, side by side.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
