package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/beastwood12/nuskin-insurance-calc/internal/server"
)

var (
	serveAddr        string
	serveCatalogFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the comparison API over HTTP",
	Long: "Host the JSON API a front end calls: GET /api/plans for the catalog and\n" +
		"POST /api/compare for a side-by-side comparison. Nothing is persisted.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveCatalogFile, "catalog", "", "plan catalog YAML override")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cat, err := loadCatalog(serveCatalogFile)
	if err != nil {
		return err
	}

	log := logrus.StandardLogger()
	return server.New(cat, log).ListenAndServe(serveAddr)
}
