// Package cmd provides the CLI commands for cloudcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cloudcost/internal/config"
	"cloudcost/internal/logging"
)

var (
	cfgFile string
	verbose bool

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cloudcost",
	Short: "Estimate cloud costs for an architecture before it exists",
	Long: `cloudcost prices a resolved architecture across providers and usage
scenarios, before any infrastructure is provisioned.

Estimates come from the authoritative pricing engine when it is
available and from the built-in heuristic formulas when it is not.

Examples:
  cloudcost estimate --architecture arch.json --intent "ecommerce web app"
  cloudcost estimate --architecture arch.json --usage usage.yml --format table`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in configuration)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cloudcost version 0.1.0")
	},
}
