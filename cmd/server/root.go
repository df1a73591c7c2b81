package main

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "statehouse",
	Short: "Read-only API over state legislative records",
	Long: `statehouse serves jurisdictions, legislators, bills, committees and
events from an Open Civic Data Postgres database with selectable includes
and page-numbered results.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (yaml, toml or json)")
}
