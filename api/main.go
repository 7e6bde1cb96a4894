package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "store-dashboard",
	Short: "Retail sales dashboard API.",
	Long: `store-dashboard serves per-store sales KPIs computed from the orders schema,
and provides the maintenance commands that load and reconcile that schema.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initDBCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

// @title Store Dashboard API
// @version 1.0
// @description Per-store sales KPIs, time series and basket metrics over the retail sales schema.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
