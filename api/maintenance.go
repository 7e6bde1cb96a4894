package main

import (
	"fmt"

	"github.com/rogerio-castellano/store-dashboard/internal/auth"
	"github.com/rogerio-castellano/store-dashboard/internal/repo"
	"github.com/rogerio-castellano/store-dashboard/internal/seed"
	"github.com/spf13/cobra"
)

var dataDir string

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Drop and recreate the tables, load the seed CSVs and reconcile order totals.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer a.close()

		dir := a.cfg.Data.Dir
		if dataDir != "" {
			dir = dataDir
		}

		stats, err := seed.NewImporter(repo.NewSchema(a.db), dir, a.logger).Import(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "loaded %d stores, %d orders, %d order items; reconciled %d orders in %s\n",
			stats.Stores, stats.Orders, stats.OrderItems, stats.Reconciled, stats.Duration)
		return nil
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Recompute every order total from its items.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer a.close()

		n, err := seed.NewImporter(repo.NewSchema(a.db), a.cfg.Data.Dir, a.logger).Reconcile(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reconciled %d orders\n", n)
		return nil
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password PASSWORD",
	Short: "Print the bcrypt hash to use as auth.admin_password_hash.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	initDBCmd.Flags().StringVar(&dataDir, "data", "", "directory holding the seed CSV files (default from data.dir)")
}
