// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/incipit-engine/internal/report"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded processing runs from the ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("ledger")
		if path == "" {
			path = viper.GetString(keyLedger)
		}
		if path == "" {
			return fmt.Errorf("no ledger configured: set --ledger or %s in the config file", keyLedger)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		showWarnings, _ := cmd.Flags().GetBool("warnings")

		store, err := report.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		for _, r := range runs {
			fmt.Printf("%4d  %s  %-10s %3d notes, %3d rewritten, %d degraded  %s\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Style,
				r.NotesTotal, r.NotesRewritten, r.NotesDegraded, r.Document)
			if showWarnings && r.NotesDegraded > 0 {
				warnings, err := store.Warnings(cmd.Context(), r.ID)
				if err != nil {
					return err
				}
				for _, w := range warnings {
					fmt.Printf("      %s\n", w)
				}
			}
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().String("ledger", "", "run-ledger SQLite path")
	runsCmd.Flags().Int("limit", 20, "maximum runs to list")
	runsCmd.Flags().Bool("warnings", false, "include degradation warnings per run")

	rootCmd.AddCommand(runsCmd)
}
