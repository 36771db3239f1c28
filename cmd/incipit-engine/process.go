// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/incipit-engine/internal/document"
	"github.com/pdiddy/incipit-engine/internal/report"
	"github.com/pdiddy/incipit-engine/internal/rewrite"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Rewrite a document's endnotes in place-referenced form",
	Long: `Process runs the full citation transformation pass: every endnote is
parsed, classified against the citation history (full, short form, or Ibid),
rendered in the selected style, and linked to its body location with an
emphasized incipit phrase and a page bookmark.

Configuration problems and unresolvable anchors fail before anything is
written. Individual citations that match no known shape pass through
unchanged and are listed as warnings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		cfg := resolveConfig(cmd)

		// Validate before touching the document.
		if err := rewrite.ValidateConfig(cfg.StyleConfig); err != nil {
			return err
		}

		table, err := loadJournals(cfg)
		if err != nil {
			return err
		}

		doc, err := document.Load(input)
		if err != nil {
			return err
		}

		engine := rewrite.NewEngine(table, rewrite.WithLogger(logger))
		result, rep, err := engine.Process(doc, cfg.StyleConfig)
		if err != nil {
			return err
		}

		if err := document.Save(output, result); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Rewrote %d of %d notes (%s style) -> %s\n",
			rep.NotesRewritten, rep.NotesTotal, cfg.Style, output)
		for _, w := range rep.Warnings {
			fmt.Fprintf(os.Stderr, "  warning: %s\n", w)
		}

		if cfg.LedgerPath != "" {
			store, err := report.Open(cfg.LedgerPath)
			if err != nil {
				return fmt.Errorf("opening run ledger: %w", err)
			}
			defer store.Close()
			runID, err := store.Record(cmd.Context(), doc.Name, string(cfg.Style), rep)
			if err != nil {
				return fmt.Errorf("recording run: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Recorded run %d in %s\n", runID, cfg.LedgerPath)
		}
		return nil
	},
}

func init() {
	processCmd.Flags().StringP("input", "i", "", "input document YAML (required)")
	processCmd.Flags().StringP("output", "o", "", "output document YAML (required)")
	addStyleFlags(processCmd)
	_ = processCmd.MarkFlagRequired("input")
	_ = processCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(processCmd)
}
