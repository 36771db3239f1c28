// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/incipit-engine/internal/document"
	"github.com/pdiddy/incipit-engine/internal/rewrite"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Audit proposed citation changes without writing anything",
	Long: `Preview runs the identical pipeline as process but prints before/after
records for every endnote instead of writing a document. The input document
is never modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		cfg := resolveConfig(cmd)
		cfg.PreviewOnly = true

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
		records, rep, err := engine.Preview(doc, cfg.StyleConfig)
		if err != nil {
			return err
		}

		if err := document.WritePreview(os.Stdout, records); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%d notes, %d would be rewritten, %d degraded\n",
			rep.NotesTotal, rep.NotesRewritten, rep.Degraded())
		return nil
	},
}

func init() {
	previewCmd.Flags().StringP("input", "i", "", "input document YAML (required)")
	addStyleFlags(previewCmd)
	_ = previewCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(previewCmd)
}
