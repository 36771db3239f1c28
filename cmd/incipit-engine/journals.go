// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/incipit-engine/internal/journals"
)

var journalsCmd = &cobra.Command{
	Use:   "journals [name...]",
	Short: "Show the journal abbreviation table or look up names",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("journals")
		table := journals.Default()
		if path != "" {
			var err error
			table, err = journals.Load(path)
			if err != nil {
				return err
			}
		}

		if len(args) == 0 {
			for _, e := range table.Entries() {
				fmt.Printf("%-50s %s\n", e.Name, e.Abbrev)
			}
			fmt.Fprintf(os.Stderr, "%d entries\n", table.Len())
			return nil
		}

		for _, name := range args {
			if abbrev, ok := table.Lookup(name); ok {
				fmt.Printf("%s -> %s\n", name, abbrev)
			} else {
				fmt.Printf("%s (no abbreviation; passes through unchanged)\n", name)
			}
		}
		return nil
	},
}

func init() {
	journalsCmd.Flags().String("journals", "", "journal abbreviation table YAML (default: embedded table)")

	rootCmd.AddCommand(journalsCmd)
}
