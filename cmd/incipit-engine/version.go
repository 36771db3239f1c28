package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the incipit-engine version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("incipit-engine", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
