// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the incipit-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE; no-op unless --verbose.
var logger = zap.NewNop()

// rootCmd is the base command for the incipit-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "incipit-engine",
	Short: "Rewrite endnote citations into page-referenced incipit form",
	Long: `incipit-engine converts documents that cite sources via endnotes into a
page-referenced citation format. Each citation gets a short contextual
"incipit" phrase and a page-link bookmark, and the endnote text is rewritten
per one of eight academic citation styles with Ibid/short-form collapsing,
author reordering, and journal abbreviation.

The document object model is read and written as YAML; the enclosing
application's container layer is responsible for producing it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			logger = l
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./incipit-engine.yaml or ~/.config/incipit-engine/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("incipit-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "incipit-engine"))
		}
	}

	viper.SetEnvPrefix("INCIPIT_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
