// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/incipit-engine/internal/journals"
	"github.com/pdiddy/incipit-engine/pkg/types"
)

// Config file / environment keys.
const (
	keyStyle     = "style"
	keyWordCount = "word_count"
	keyEmphasis  = "emphasis"
	keyJournals  = "journals_file"
	keyLedger    = "ledger_path"
)

// addStyleFlags registers the shared processing flags on a command.
func addStyleFlags(cmd *cobra.Command) {
	cmd.Flags().String("style", "chicago", "citation style: chicago, turabian, bluebook, ama, oxford, oscola, mhra, vancouver")
	cmd.Flags().Int("word-count", 3, "incipit length in words (1-10)")
	cmd.Flags().String("emphasis", "bold", "incipit emphasis: bold or italic")
	cmd.Flags().String("journals", "", "journal abbreviation table YAML (default: embedded table)")
}

// resolveConfig merges flags, the config file, and the environment into
// an EngineConfig. Flags win when set; otherwise config-file values
// apply; otherwise flag defaults.
func resolveConfig(cmd *cobra.Command) types.EngineConfig {
	cfg := types.EngineConfig{
		StyleConfig: types.StyleConfig{
			Style:            types.StyleCode(stringSetting(cmd, "style", keyStyle)),
			IncipitWordCount: intSetting(cmd, "word-count", keyWordCount),
			Emphasis:         types.Emphasis(stringSetting(cmd, "emphasis", keyEmphasis)),
		},
		JournalsFile: stringSetting(cmd, "journals", keyJournals),
		LedgerPath:   viper.GetString(keyLedger),
	}
	return cfg
}

func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) || !viper.IsSet(key) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) || !viper.IsSet(key) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	return viper.GetInt(key)
}

// loadJournals returns the configured abbreviation table, falling back
// to the embedded default.
func loadJournals(cfg types.EngineConfig) (*journals.Table, error) {
	if cfg.JournalsFile == "" {
		return journals.Default(), nil
	}
	return journals.Load(cfg.JournalsFile)
}
