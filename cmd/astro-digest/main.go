// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the astro-digest CLI.
// Implements: prd010-fetch, prd011-relevance, prd012-profile,
//             prd013-digest (CLI surface).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/astro-digest/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the astro-digest CLI.
var rootCmd = &cobra.Command{
	Use:   "astro-digest",
	Short: "Periodic astro-ph literature digests from NASA ADS",
	Long: `astro-digest queries the NASA ADS search API for recent astro-ph papers
matching an interest profile (topic keywords, priority authors, institutional
affiliation), scores and ranks the results, and renders them into an HTML and
plain-text email digest.

Use run to fetch, score, and send a digest; preview to print the scored
result set without sending; and profile to inspect or validate the interest
profile.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./astro-digest.yaml or ~/.config/astro-digest/config.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "interest profile YAML (default: built-in profile)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("astro-digest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "astro-digest"))
		}
	}

	viper.SetEnvPrefix("ASTRO_DIGEST")
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
