// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/astro-digest/internal/relevance"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect or validate the interest profile",
	Long: `Profile works with the interest profile the digest is scored against:
keywords, the priority-author watchlist, affiliation rules, and scoring
weights. Without --profile the built-in profile is used.`,
}

// --- show subcommand ---

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective profile as YAML",
	RunE:  runProfileShow,
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	profilePath, _ := rootCmd.PersistentFlags().GetString("profile")
	p, err := loadProfile(profilePath)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	os.Stdout.Write(data)
	return nil
}

// --- validate subcommand ---

var profileValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the profile can match papers",
	Long: `Validate checks that the profile is usable: it must carry at least one
keyword, watchlist author, or affiliation pattern, every watchlist entry
needs an ORCID or name variants, and the affiliation patterns must compile.`,
	RunE: runProfileValidate,
}

func runProfileValidate(cmd *cobra.Command, args []string) error {
	profilePath, _ := rootCmd.PersistentFlags().GetString("profile")
	p, err := loadProfile(profilePath)
	if err != nil {
		return err
	}

	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := relevance.NewAffiliationMatcher(p.Affiliation); err != nil {
		return err
	}

	fmt.Printf("profile OK: %d high-value keywords, %d topic keywords, %d priority authors, %d affiliation patterns\n",
		len(p.HighValueKeywords), len(p.TopicKeywords), len(p.PriorityAuthors), len(p.Affiliation.Patterns))
	return nil
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileValidateCmd)
	rootCmd.AddCommand(profileCmd)
}
