package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/astro-digest/internal/digest"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Fetch and score papers without sending anything",
	Long: `Preview runs the fetch and scoring stages and prints the ranked result
set as a table (or JSON with --json). Nothing is rendered or sent, so it is
safe to iterate on profile tuning.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("mode", "topic", "digest mode: topic or affiliation")
	previewCmd.Flags().String("source", "ads", "record source: ads or feed")
	previewCmd.Flags().Int("days-back", 0, "query window in days (default 7)")
	previewCmd.Flags().Int("rows", 0, "maximum rows per query (default 500)")
	previewCmd.Flags().String("token", "", "ADS API token (default: .secrets/ads-api-key)")
	previewCmd.Flags().Bool("json", false, "output the result set as JSON")
	previewCmd.Flags().String("save", "", "also save the scored result set to this YAML file")
	previewCmd.Flags().String("from-file", "", "print a saved digest file instead of querying")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	var result pipelineResult
	if fromFile, _ := cmd.Flags().GetString("from-file"); fromFile != "" {
		var err error
		result, _, _, err = loadSaved(fromFile)
		if err != nil {
			return err
		}
	} else {
		profilePath, _ := rootCmd.PersistentFlags().GetString("profile")
		p, err := loadProfile(profilePath)
		if err != nil {
			return err
		}

		cfg := fetchConfig(cmd)
		now := time.Now()

		result, err = collect(context.Background(), cmd, p, cfg, now)
		if err != nil {
			return err
		}

		if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
			if err := digest.WriteFile(savePath, result.Entries, now, cfg.DaysBack, result.BatchErrors); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved digest to %s\n", savePath)
		}
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return digest.FormatJSON(result.Entries, os.Stdout)
	}
	digest.FormatTable(result.Entries, os.Stdout)
	if n := len(result.BatchErrors); n > 0 {
		fmt.Fprintf(os.Stderr, "%d batch error(s); results may be partial\n", n)
	}
	return nil
}
