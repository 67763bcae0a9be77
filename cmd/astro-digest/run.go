package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/astro-digest/internal/digest"
	"github.com/pdiddy/astro-digest/internal/mail"
	"github.com/pdiddy/astro-digest/internal/render"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch, score, render, and send the digest email",
	Long: `Run executes one full digest: it queries ADS (or the arXiv listing feed)
for the profile's window, merges and scores the results, renders the HTML and
plain-text bodies, and delivers them over SMTP.

With --from-file a previously saved digest is re-rendered instead of queried.
With --dry-run the rendered plain-text digest is printed instead of sent.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("mode", "topic", "digest mode: topic or affiliation")
	runCmd.Flags().String("source", "ads", "record source: ads or feed")
	runCmd.Flags().Int("days-back", 0, "query window in days (default 7)")
	runCmd.Flags().Int("rows", 0, "maximum rows per query (default 500)")
	runCmd.Flags().String("token", "", "ADS API token (default: .secrets/ads-api-key)")
	runCmd.Flags().String("label", "UW-Madison", "institution label for the affiliation digest")
	runCmd.Flags().Bool("dry-run", false, "print the digest instead of sending it")
	runCmd.Flags().String("save", "", "also save the scored result set to this YAML file")
	runCmd.Flags().String("from-file", "", "render a saved digest file instead of querying")
	runCmd.Flags().String("smtp-host", "", "SMTP server hostname (default smtp.gmail.com)")
	runCmd.Flags().Int("smtp-port", 0, "SMTP submission port (default 587)")
	runCmd.Flags().String("from", "", "sender address")
	runCmd.Flags().String("to", "", "recipient address")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := digestConfig(cmd)
	now := time.Now()
	daysBack := cfg.Fetch.DaysBack

	var result pipelineResult
	if fromFile, _ := cmd.Flags().GetString("from-file"); fromFile != "" {
		var err error
		result, now, daysBack, err = loadSaved(fromFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Loaded %d paper(s) from %s\n", len(result.Entries), fromFile)
	} else {
		profilePath, _ := rootCmd.PersistentFlags().GetString("profile")
		p, err := loadProfile(profilePath)
		if err != nil {
			return err
		}
		result, err = collect(context.Background(), cmd, p, cfg.Fetch, now)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Fetched %d paper(s), %d batch error(s)\n", len(result.Entries), len(result.BatchErrors))

		if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
			if err := digest.WriteFile(savePath, result.Entries, now, daysBack, result.BatchErrors); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved digest to %s\n", savePath)
		}
	}

	mode, _ := cmd.Flags().GetString("mode")
	var email render.Email
	var err error
	if mode == "affiliation" {
		label, _ := cmd.Flags().GetString("label")
		email, err = render.Affiliation(result.Entries, now, daysBack, label)
	} else {
		email, err = render.Topic(result.Entries, now, daysBack)
	}
	if err != nil {
		return err
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Printf("Subject: %s\n\n%s\n", email.Subject, email.Text)
		return nil
	}

	if cfg.SMTP.From == "" || cfg.SMTP.To == "" {
		return fmt.Errorf("sender and recipient are required: set --from/--to or smtp.from/smtp.to in the config file")
	}
	password := secretDefault("smtp-password", "")
	if password == "" {
		return fmt.Errorf("no SMTP password: place one in .secrets/smtp-password")
	}

	sender := mail.NewSender(cfg.SMTP, password)
	if err := sender.Send(mail.NewMessage(email, cfg.SMTP)); err != nil {
		return fmt.Errorf("sending digest: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Digest sent to %s\n", cfg.SMTP.To)
	return nil
}
