// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/astro-digest/internal/ads"
	"github.com/pdiddy/astro-digest/internal/digest"
	"github.com/pdiddy/astro-digest/internal/feed"
	"github.com/pdiddy/astro-digest/internal/relevance"
	"github.com/pdiddy/astro-digest/pkg/types"
)

// pipelineResult is the scored result set of one fetch, shared by run and
// preview.
type pipelineResult struct {
	Entries     []digest.Entry
	BatchErrors []string
}

// loadProfile returns the built-in profile, overlaid with the YAML file at
// path when one is given.
func loadProfile(path string) (types.Profile, error) {
	p := types.DefaultProfile()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Profile{}, fmt.Errorf("reading profile %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return types.Profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return p, nil
}

// fetchConfig assembles the fetch settings from flags with viper fallbacks.
func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	cfg := types.FetchConfig{}
	if daysBack, _ := cmd.Flags().GetInt("days-back"); daysBack > 0 {
		cfg.DaysBack = daysBack
	} else {
		cfg.DaysBack = viper.GetInt("fetch.days_back")
	}
	if rows, _ := cmd.Flags().GetInt("rows"); rows > 0 {
		cfg.Rows = rows
	} else {
		cfg.Rows = viper.GetInt("fetch.rows")
	}
	cfg.MaxTermsPerQuery = viper.GetInt("fetch.max_terms_per_query")
	return cfg.Normalize()
}

// smtpConfig assembles delivery settings from flags with viper fallbacks.
func smtpConfig(cmd *cobra.Command) types.SMTPConfig {
	cfg := types.SMTPConfig{
		Host: viper.GetString("smtp.host"),
		Port: viper.GetInt("smtp.port"),
		From: viper.GetString("smtp.from"),
		To:   viper.GetString("smtp.to"),
	}
	if host, _ := cmd.Flags().GetString("smtp-host"); host != "" {
		cfg.Host = host
	}
	if port, _ := cmd.Flags().GetInt("smtp-port"); port != 0 {
		cfg.Port = port
	}
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		cfg.From = from
	}
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		cfg.To = to
	}
	return cfg
}

// digestConfig assembles the full run configuration.
func digestConfig(cmd *cobra.Command) types.DigestConfig {
	return types.DigestConfig{
		Fetch: fetchConfig(cmd),
		SMTP:  smtpConfig(cmd),
	}
}

// loadSaved re-loads a previously saved digest run so it can be re-rendered
// without querying ADS again. The render window is recovered from the file.
func loadSaved(path string) (pipelineResult, time.Time, int, error) {
	f, err := digest.ReadFile(path)
	if err != nil {
		return pipelineResult{}, time.Time{}, 0, err
	}

	now := f.Summary.Timestamp
	if now.IsZero() {
		now = time.Now()
	}
	daysBack := 7
	if from, errFrom := time.Parse("2006-01-02", f.Window.From); errFrom == nil {
		if to, errTo := time.Parse("2006-01-02", f.Window.To); errTo == nil {
			if d := int(to.Sub(from).Hours() / 24); d > 0 {
				daysBack = d
			}
		}
	}

	result := pipelineResult{
		Entries:     f.Entries,
		BatchErrors: f.Summary.BatchErrors,
	}
	return result, now, daysBack, nil
}

// collect fetches and scores one digest's worth of records. mode selects the
// topic pipeline (keyword + priority-author queries) or the affiliation
// pipeline (broad recall query + matcher filter); source selects ADS or the
// arXiv RSS fallback.
func collect(ctx context.Context, cmd *cobra.Command, p types.Profile, cfg types.FetchConfig, now time.Time) (pipelineResult, error) {
	if err := p.Validate(); err != nil {
		return pipelineResult{}, err
	}

	mode, _ := cmd.Flags().GetString("mode")
	source, _ := cmd.Flags().GetString("source")
	scorer := relevance.NewScorer(p)

	switch mode {
	case "topic":
		if source == "feed" {
			return collectFeed(ctx, p, scorer)
		}
		return collectTopic(ctx, cmd, p, cfg, scorer, now)
	case "affiliation":
		if source == "feed" {
			return pipelineResult{}, fmt.Errorf("affiliation mode needs per-author affiliations; the arXiv feed does not carry them")
		}
		return collectAffiliation(ctx, cmd, p, cfg, scorer, now)
	default:
		return pipelineResult{}, fmt.Errorf("unknown mode %q (want topic or affiliation)", mode)
	}
}

func adsClient(cmd *cobra.Command, cfg types.FetchConfig) (*ads.Client, error) {
	tokenFlag, _ := cmd.Flags().GetString("token")
	token := secretDefault("ads-api-key", tokenFlag)
	if token == "" {
		token = viper.GetString("ads_api_key")
	}
	if token == "" {
		return nil, fmt.Errorf("no ADS API token: place one in .secrets/ads-api-key or pass --token")
	}
	return ads.NewClient(token, cfg), nil
}

func collectTopic(ctx context.Context, cmd *cobra.Command, p types.Profile, cfg types.FetchConfig, scorer *relevance.Scorer, now time.Time) (pipelineResult, error) {
	client, err := adsClient(cmd, cfg)
	if err != nil {
		return pipelineResult{}, err
	}

	topicOut, err := ads.FetchTopic(ctx, client, p, cfg, now, os.Stderr)
	if err != nil {
		return pipelineResult{}, err
	}
	priorityOut := ads.FetchPriority(ctx, client, p, cfg, now, os.Stderr)

	batches := append(topicOut.Batches, priorityOut.Batches...)
	return pipelineResult{
		Entries:     digest.MergeAndSort(batches, scorer),
		BatchErrors: append(topicOut.BatchErrors, priorityOut.BatchErrors...),
	}, nil
}

func collectAffiliation(ctx context.Context, cmd *cobra.Command, p types.Profile, cfg types.FetchConfig, scorer *relevance.Scorer, now time.Time) (pipelineResult, error) {
	if len(p.Affiliation.Patterns) == 0 {
		return pipelineResult{}, fmt.Errorf("affiliation mode needs at least one affiliation pattern in the profile")
	}
	matcher, err := relevance.NewAffiliationMatcher(p.Affiliation)
	if err != nil {
		return pipelineResult{}, err
	}
	client, err := adsClient(cmd, cfg)
	if err != nil {
		return pipelineResult{}, err
	}

	records, err := ads.FetchAffiliation(ctx, client, matcher.Matches, cfg, now)
	if err != nil {
		return pipelineResult{}, err
	}

	entries := digest.MergeAndSort([][]types.Record{records}, scorer)
	for i := range entries {
		entries[i].Annotation.MatchedAuthors = matcher.MatchedAuthors(entries[i].Record)
	}
	return pipelineResult{Entries: entries}, nil
}

// collectFeed reads the arXiv category listing feeds instead of ADS. The
// feed is unfiltered upstream, so entries that score nothing and carry no
// watchlist author are dropped here.
func collectFeed(ctx context.Context, p types.Profile, scorer *relevance.Scorer) (pipelineResult, error) {
	source := feed.NewSource()

	var result pipelineResult
	var batches [][]types.Record
	for _, category := range p.Categories {
		records, err := source.Fetch(ctx, category)
		if err != nil {
			msg := fmt.Sprintf("feed %s: %v", category, err)
			result.BatchErrors = append(result.BatchErrors, msg)
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
			continue
		}
		batches = append(batches, records)
	}
	if len(batches) == 0 {
		return result, fmt.Errorf("all %d category feeds failed", len(result.BatchErrors))
	}

	for _, e := range digest.MergeAndSort(batches, scorer) {
		if e.Annotation.Score > 0 || e.Annotation.Priority {
			result.Entries = append(result.Entries, e)
		}
	}
	return result, nil
}
