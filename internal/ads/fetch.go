// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ads

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/astro-digest/pkg/types"
)

// FetchOutput holds the per-query record batches and the failures that
// occurred. Batches are kept separate so the merge stage can dedupe across
// them; a failed batch contributes no records but never aborts the run.
type FetchOutput struct {
	Batches     [][]types.Record
	BatchErrors []string
}

// Records flattens the batches.
func (o FetchOutput) Records() int {
	n := 0
	for _, b := range o.Batches {
		n += len(b)
	}
	return n
}

// FetchTopic runs the keyword-driven topic queries. The keyword set is
// partitioned so each query stays within ADS query-length limits; one
// upstream call is issued per batch. Warnings go to w. When every batch
// fails the run is unusable and an error is returned.
func FetchTopic(ctx context.Context, c *Client, p types.Profile, cfg types.FetchConfig, now time.Time, w io.Writer) (FetchOutput, error) {
	cfg = cfg.Normalize()

	keywords := append(append([]string{}, p.TopicKeywords...), p.HighValueKeywords...)
	if len(keywords) == 0 {
		return FetchOutput{}, fmt.Errorf("no topic keywords configured")
	}

	var out FetchOutput
	for i, batch := range Partition(keywords, cfg.MaxTermsPerQuery) {
		q := TopicQuery(p.Categories, batch, now, cfg.DaysBack)
		records, err := c.Search(ctx, q, cfg.Rows)
		if err != nil {
			msg := fmt.Sprintf("topic batch %d: %v", i+1, err)
			out.BatchErrors = append(out.BatchErrors, msg)
			fmt.Fprintf(w, "warning: %s\n", msg)
			continue
		}
		out.Batches = append(out.Batches, records)
	}

	if len(out.Batches) == 0 {
		return out, fmt.Errorf("all %d topic batches failed", len(out.BatchErrors))
	}
	return out, nil
}

// FetchPriority runs one ORCID-index query per watchlist author so
// priority papers surface even when keyword recall misses them. Individual
// failures are warnings; priority queries are an additive signal, so even
// all of them failing does not abort the run.
func FetchPriority(ctx context.Context, c *Client, p types.Profile, cfg types.FetchConfig, now time.Time, w io.Writer) FetchOutput {
	cfg = cfg.Normalize()

	keywords := append(append([]string{}, p.TopicKeywords...), p.HighValueKeywords...)

	// The keyword clause is partitioned here too: an ORCID query carries
	// the same keyword restriction as the topic query and is subject to
	// the same length limit.
	batches := Partition(keywords, cfg.MaxTermsPerQuery)
	if len(batches) == 0 {
		batches = [][]string{nil}
	}

	var out FetchOutput
	for _, orcid := range p.ORCIDs() {
		for i, batch := range batches {
			q := ORCIDQuery(orcid, p.Categories, batch, now, cfg.DaysBack)
			records, err := c.Search(ctx, q, cfg.PriorityRows)
			if err != nil {
				msg := fmt.Sprintf("orcid %s batch %d: %v", orcid, i+1, err)
				out.BatchErrors = append(out.BatchErrors, msg)
				fmt.Fprintf(w, "warning: %s\n", msg)
				continue
			}
			out.Batches = append(out.Batches, records)
		}
	}
	return out
}

// FetchAffiliation runs the broad-recall affiliation query and filters the
// result to records with at least one matching affiliation, using the
// provided matcher for precision.
func FetchAffiliation(ctx context.Context, c *Client, matches func(string) bool, cfg types.FetchConfig, now time.Time) ([]types.Record, error) {
	cfg = cfg.Normalize()

	q := AffiliationQuery(nil, now, cfg.DaysBack)
	records, err := c.Search(ctx, q, cfg.Rows)
	if err != nil {
		return nil, fmt.Errorf("affiliation query: %w", err)
	}

	var confirmed []types.Record
	for _, rec := range records {
		for _, aff := range rec.Affiliations {
			if matches(aff) {
				confirmed = append(confirmed, rec)
				break
			}
		}
	}
	return confirmed, nil
}
