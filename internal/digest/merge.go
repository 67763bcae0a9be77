// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest merges record batches from multiple upstream queries into
// one deduplicated, annotated, totally ordered result set.
// Implements: prd013-digest (R1-R3);
//
//	docs/ARCHITECTURE § Merge & Ranking.
package digest

import (
	"sort"

	"github.com/pdiddy/astro-digest/internal/relevance"
	"github.com/pdiddy/astro-digest/pkg/types"
)

// Entry is one digest line: a record plus its derived annotation.
type Entry struct {
	Record     types.Record     `json:"record" yaml:"record"`
	Annotation types.Annotation `json:"annotation" yaml:"annotation"`
}

// MergeAndSort flattens the batches, deduplicates, annotates each survivor
// with the scorer, and sorts by (priority desc, score desc, pubdate desc)
// with a stable tie-break on input order. The result is idempotent: feeding
// it back in as a single batch reproduces the same ordering.
func MergeAndSort(batches [][]types.Record, scorer *relevance.Scorer) []Entry {
	merged := dedupe(batches)

	entries := make([]Entry, 0, len(merged))
	for _, rec := range merged {
		entries = append(entries, Entry{Record: rec, Annotation: scorer.Annotate(rec)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Annotation, entries[j].Annotation
		if a.Priority != b.Priority {
			return a.Priority
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return entries[i].Record.Date().After(entries[j].Record.Date())
	})

	return entries
}

// dedupe unifies records across batches. Bibcode is the primary key; the
// arXiv identifier is a secondary key so records from sources without
// bibcodes (the RSS fallback) unify with their ADS copies. Last-seen wins
// as the representative, with still-empty fields backfilled from the
// earlier copy so a populated abstract is never lost to batch order.
func dedupe(batches [][]types.Record) []types.Record {
	seen := make(map[string]int) // dedup key → index in merged
	var merged []types.Record

	for _, batch := range batches {
		for _, rec := range batch {
			keys := dedupeKeys(rec)
			if len(keys) == 0 {
				// No identifier at all: keep the record, nothing to unify on.
				merged = append(merged, rec)
				continue
			}

			idx := -1
			for _, k := range keys {
				if i, ok := seen[k]; ok {
					idx = i
					break
				}
			}

			if idx >= 0 {
				prev := merged[idx]
				merged[idx] = backfill(rec, prev)
			} else {
				idx = len(merged)
				merged = append(merged, rec)
			}

			for _, k := range keys {
				seen[k] = idx
			}
		}
	}
	return merged
}

// dedupeKeys returns the identity keys a record can be unified on.
func dedupeKeys(rec types.Record) []string {
	var keys []string
	if rec.Bibcode != "" {
		keys = append(keys, "bib:"+rec.Bibcode)
	}
	if id := rec.ArxivID(); id != "" {
		keys = append(keys, "arxiv:"+id)
	}
	return keys
}

// backfill fills empty fields of the winning copy from the earlier one.
func backfill(dst, src types.Record) types.Record {
	if dst.Bibcode == "" {
		dst.Bibcode = src.Bibcode
	}
	if dst.Title == "" {
		dst.Title = src.Title
	}
	if len(dst.Authors) == 0 {
		dst.Authors = src.Authors
	}
	if len(dst.Affiliations) == 0 {
		dst.Affiliations = src.Affiliations
	}
	if dst.Abstract == "" {
		dst.Abstract = src.Abstract
	}
	if len(dst.Identifiers) == 0 {
		dst.Identifiers = src.Identifiers
	}
	if len(dst.Categories) == 0 {
		dst.Categories = src.Categories
	}
	if dst.PubDate == "" {
		dst.PubDate = src.PubDate
	}
	if len(dst.OrcidPub) == 0 {
		dst.OrcidPub = src.OrcidPub
	}
	if len(dst.OrcidUser) == 0 {
		dst.OrcidUser = src.OrcidUser
	}
	if len(dst.OrcidOther) == 0 {
		dst.OrcidOther = src.OrcidOther
	}
	return dst
}

// TierCounts tallies entries per tier for subject lines and summaries.
func TierCounts(entries []Entry) map[types.Tier]int {
	counts := make(map[types.Tier]int, len(types.Tiers))
	for _, e := range entries {
		counts[e.Annotation.Tier]++
	}
	return counts
}
