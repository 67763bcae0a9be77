// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relevance scores records against an interest profile.
// Implements: prd011-relevance (R1-R4);
//
//	docs/ARCHITECTURE § Relevance Engine.
//
// All state is built once from the injected Profile; scoring functions are
// pure with respect to their arguments so re-scoring is idempotent and
// order-independent.
package relevance

import (
	"strings"

	"github.com/pdiddy/astro-digest/pkg/types"
)

// Scorer computes keyword relevance scores and full annotations.
type Scorer struct {
	weights   types.ScoringWeights
	watchlist *Watchlist

	// Lowercased keyword phrases, deduplicated. Topic keywords that also
	// appear in the high-value list are removed so a phrase is only ever
	// counted at its high-value weight.
	high  []string
	topic []string
}

// NewScorer builds a Scorer from the profile. Keyword hygiene (dedup,
// overlap removal, lowercasing) happens here, once.
func NewScorer(p types.Profile) *Scorer {
	high := uniqueLower(p.HighValueKeywords)

	highSet := make(map[string]bool, len(high))
	for _, k := range high {
		highSet[k] = true
	}

	var topic []string
	for _, k := range uniqueLower(p.TopicKeywords) {
		if !highSet[k] {
			topic = append(topic, k)
		}
	}

	return &Scorer{
		weights:   p.Weights.Normalize(),
		watchlist: NewWatchlist(p.PriorityAuthors),
		high:      high,
		topic:     topic,
	}
}

// Watchlist exposes the scorer's priority-author detector.
func (s *Scorer) Watchlist() *Watchlist { return s.watchlist }

// Score computes the keyword score for a title/abstract pair. For each
// keyword the title is checked first; the abstract only contributes when
// the title did not, so a phrase is never double counted within one record.
func (s *Scorer) Score(title, abstract string) int {
	t := strings.ToLower(title)
	a := strings.ToLower(abstract)

	score := 0
	for _, k := range s.high {
		switch {
		case strings.Contains(t, k):
			score += s.weights.HighTitle
		case strings.Contains(a, k):
			score += s.weights.HighAbstract
		}
	}
	for _, k := range s.topic {
		switch {
		case strings.Contains(t, k):
			score += s.weights.TopicTitle
		case strings.Contains(a, k):
			score += s.weights.TopicAbstract
		}
	}
	return score
}

// ScoreRecord computes the full record score: keyword score plus the flat
// watchlist bonus. The bonus pulls priority records upward without
// guaranteeing them top rank by score alone.
func (s *Scorer) ScoreRecord(rec types.Record) int {
	score := s.Score(rec.Title, rec.Abstract)
	if s.watchlist.Contains(rec) {
		score += s.weights.PriorityBonus
	}
	return score
}

// Annotate derives the record's display metadata.
func (s *Scorer) Annotate(rec types.Record) types.Annotation {
	score := s.ScoreRecord(rec)
	return types.Annotation{
		Score:           score,
		Tier:            s.weights.TierFor(score),
		Priority:        s.watchlist.Contains(rec),
		PriorityAuthors: s.watchlist.AuthorNames(rec),
	}
}

// uniqueLower lowercases and deduplicates, preserving first-occurrence order.
func uniqueLower(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	var out []string
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
