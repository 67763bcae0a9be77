// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the astro-digest pipeline.
// Implements: prd010-fetch (Record);
//
//	prd011-relevance (Annotation, Tier);
//	prd012-profile (Profile, scoring weights).
package types

import (
	"strings"
	"time"
)

// OrcidPlaceholder is the value ADS inserts into ORCID arrays to preserve
// author alignment when an author has no known ORCID.
const OrcidPlaceholder = "-"

// Record is one paper as returned by an ADS search response. Fields mirror
// the ADS `fl` list; parallel arrays (Authors, Affiliations, the ORCID
// arrays) are nominally index-aligned with Authors but are not guaranteed
// to have equal lengths.
type Record struct {
	// Bibcode is the stable ADS identifier and the primary dedup key.
	Bibcode string `json:"bibcode" yaml:"bibcode"`

	// Title is the paper title. Empty when ADS returns no title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Affiliations lists per-author affiliation strings. May be shorter or
	// longer than Authors.
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`

	// Abstract is the paper abstract, possibly empty.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Identifiers holds alternate identifiers (e.g. "arXiv:2301.07041", DOIs).
	Identifiers []string `json:"identifiers,omitempty" yaml:"identifiers,omitempty"`

	// Categories holds arXiv classes (e.g. "astro-ph.SR"); first is primary.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// PubDate is the raw ADS pubdate string (e.g. "2026-07-00"). Parsed
	// lazily; malformed values are treated as unknown, never as errors.
	PubDate string `json:"pubdate,omitempty" yaml:"pubdate,omitempty"`

	// OrcidPub, OrcidUser, and OrcidOther are the ADS ORCID arrays,
	// index-aligned with Authors where alignment survived indexing.
	OrcidPub   []string `json:"orcid_pub,omitempty" yaml:"orcid_pub,omitempty"`
	OrcidUser  []string `json:"orcid_user,omitempty" yaml:"orcid_user,omitempty"`
	OrcidOther []string `json:"orcid_other,omitempty" yaml:"orcid_other,omitempty"`
}

// OrcidFields returns the record's ORCID arrays in a fixed order so callers
// iterate them uniformly.
func (r Record) OrcidFields() [][]string {
	return [][]string{r.OrcidPub, r.OrcidUser, r.OrcidOther}
}

// ArxivID returns the bare arXiv identifier from Identifiers, or "".
func (r Record) ArxivID() string {
	const prefix = "arXiv:"
	for _, id := range r.Identifiers {
		if strings.HasPrefix(id, prefix) {
			return strings.TrimPrefix(id, prefix)
		}
	}
	return ""
}

// URL returns the best link for the record: the arXiv abstract page when an
// arXiv ID is present, the ADS abstract page otherwise.
func (r Record) URL() string {
	if id := r.ArxivID(); id != "" {
		return "https://arxiv.org/abs/" + id
	}
	return "https://ui.adsabs.harvard.edu/abs/" + r.Bibcode
}

// Category returns the primary arXiv class, or a generic fallback.
func (r Record) Category() string {
	if len(r.Categories) > 0 {
		return r.Categories[0]
	}
	return "astro-ph"
}

// Date parses PubDate. ADS uses "YYYY-MM-DD" with "00" standing in for an
// unknown month or day; those collapse to the first of the month/year.
// Unparsable values return the zero time so they sort as oldest.
func (r Record) Date() time.Time {
	s := r.PubDate
	if len(s) > 10 {
		s = s[:10]
	}
	s = strings.ReplaceAll(s, "-00", "-01")
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Tier is a discrete relevance band derived from the numeric score, used for
// display grouping and coloring.
type Tier string

const (
	TierMustRead Tier = "must-read"
	TierRelevant Tier = "relevant"
	TierSomewhat Tier = "somewhat-relevant"
	TierGeneral  Tier = "general"
)

// Tiers lists all tiers in descending relevance order.
var Tiers = []Tier{TierMustRead, TierRelevant, TierSomewhat, TierGeneral}

// Emoji returns the marker used in subject lines and badges.
func (t Tier) Emoji() string {
	switch t {
	case TierMustRead:
		return "🔴"
	case TierRelevant:
		return "🟠"
	case TierSomewhat:
		return "🟡"
	default:
		return "⚪"
	}
}

// Label returns the badge text.
func (t Tier) Label() string {
	switch t {
	case TierMustRead:
		return "MUST READ"
	case TierRelevant:
		return "RELEVANT"
	case TierSomewhat:
		return "SOMEWHAT RELEVANT"
	default:
		return "GENERAL"
	}
}

// Color returns the badge foreground color.
func (t Tier) Color() string {
	switch t {
	case TierMustRead:
		return "#c5050c"
	case TierRelevant:
		return "#e67e00"
	case TierSomewhat:
		return "#d4a017"
	default:
		return "#888888"
	}
}

// Background returns the card background color.
func (t Tier) Background() string {
	switch t {
	case TierMustRead:
		return "#fff0f0"
	case TierRelevant:
		return "#fff8f0"
	case TierSomewhat:
		return "#fffef0"
	default:
		return "#f9f9f9"
	}
}

// Annotation holds the derived relevance metadata for one record. It is a
// pure function of the record and the profile, recomputed on demand and
// never persisted.
type Annotation struct {
	// Score is the non-negative keyword score including the priority bonus.
	Score int `json:"score" yaml:"score"`

	// Tier is the display band derived from Score.
	Tier Tier `json:"tier" yaml:"tier"`

	// Priority reports whether a watchlist author appears on the record.
	Priority bool `json:"priority" yaml:"priority"`

	// PriorityAuthors lists recovered watchlist author names in
	// first-occurrence order. May be empty even when Priority is true,
	// when the ORCID arrays have lost author alignment.
	PriorityAuthors []string `json:"priority_authors,omitempty" yaml:"priority_authors,omitempty"`

	// MatchedAuthors lists the authors whose affiliation matched the
	// profile's allow patterns. Populated only on affiliation runs.
	MatchedAuthors []string `json:"matched_authors,omitempty" yaml:"matched_authors,omitempty"`
}
