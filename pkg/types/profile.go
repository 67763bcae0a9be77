// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// PriorityAuthor is one watchlist entry: an ORCID plus the normalized name
// variants used when ORCID arrays are absent or misaligned.
type PriorityAuthor struct {
	// ORCID is the author's ORCID iD (e.g. "0000-0001-7246-5438").
	ORCID string `yaml:"orcid"`

	// Names lists name forms as ADS renders them ("Last, First" and common
	// abbreviations). Matching is case- and punctuation-insensitive.
	Names []string `yaml:"names,omitempty"`
}

// AffiliationRules configures the institutional affiliation matcher.
// Deny lists are checked before allow patterns so an ambiguous abbreviation
// resolves toward exclusion.
type AffiliationRules struct {
	// ExcludeHints are substrings indicating a namesake institution
	// (e.g. University of Washington contexts for "UW"). Any hit rejects
	// the affiliation before the allow patterns run.
	ExcludeHints []string `yaml:"exclude_hints,omitempty"`

	// ExcludeCampuses are substrings naming sibling campuses in the same
	// university system. Checked after ExcludeHints, before allow patterns.
	ExcludeCampuses []string `yaml:"exclude_campuses,omitempty"`

	// Patterns are case-insensitive regular expressions recognizing the
	// target institution's name variants. Any match accepts.
	Patterns []string `yaml:"patterns,omitempty"`
}

// ScoringWeights holds the keyword weights, the watchlist bonus, and the
// tier thresholds. Zero values mean "use the default".
type ScoringWeights struct {
	// HighTitle/HighAbstract weight a high-value keyword found in the
	// title or (failing that) the abstract.
	HighTitle    int `yaml:"high_title"`
	HighAbstract int `yaml:"high_abstract"`

	// TopicTitle/TopicAbstract weight a standard topic keyword.
	TopicTitle    int `yaml:"topic_title"`
	TopicAbstract int `yaml:"topic_abstract"`

	// PriorityBonus is added once when a watchlist author is detected.
	PriorityBonus int `yaml:"priority_bonus"`

	// MustReadMin, RelevantMin, and SomewhatMin are the inclusive lower
	// bounds of the tier bands, evaluated in descending order.
	MustReadMin int `yaml:"must_read_min"`
	RelevantMin int `yaml:"relevant_min"`
	SomewhatMin int `yaml:"somewhat_min"`
}

// defaultWeights are the production weights.
var defaultWeights = ScoringWeights{
	HighTitle:     15,
	HighAbstract:  10,
	TopicTitle:    5,
	TopicAbstract: 3,
	PriorityBonus: 25,
	MustReadMin:   20,
	RelevantMin:   10,
	SomewhatMin:   2,
}

// Normalize fills zero weight fields with the defaults.
func (w ScoringWeights) Normalize() ScoringWeights {
	d := defaultWeights
	if w.HighTitle == 0 {
		w.HighTitle = d.HighTitle
	}
	if w.HighAbstract == 0 {
		w.HighAbstract = d.HighAbstract
	}
	if w.TopicTitle == 0 {
		w.TopicTitle = d.TopicTitle
	}
	if w.TopicAbstract == 0 {
		w.TopicAbstract = d.TopicAbstract
	}
	if w.PriorityBonus == 0 {
		w.PriorityBonus = d.PriorityBonus
	}
	if w.MustReadMin == 0 {
		w.MustReadMin = d.MustReadMin
	}
	if w.RelevantMin == 0 {
		w.RelevantMin = d.RelevantMin
	}
	if w.SomewhatMin == 0 {
		w.SomewhatMin = d.SomewhatMin
	}
	return w
}

// TierFor maps a score onto its band, first match wins descending.
func (w ScoringWeights) TierFor(score int) Tier {
	switch {
	case score >= w.MustReadMin:
		return TierMustRead
	case score >= w.RelevantMin:
		return TierRelevant
	case score >= w.SomewhatMin:
		return TierSomewhat
	default:
		return TierGeneral
	}
}

// Profile is the interest profile the digest is scored against. All lists
// are injected into the scorer/matcher constructors; nothing in the core
// reads process-wide state, so tests substitute synthetic profiles freely.
type Profile struct {
	// HighValueKeywords score higher than TopicKeywords and absorb any
	// duplicates between the two lists.
	HighValueKeywords []string `yaml:"high_value_keywords,omitempty"`

	// TopicKeywords are the standard interest phrases. They also drive the
	// upstream topic query.
	TopicKeywords []string `yaml:"topic_keywords,omitempty"`

	// PriorityAuthors is the author watchlist.
	PriorityAuthors []PriorityAuthor `yaml:"priority_authors,omitempty"`

	// Affiliation configures the institutional matcher.
	Affiliation AffiliationRules `yaml:"affiliation,omitempty"`

	// Categories restricts queries to these arXiv classes.
	Categories []string `yaml:"categories,omitempty"`

	// Weights holds scoring weights and tier thresholds.
	Weights ScoringWeights `yaml:"weights,omitempty"`
}

// Validate reports whether the profile can ever match anything. A profile
// with no keywords, no watchlist, and no affiliation patterns would only
// produce an empty, misleadingly successful digest.
func (p Profile) Validate() error {
	if len(p.HighValueKeywords) == 0 && len(p.TopicKeywords) == 0 &&
		len(p.PriorityAuthors) == 0 && len(p.Affiliation.Patterns) == 0 {
		return fmt.Errorf("profile is empty: configure keywords, priority authors, or affiliation patterns")
	}
	for i, a := range p.PriorityAuthors {
		if a.ORCID == "" && len(a.Names) == 0 {
			return fmt.Errorf("priority author %d has neither an ORCID nor name variants", i)
		}
	}
	return nil
}

// ORCIDs returns the watchlist ORCIDs in profile order, skipping entries
// that are name-only.
func (p Profile) ORCIDs() []string {
	var ids []string
	for _, a := range p.PriorityAuthors {
		if a.ORCID != "" {
			ids = append(ids, a.ORCID)
		}
	}
	return ids
}
