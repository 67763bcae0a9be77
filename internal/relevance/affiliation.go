// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/astro-digest/internal/align"
	"github.com/pdiddy/astro-digest/pkg/types"
)

// UnmappedAffiliation is the sentinel MatchedAuthors returns when some
// affiliation on the record matches but the author-to-affiliation mapping
// is unavailable or misaligned.
const UnmappedAffiliation = "(affiliation present; per-author mapping unavailable)"

// AffiliationMatcher classifies free-text affiliation strings. Deny lists
// run before the allow patterns: an abbreviation shared with a namesake
// institution resolves toward exclusion, not inclusion.
type AffiliationMatcher struct {
	excludeHints    []string
	excludeCampuses []string
	allow           *regexp.Regexp
}

// NewAffiliationMatcher compiles the profile's affiliation rules. The allow
// patterns are OR-combined into a single case-insensitive expression.
func NewAffiliationMatcher(rules types.AffiliationRules) (*AffiliationMatcher, error) {
	m := &AffiliationMatcher{
		excludeHints:    lowerAll(rules.ExcludeHints),
		excludeCampuses: lowerAll(rules.ExcludeCampuses),
	}

	if len(rules.Patterns) > 0 {
		re, err := regexp.Compile("(?i)" + strings.Join(rules.Patterns, "|"))
		if err != nil {
			return nil, fmt.Errorf("compiling affiliation patterns: %w", err)
		}
		m.allow = re
	}
	return m, nil
}

// Matches reports whether the affiliation belongs to the target
// institution. Evaluation order: empty → false; namesake hints → false;
// sibling campuses → false; allow patterns → true; else false.
func (m *AffiliationMatcher) Matches(affiliation string) bool {
	if affiliation == "" {
		return false
	}

	lower := strings.ToLower(affiliation)
	for _, hint := range m.excludeHints {
		if strings.Contains(lower, hint) {
			return false
		}
	}
	for _, campus := range m.excludeCampuses {
		if strings.Contains(lower, campus) {
			return false
		}
	}

	return m.allow != nil && m.allow.MatchString(affiliation)
}

// MatchedAuthors returns the authors whose affiliation matches, walking the
// two arrays in lockstep with padding. When no per-author match exists but
// some affiliation on the record matches, a single UnmappedAffiliation
// sentinel is returned so the record is not lost to misalignment.
func (m *AffiliationMatcher) MatchedAuthors(rec types.Record) []string {
	var matched []string
	align.Pairs(rec.Authors, rec.Affiliations, func(author, aff string) {
		if author != "" && aff != "" && m.Matches(aff) {
			matched = append(matched, author)
		}
	})
	if len(matched) > 0 {
		return matched
	}

	for _, aff := range rec.Affiliations {
		if m.Matches(aff) {
			return []string{UnmappedAffiliation}
		}
	}
	return nil
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(v))
	}
	return out
}
