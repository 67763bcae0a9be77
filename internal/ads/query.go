// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ads

import (
	"fmt"
	"strings"
	"time"
)

const dateFmt = "2006-01-02"

// DateRange formats an entdate window ending at now.
func DateRange(now time.Time, daysBack int) string {
	start := now.AddDate(0, 0, -daysBack)
	return fmt.Sprintf("[%s TO %s]", start.Format(dateFmt), now.Format(dateFmt))
}

// escapePhrase makes a keyword safe inside an ADS quoted phrase.
func escapePhrase(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, `\"`))
}

// KeywordClause builds `(title:"kw" OR abs:"kw") OR ...` for one batch of
// keyword phrases. Empty after escaping → "".
func KeywordClause(keywords []string) string {
	var parts []string
	for _, kw := range keywords {
		if kw = escapePhrase(kw); kw != "" {
			parts = append(parts, `(title:"`+kw+`" OR abs:"`+kw+`")`)
		}
	}
	return strings.Join(parts, " OR ")
}

// CategoryClause builds `(arxiv_class:"c1" OR arxiv_class:"c2")`.
func CategoryClause(categories []string) string {
	var parts []string
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, fmt.Sprintf("arxiv_class:%q", c))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// TopicQuery restricts to the profile categories, requires a keyword match
// in title or abstract, and bounds the entry date.
func TopicQuery(categories, keywords []string, now time.Time, daysBack int) string {
	clauses := make([]string, 0, 3)
	if cat := CategoryClause(categories); cat != "" {
		clauses = append(clauses, cat)
	}
	if kw := KeywordClause(keywords); kw != "" {
		clauses = append(clauses, "("+kw+")")
	}
	clauses = append(clauses, "entdate:"+DateRange(now, daysBack))
	return strings.Join(clauses, " AND ")
}

// ORCIDQuery targets one watchlist author through the ADS orcid index,
// with the same category and keyword restrictions as the topic query so
// priority hits stay on topic.
func ORCIDQuery(orcid string, categories, keywords []string, now time.Time, daysBack int) string {
	clauses := make([]string, 0, 4)
	if cat := CategoryClause(categories); cat != "" {
		clauses = append(clauses, cat)
	}
	clauses = append(clauses, "orcid:"+orcid)
	if kw := KeywordClause(keywords); kw != "" {
		clauses = append(clauses, "("+kw+")")
	}
	clauses = append(clauses, "entdate:"+DateRange(now, daysBack))
	return strings.Join(clauses, " AND ")
}

// affRecallPhrases are the quoted aff phrases used for the broad-recall
// affiliation query. Precision comes from the in-process matcher; these
// only need to catch the record at all.
var affRecallPhrases = []string{
	"University of Wisconsin",
	"University of Wisconsin - Madison",
	"University of Wisconsin–Madison",
	"UW-Madison",
	"UW Madison",
	"Univ of Wisconsin",
}

// AffiliationQuery builds the broad-recall affiliation query for the date
// window. Callers pass extra phrases to widen recall; nil uses the stock set.
func AffiliationQuery(phrases []string, now time.Time, daysBack int) string {
	if len(phrases) == 0 {
		phrases = affRecallPhrases
	}
	parts := make([]string, 0, len(phrases))
	for _, p := range phrases {
		parts = append(parts, fmt.Sprintf("aff:%q", p))
	}
	return fmt.Sprintf("entdate:%s AND (%s)", DateRange(now, daysBack), strings.Join(parts, " OR "))
}
