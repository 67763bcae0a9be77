// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed reads the arXiv category listing feeds as a fallback record
// source for runs where ADS is unreachable. Feed records carry no bibcode,
// affiliations, or ORCID arrays; the merge stage unifies them with ADS
// copies through the arXiv identifier.
package feed

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/pdiddy/astro-digest/pkg/types"
)

// arxivFeedBase is the arXiv RSS endpoint prefix. Declared as a var so
// tests can substitute an httptest server.
var arxivFeedBase = "https://rss.arxiv.org/rss/"

// Source fetches one arXiv category listing.
type Source struct {
	Parser *gofeed.Parser
}

// NewSource returns a Source with a default parser.
func NewSource() *Source {
	return &Source{Parser: gofeed.NewParser()}
}

// Fetch downloads and parses the listing feed for one category
// (e.g. "astro-ph.SR") and maps the items onto Records.
func (s *Source) Fetch(ctx context.Context, category string) ([]types.Record, error) {
	f, err := s.Parser.ParseURLWithContext(arxivFeedBase+category, ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing arXiv feed %s: %w", category, err)
	}

	records := make([]types.Record, 0, len(f.Items))
	for _, item := range f.Items {
		rec := types.Record{
			Title:      strings.TrimSpace(item.Title),
			Abstract:   extractAbstract(item.Description),
			Categories: []string{category},
		}
		if id := extractArxivID(item); id != "" {
			rec.Identifiers = []string{"arXiv:" + id}
		}
		rec.Authors = itemAuthors(item)
		if item.PublishedParsed != nil {
			rec.PubDate = item.PublishedParsed.Format("2006-01-02")
		}
		records = append(records, rec)
	}
	return records, nil
}

// extractArxivID pulls the bare arXiv ID from the item GUID
// (e.g. "oai:arXiv.org:2608.01234v1") or, failing that, from the link.
func extractArxivID(item *gofeed.Item) string {
	if idx := strings.LastIndex(item.GUID, ":"); idx >= 0 {
		if id := stripVersion(item.GUID[idx+1:]); looksLikeArxivID(id) {
			return id
		}
	}
	const prefix = "/abs/"
	if idx := strings.Index(item.Link, prefix); idx >= 0 {
		return stripVersion(item.Link[idx+len(prefix):])
	}
	return ""
}

// stripVersion removes a trailing "vN" suffix.
func stripVersion(id string) string {
	vIdx := strings.LastIndex(id, "v")
	if vIdx <= 0 {
		return id
	}
	for _, c := range id[vIdx+1:] {
		if c < '0' || c > '9' {
			return id
		}
	}
	if vIdx == len(id)-1 {
		return id
	}
	return id[:vIdx]
}

// looksLikeArxivID reports whether s matches the modern "YYMM.NNNNN" shape.
func looksLikeArxivID(s string) bool {
	if len(s) < 9 {
		return false
	}
	return s[4] == '.' && s[0] >= '0' && s[0] <= '9'
}

// extractAbstract strips the "arXiv:... Announce Type: ..." preamble the
// listing feed prepends to the abstract text.
func extractAbstract(description string) string {
	const marker = "Abstract: "
	if idx := strings.Index(description, marker); idx >= 0 {
		return strings.TrimSpace(description[idx+len(marker):])
	}
	return strings.TrimSpace(description)
}

// itemAuthors prefers the dc:creator extension the arXiv feed uses, then
// falls back to the item's author entries.
func itemAuthors(item *gofeed.Item) []string {
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		return splitCreators(item.DublinCoreExt.Creator)
	}
	var authors []string
	for _, a := range item.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

// splitCreators expands comma-separated dc:creator values into one name
// per entry.
func splitCreators(creators []string) []string {
	var out []string
	for _, c := range creators {
		for _, name := range strings.Split(c, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}
