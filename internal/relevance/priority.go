// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"strings"

	"github.com/pdiddy/astro-digest/internal/align"
	"github.com/pdiddy/astro-digest/pkg/types"
)

// Watchlist detects priority authors on a record. The primary check is an
// ORCID set intersection over the record's ORCID arrays; a normalized-name
// comparison is the fallback for records whose ORCID fields are absent or
// have lost author alignment.
type Watchlist struct {
	orcids map[string]bool
	names  map[string]bool
}

// NewWatchlist builds a Watchlist from the profile's priority authors.
func NewWatchlist(authors []types.PriorityAuthor) *Watchlist {
	w := &Watchlist{
		orcids: make(map[string]bool),
		names:  make(map[string]bool),
	}
	for _, a := range authors {
		if a.ORCID != "" {
			w.orcids[a.ORCID] = true
		}
		for _, n := range a.Names {
			if norm := normalizeName(n); norm != "" {
				w.names[norm] = true
			}
		}
	}
	return w
}

// Contains reports whether the record carries a watchlist author, by ORCID
// intersection or by normalized author name.
func (w *Watchlist) Contains(rec types.Record) bool {
	for _, field := range rec.OrcidFields() {
		for _, id := range field {
			if id == "" || id == types.OrcidPlaceholder {
				continue
			}
			if w.orcids[id] {
				return true
			}
		}
	}
	for _, name := range rec.Authors {
		if w.names[normalizeName(name)] {
			return true
		}
	}
	return false
}

// AuthorNames recovers the display names of watchlist authors on the
// record: ORCID positions are mapped onto the author list where the index
// is valid, then name-fallback matches are added. First-occurrence order,
// deduplicated. The result may be empty even when Contains is true — an
// ORCID hit whose position falls outside the author array recovers no
// name, and callers render a generic indicator instead.
func (w *Watchlist) AuthorNames(rec types.Record) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}

	for _, field := range rec.OrcidFields() {
		for i, id := range field {
			if w.orcids[id] {
				add(align.At(rec.Authors, i))
			}
		}
	}
	for _, name := range rec.Authors {
		if w.names[normalizeName(name)] {
			add(name)
		}
	}
	return out
}

// normalizeName lowercases, strips periods and commas, and squeezes
// whitespace so "Vanderburg, A." and "vanderburg a" compare equal.
func normalizeName(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.Join(strings.Fields(s), " ")
}
