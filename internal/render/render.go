// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Implements: prd013-digest (R3.1-R3.6); renders scored digest entries into
// multipart email bodies. Two variants exist: the topic digest, ordered by
// relevance tier with a welcome message and a bottom treasure, and the
// affiliation digest, grouped by arXiv category.
package render

import (
	"strconv"
	"strings"
	"time"
)

// Email is one rendered digest: a subject line plus parallel HTML and
// plain-text bodies for a multipart/alternative message.
type Email struct {
	Subject string
	HTML    string
	Text    string
}

const dateFmt = "January 2"

// dateRange formats the query window for display, e.g.
// "August 20 - August 27, 2026".
func dateRange(now time.Time, daysBack int) string {
	start := now.AddDate(0, 0, -daysBack)
	return start.Format(dateFmt) + " - " + now.Format(dateFmt+", 2006")
}

// truncateAtWord shortens s to at most limit characters, cutting at the last
// word boundary and appending an ellipsis. Strings within the limit pass
// through unchanged.
func truncateAtWord(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

// truncate shortens s to at most limit characters with an ellipsis,
// without regard for word boundaries.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// joinAuthors renders an author list showing at most max names. Longer lists
// are abbreviated with a count.
func joinAuthors(authors []string, max int) string {
	if len(authors) <= max {
		return strings.Join(authors, ", ")
	}
	return strings.Join(authors[:max], ", ") + " et al. (" + strconv.Itoa(len(authors)) + " authors)"
}

// joinAuthorsMore is like joinAuthors but abbreviates with "+ N more",
// the shorter form used in HTML paper cards.
func joinAuthorsMore(authors []string, max int) string {
	if len(authors) <= max {
		return strings.Join(authors, ", ")
	}
	return strings.Join(authors[:max], ", ") + " + " + strconv.Itoa(len(authors)-max) + " more"
}

// titleRule returns a dashed underline sized to the title, capped at 80
// columns, for the plain-text body.
func titleRule(title string) string {
	n := len(title)
	if n > 80 {
		n = 80
	}
	return strings.Repeat("-", n)
}

// plural returns "s" unless n is exactly one.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
