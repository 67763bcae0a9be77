// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatTable writes entries as a human-readable table to w.
func FormatTable(entries []Entry, w io.Writer) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-5s  %-18s  %s\n",
		"Rank", "Title", "Authors", "Score", "Tier", "Priority")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, e := range entries {
		title := e.Record.Title
		if title == "" {
			title = "Untitled"
		}
		if len(title) > 60 {
			title = title[:57] + "..."
		}

		priority := ""
		if e.Annotation.Priority {
			priority = "*"
			if len(e.Annotation.PriorityAuthors) > 0 {
				priority = strings.Join(e.Annotation.PriorityAuthors, ", ")
			}
		}

		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-5d  %-18s  %s\n",
			i+1, title, formatAuthors(e.Record.Authors), e.Annotation.Score,
			e.Annotation.Tier, priority)
	}

	counts := TierCounts(entries)
	fmt.Fprintf(w, "\n%d papers (%d must-read, %d relevant, %d somewhat relevant, %d general)\n",
		len(entries), counts["must-read"], counts["relevant"],
		counts["somewhat-relevant"], counts["general"])
}

// FormatJSON writes entries as indented JSON to w.
func FormatJSON(entries []Entry, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
