// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"testing"

	"github.com/pdiddy/astro-digest/pkg/types"
)

func testWatchlist() *Watchlist {
	return NewWatchlist([]types.PriorityAuthor{
		{ORCID: "0000-0001-7246-5438", Names: []string{"Vanderburg, A.", "Vanderburg, Andrew"}},
		{ORCID: "0000-0001-7493-7419", Names: []string{"Soares-Furtado, M."}},
	})
}

func TestContainsByOrcid(t *testing.T) {
	w := testWatchlist()

	tests := []struct {
		name string
		rec  types.Record
		want bool
	}{
		{
			"orcid_pub hit",
			types.Record{OrcidPub: []string{"-", "0000-0001-7246-5438"}},
			true,
		},
		{
			"orcid_user hit",
			types.Record{OrcidUser: []string{"0000-0001-7493-7419"}},
			true,
		},
		{
			"orcid_other hit",
			types.Record{OrcidOther: []string{"-", "-", "0000-0001-7246-5438"}},
			true,
		},
		{
			"all placeholders",
			types.Record{OrcidPub: []string{"-", "-", "-"}},
			false,
		},
		{
			"unknown orcid",
			types.Record{OrcidPub: []string{"0000-0002-0000-0000"}},
			false,
		},
		{
			"no orcid fields",
			types.Record{Authors: []string{"Smith, J."}},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Contains(tt.rec); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsByNameFallback(t *testing.T) {
	w := testWatchlist()

	tests := []struct {
		name   string
		author string
		want   bool
	}{
		{"exact form", "Vanderburg, A.", true},
		{"no punctuation", "vanderburg a", true},
		{"extra whitespace", "  Soares-Furtado,   M. ", true},
		{"full name variant", "Vanderburg, Andrew", true},
		{"different author", "Smith, J.", false},
		{"partial surname only", "Vanderburg", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := types.Record{Authors: []string{tt.author}}
			if got := w.Contains(rec); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.author, got, tt.want)
			}
		})
	}
}

// An ORCID array longer than the author array must not panic, and the ORCID
// match still counts even though no name can be recovered for it.
func TestMisalignedOrcidArray(t *testing.T) {
	w := testWatchlist()
	rec := types.Record{
		Authors:  []string{"Smith, J.", "Jones, K."},
		OrcidPub: []string{"-", "-", "0000-0001-7246-5438"},
	}

	if !w.Contains(rec) {
		t.Error("Contains() = false, want true from identifier match")
	}
	if names := w.AuthorNames(rec); len(names) != 0 {
		t.Errorf("AuthorNames() = %v, want empty: position 2 is outside the author list", names)
	}
}

func TestAuthorNamesPositionalRecovery(t *testing.T) {
	w := testWatchlist()
	rec := types.Record{
		Authors:  []string{"Vanderburg, Andrew", "Smith, J.", "Soares-Furtado, Melinda"},
		OrcidPub: []string{"0000-0001-7246-5438", "-", "0000-0001-7493-7419"},
	}

	names := w.AuthorNames(rec)
	if len(names) != 2 {
		t.Fatalf("AuthorNames() = %v, want 2 names", names)
	}
	if names[0] != "Vanderburg, Andrew" || names[1] != "Soares-Furtado, Melinda" {
		t.Errorf("AuthorNames() = %v, wrong names or order", names)
	}
}

func TestAuthorNamesDeduplicatedAcrossFields(t *testing.T) {
	// The same author indexed in orcid_pub and orcid_user appears once.
	w := testWatchlist()
	rec := types.Record{
		Authors:   []string{"Vanderburg, Andrew"},
		OrcidPub:  []string{"0000-0001-7246-5438"},
		OrcidUser: []string{"0000-0001-7246-5438"},
	}

	names := w.AuthorNames(rec)
	if len(names) != 1 {
		t.Errorf("AuthorNames() = %v, want one entry", names)
	}
}

func TestAuthorNamesNameFallbackRecovers(t *testing.T) {
	// No ORCID arrays at all: the name fallback still recovers the author.
	w := testWatchlist()
	rec := types.Record{Authors: []string{"Smith, J.", "Vanderburg, A."}}

	names := w.AuthorNames(rec)
	if len(names) != 1 || names[0] != "Vanderburg, A." {
		t.Errorf("AuthorNames() = %v, want [Vanderburg, A.]", names)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Vanderburg, A.", "vanderburg a"},
		{"  Soares-Furtado,  M. ", "soares-furtado m"},
		{"SMITH, JOHN", "smith john"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeName(tt.input); got != tt.want {
				t.Errorf("normalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
